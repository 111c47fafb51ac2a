package checkout

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrValidation           = errors.New("validation error")
	ErrNotFound             = errors.New("not found")
	ErrExpired              = errors.New("expired")
	ErrExhausted            = errors.New("exhausted")
	ErrInsufficientForCap   = errors.New("insufficient points for redemption cap")
	ErrPersistence          = errors.New("order persistence failed")
	ErrPostCommitRedemption = errors.New("post-commit redemption failed")
	ErrPostCommitAccrual    = errors.New("post-commit accrual failed")

	// баллы по заказу уже списаны, повтор ничего не меняет
	ErrAlreadyRedeemed = errors.New("already redeemed")
)

// Ошибка с причиной для покупателя
type CheckoutError struct {
	Kind    error
	Reason  string
	OrderID uuid.UUID
	Err     error // исходная ошибка хранилища, если есть
}

func (e *CheckoutError) Error() string {
	msg := e.Kind.Error() + ": " + e.Reason
	if e.OrderID != uuid.Nil {
		msg += " (order " + e.OrderID.String() + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CheckoutError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func NewError(kind error, format string, args ...any) *CheckoutError {
	return &CheckoutError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func AlreadyRedeemed(orderID string) *CheckoutError {
	return &CheckoutError{
		Kind:   ErrExhausted,
		Reason: fmt.Sprintf("points were already redeemed for order %s", orderID),
		Err:    ErrAlreadyRedeemed,
	}
}

// Причина отказа для ответа клиенту
func Reason(err error) string {
	var ce *CheckoutError
	if errors.As(err, &ce) {
		return ce.Reason
	}
	return err.Error()
}
