package checkout

import (
	"context"
	"strings"

	model "github.com/glkeru/loyalty/checkout/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RedemptionID передается в заказ; без него списание не учитывается
type GiftCardResult struct {
	Code         string          `json:"code"`
	Applied      decimal.Decimal `json:"applied"`
	Balance      decimal.Decimal `json:"balance"`
	Status       string          `json:"status"`
	ExpiresAt    string          `json:"expiresAt"`
	RedemptionID *uuid.UUID      `json:"redemptionId,omitempty"`
}

type PromoResult struct {
	Token         string          `json:"token"`
	Applied       decimal.Decimal `json:"applied"`
	Amount        decimal.Decimal `json:"amount"`
	RemainingUses int             `json:"remainingUses"`
	Status        string          `json:"status"`
	RedemptionID  *uuid.UUID      `json:"redemptionId,omitempty"`
}

func normalizeCode(code string) string {
	return strings.TrimSpace(code)
}

// Проверка карты без списания
func (s *CheckoutService) CheckGiftCard(ctx context.Context, code string) (GiftCardResult, error) {
	code = normalizeCode(code)
	if code == "" {
		return GiftCardResult{}, model.NewError(model.ErrValidation, "gift card code is required")
	}
	card, err := s.db.GetGiftCard(ctx, code)
	if err != nil {
		return GiftCardResult{}, err
	}
	err = model.CheckGiftCard(card, s.now())
	if err != nil {
		return GiftCardResult{}, err
	}
	return GiftCardResult{
		Code:      card.Code,
		Applied:   decimal.Zero,
		Balance:   card.Balance,
		Status:    card.Status,
		ExpiresAt: card.ExpiresAt.Format("2006-01-02"),
	}, nil
}

// Списание с карты: применяется min(amount, balance)
func (s *CheckoutService) ApplyGiftCard(ctx context.Context, code string, amount decimal.Decimal) (res GiftCardResult, err error) {
	defer func() {
		redemptionsTotal.WithLabelValues("gift_card", outcome(err)).Inc()
	}()

	code = normalizeCode(code)
	if code == "" {
		return res, model.NewError(model.ErrValidation, "gift card code is required")
	}
	if !amount.IsPositive() {
		return res, model.NewError(model.ErrValidation, "amount to apply must be positive")
	}

	debit, err := s.db.RedeemGiftCard(ctx, code, amount, s.now())
	if err != nil {
		return res, err
	}
	s.logger.Info("gift card redeemed",
		zap.String("code", code),
		zap.String("applied", debit.Applied.String()),
		zap.String("balance", debit.Card.Balance.String()),
		zap.String("redemption", debit.RedemptionID.String()),
	)
	return GiftCardResult{
		Code:         debit.Card.Code,
		Applied:      debit.Applied,
		Balance:      debit.Card.Balance,
		Status:       debit.Card.Status,
		ExpiresAt:    debit.Card.ExpiresAt.Format("2006-01-02"),
		RedemptionID: &debit.RedemptionID,
	}, nil
}

// Проверка промокода без использования
func (s *CheckoutService) CheckPromo(ctx context.Context, token string) (PromoResult, error) {
	token = normalizeCode(token)
	if token == "" {
		return PromoResult{}, model.NewError(model.ErrValidation, "promo code is required")
	}
	promo, err := s.db.GetPromo(ctx, token)
	if err != nil {
		return PromoResult{}, err
	}
	err = model.CheckPromo(promo, s.now())
	if err != nil {
		return PromoResult{}, err
	}
	return PromoResult{
		Token:         promo.Token,
		Applied:       decimal.Zero,
		Amount:        promo.Amount,
		RemainingUses: promo.RemainingUses(),
		Status:        promo.Status,
	}, nil
}

// Использование промокода против остатка к оплате (корзина + доставка - карта)
func (s *CheckoutService) ApplyPromo(ctx context.Context, token string, remaining decimal.Decimal) (res PromoResult, err error) {
	defer func() {
		redemptionsTotal.WithLabelValues("promo", outcome(err)).Inc()
	}()

	token = normalizeCode(token)
	if token == "" {
		return res, model.NewError(model.ErrValidation, "promo code is required")
	}
	if !remaining.IsPositive() {
		return res, model.NewError(model.ErrValidation, "nothing left to pay, promo code was not used")
	}

	debit, err := s.db.RedeemPromo(ctx, token, s.now())
	if err != nil {
		return res, err
	}
	promo := debit.Promo
	applied := decimal.Min(promo.Amount, remaining)
	s.logger.Info("promo redeemed",
		zap.String("token", token),
		zap.String("applied", applied.String()),
		zap.Int("remainingUses", promo.RemainingUses()),
		zap.String("redemption", debit.RedemptionID.String()),
	)
	return PromoResult{
		Token:         promo.Token,
		Applied:       applied,
		Amount:        promo.Amount,
		RemainingUses: promo.RemainingUses(),
		Status:        promo.Status,
		RedemptionID:  &debit.RedemptionID,
	}, nil
}
