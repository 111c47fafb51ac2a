package pricing

import (
	model "github.com/glkeru/loyalty/checkout/internal/models"
	"github.com/shopspring/decimal"
)

type capStep struct {
	floor  decimal.Decimal
	points int64
}

// Лимит списания баллов по сумме заказа
var capSteps = []capStep{
	{decimal.NewFromInt(0), 0},
	{decimal.NewFromInt(150), 50},
	{decimal.NewFromInt(300), 150},
	{decimal.NewFromInt(500), 300},
}

// минимальная сумма заказа, с которой можно списывать баллы
var MinRedeemSubtotal = capSteps[1].floor

// Максимум баллов по сумме заказа (до списания баллов)
func RedemptionCap(subtotal decimal.Decimal) int64 {
	var points int64
	for _, s := range capSteps {
		if s.floor.LessThanOrEqual(subtotal) {
			points = s.points
		}
	}
	return points
}

// Максимум с учетом баланса и остатка к оплате: min(cap, available, floor(subtotal))
func MaxRedeemable(subtotal decimal.Decimal, available int64) (int64, error) {
	limit := RedemptionCap(subtotal)
	if limit == 0 {
		return 0, model.NewError(model.ErrExhausted,
			"order subtotal %s is below the %s minimum for redeeming points", subtotal.StringFixed(2), MinRedeemSubtotal.String())
	}
	if available <= 0 {
		return 0, model.NewError(model.ErrExhausted, "no loyalty points available")
	}
	limit = min(limit, available, subtotal.Floor().IntPart())
	if limit <= 0 {
		return 0, model.NewError(model.ErrExhausted, "nothing left to pay with points")
	}
	return limit, nil
}

// Проверка запрошенного списания
func CheckRedemption(requested int64, subtotal decimal.Decimal, available int64) error {
	if requested < 0 {
		return model.NewError(model.ErrValidation, "points to redeem must not be negative")
	}
	if requested == 0 {
		return nil
	}
	limit, err := MaxRedeemable(subtotal, available)
	if err != nil {
		return err
	}
	if requested > limit {
		return model.NewError(model.ErrInsufficientForCap,
			"requested %d points, at most %d can be redeemed on this order", requested, limit)
	}
	return nil
}
