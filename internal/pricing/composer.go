package pricing

import (
	model "github.com/glkeru/loyalty/checkout/internal/models"
	"github.com/shopspring/decimal"
)

var (
	FreeShippingFrom = decimal.NewFromInt(300)
	ShippingFee      = decimal.NewFromInt(30)
)

// Входные данные расчета. Нулевые значения означают "скидка не применяется"
type Input struct {
	CartTotal       decimal.Decimal
	GiftCardAmount  decimal.Decimal // запрошено с подарочной карты
	GiftCardBalance decimal.Decimal // баланс карты
	PromoAmount     decimal.Decimal // номинал промокода
	PointsRequested int64
	PointsAvailable int64
}

type Breakdown struct {
	CartTotal         decimal.Decimal `json:"cartTotal"`
	ShippingFee       decimal.Decimal `json:"shippingFee"`
	GiftCardAmount    decimal.Decimal `json:"giftCardAmount"`
	PromoAmount       decimal.Decimal `json:"promoAmount"`
	SubtotalForPoints decimal.Decimal `json:"subtotalForPoints"`
	MaxPoints         int64           `json:"maxPoints"`
	PointsRedeemed    int64           `json:"pointsRedeemed"`
	PointsReason      string          `json:"pointsReason,omitempty"`
	Payable           decimal.Decimal `json:"payable"`
}

func Shipping(cartTotal decimal.Decimal) decimal.Decimal {
	if cartTotal.GreaterThanOrEqual(FreeShippingFrom) {
		return decimal.Zero
	}
	return ShippingFee
}

// Расчет к оплате. Порядок фиксирован: доставка, подарочная карта, промокод, баллы
func Compose(in Input) Breakdown {
	cart := nonNegative(in.CartTotal)
	b := Breakdown{CartTotal: cart.Round(2)}

	// доставка
	b.ShippingFee = Shipping(cart)
	remaining := cart.Add(b.ShippingFee)

	// подарочная карта
	gift := decimal.Min(nonNegative(in.GiftCardAmount), remaining, nonNegative(in.GiftCardBalance))
	b.GiftCardAmount = gift.Round(2)
	remaining = remaining.Sub(b.GiftCardAmount)

	// промокод
	promo := decimal.Min(nonNegative(in.PromoAmount), remaining)
	b.PromoAmount = promo.Round(2)
	remaining = remaining.Sub(b.PromoAmount)

	// баллы
	b.SubtotalForPoints = remaining
	maxPoints, err := MaxRedeemable(remaining, in.PointsAvailable)
	if err != nil {
		if in.PointsRequested > 0 {
			b.PointsReason = model.Reason(err)
		}
	} else {
		b.MaxPoints = maxPoints
		if in.PointsRequested > 0 {
			b.PointsRedeemed = min(in.PointsRequested, maxPoints)
		}
	}
	remaining = remaining.Sub(decimal.NewFromInt(b.PointsRedeemed))

	b.Payable = nonNegative(remaining).Round(2)
	return b
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
