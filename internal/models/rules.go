package checkout

import (
	"time"

	"github.com/shopspring/decimal"
)

// Проверка карты перед списанием
func CheckGiftCard(card GiftCard, now time.Time) error {
	switch {
	case card.Status == GiftCardDisabled:
		return NewError(ErrExhausted, "gift card %s is disabled", card.Code)
	case card.Status == GiftCardExpired || !now.Before(card.ExpiresAt):
		return NewError(ErrExpired, "gift card %s expired on %s", card.Code, card.ExpiresAt.Format("2006-01-02"))
	case card.Status == GiftCardUsed || !card.Balance.IsPositive():
		return NewError(ErrExhausted, "gift card %s has no balance left", card.Code)
	case card.Status != GiftCardActive:
		return NewError(ErrExhausted, "gift card %s is not active", card.Code)
	}
	return nil
}

// Проверка промокода перед использованием
func CheckPromo(promo PromoGift, now time.Time) error {
	switch {
	case promo.Status == PromoExpired || !now.Before(promo.ExpiresAt):
		return NewError(ErrExpired, "promo code %s expired on %s", promo.Token, promo.ExpiresAt.Format("2006-01-02"))
	case promo.TimesUsed >= promo.MaxUses:
		return NewError(ErrExhausted, "promo code %s has no uses left", promo.Token)
	case promo.Status != PromoActive:
		return NewError(ErrExhausted, "promo code %s is disabled", promo.Token)
	}
	return nil
}

// Списание min(amount, balance). Карта с нулевым остатком становится used
func DebitGiftCard(card GiftCard, amount decimal.Decimal) (decimal.Decimal, GiftCard) {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	applied := decimal.Min(amount, card.Balance).Round(2)
	card.Balance = card.Balance.Sub(applied)
	if !card.Balance.IsPositive() {
		card.Balance = decimal.Zero
		card.Status = GiftCardUsed
	}
	return applied, card
}

// Списание с карты можно учесть только в одном заказе
func CheckGiftCardClaim(r GiftCardRedemption, code string) error {
	if code != "" && r.Code != code {
		return NewError(ErrValidation, "gift card redemption %s was made on another card", r.ID)
	}
	if r.OrderID != nil {
		return NewError(ErrExhausted, "gift card %s: this redemption was already used by order %s", r.Code, r.OrderID)
	}
	return nil
}

func CheckPromoClaim(r PromoRedemption, token string) error {
	if token != "" && r.Token != token {
		return NewError(ErrValidation, "promo redemption %s was made with another code", r.ID)
	}
	if r.OrderID != nil {
		return NewError(ErrExhausted, "promo code %s: this redemption was already used by order %s", r.Token, r.OrderID)
	}
	return nil
}
