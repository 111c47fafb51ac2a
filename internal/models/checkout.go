package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Статусы участника клуба
const (
	MemberActive   = "ACTIVE"
	MemberInactive = "INACTIVE"
)

// Участник программы лояльности
type LoyaltyMember struct {
	ID               uuid.UUID       `json:"id"`
	UserID           string          `json:"userId"`
	Email            string          `json:"email"`
	Status           string          `json:"status"`
	TotalPoints      int64           `json:"totalPoints"` // всего начислено
	UsedPoints       int64           `json:"usedPoints"`  // всего списано
	TotalSpent       decimal.Decimal `json:"totalSpent"`  // накопленная сумма покупок
	JoinDate         time.Time       `json:"joinDate"`
	SignupBonusGiven bool            `json:"signupBonusGiven"`
	TierBonusRank    int             `json:"tierBonusRank"` // старший уровень, за который выдан бонус
}

func (m LoyaltyMember) AvailablePoints() int64 {
	p := m.TotalPoints - m.UsedPoints
	if p < 0 {
		return 0
	}
	return p
}

const (
	EARN   = "EARN"
	REDEEM = "REDEEM"
)

// Транзакция по баллам, только добавление
type LoyaltyTransaction struct {
	ID          uuid.UUID `json:"id"`
	MemberID    uuid.UUID `json:"memberId"`
	Type        string    `json:"type"`
	Points      int64     `json:"points"`
	Description string    `json:"description"`
	OrderID     string    `json:"orderId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Статусы подарочной карты
const (
	GiftCardActive   = "active"
	GiftCardUsed     = "used"
	GiftCardExpired  = "expired"
	GiftCardDisabled = "disabled"
)

type GiftCard struct {
	Code          string          `json:"code"`
	InitialAmount decimal.Decimal `json:"initialAmount"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
	ExpiresAt     time.Time       `json:"expiresAt"`
}

// Карта пригодна к списанию
func (g GiftCard) Usable(now time.Time) bool {
	return g.Status == GiftCardActive && g.Balance.IsPositive() && now.Before(g.ExpiresAt)
}

// Сколько уже списано с карты
func (g GiftCard) Consumed() decimal.Decimal {
	return g.InitialAmount.Sub(g.Balance)
}

// Статусы промокода
const (
	PromoActive   = "active"
	PromoExpired  = "expired"
	PromoDisabled = "disabled"
)

type PromoGift struct {
	Token     string          `json:"token"`
	Amount    decimal.Decimal `json:"amount"`
	ExpiresAt time.Time       `json:"expiresAt"`
	MaxUses   int             `json:"maxUses"`
	TimesUsed int             `json:"timesUsed"`
	Status    string          `json:"status"`
}

func (p PromoGift) RemainingUses() int {
	r := p.MaxUses - p.TimesUsed
	if r < 0 {
		return 0
	}
	return r
}

// Списание с карты. Привязывается к одному заказу
type GiftCardRedemption struct {
	ID        uuid.UUID       `json:"id"`
	Code      string          `json:"code"`
	Amount    decimal.Decimal `json:"amount"`
	OrderID   *uuid.UUID      `json:"orderId,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Использование промокода. Привязывается к одному заказу
type PromoRedemption struct {
	ID        uuid.UUID       `json:"id"`
	Token     string          `json:"token"`
	Amount    decimal.Decimal `json:"amount"` // номинал на момент использования
	OrderID   *uuid.UUID      `json:"orderId,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Заказ
type Order struct {
	ID             uuid.UUID       `json:"id"`
	MemberID       *uuid.UUID      `json:"memberId,omitempty"`
	CustomerName   string          `json:"customerName"`
	CustomerEmail  string          `json:"customerEmail"`
	CustomerPhone  string          `json:"customerPhone"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	Subtotal       decimal.Decimal `json:"subtotal"` // сумма корзины
	ShippingFee    decimal.Decimal `json:"shippingFee"`
	GiftCardAmount decimal.Decimal `json:"giftCardAmount"`
	GiftCardCode   string          `json:"giftCardCode,omitempty"`
	PromoAmount    decimal.Decimal `json:"promoAmount"`
	PromoGiftToken string          `json:"promoGiftToken,omitempty"`
	// списания, которые заказ забирает при сохранении
	GiftCardRedemptionID *uuid.UUID `json:"giftCardRedemptionId,omitempty"`
	PromoRedemptionID    *uuid.UUID `json:"promoRedemptionId,omitempty"`
	PointsRedeemed int64           `json:"pointsRedeemed"`
	TotalAmount    decimal.Decimal `json:"totalAmount"` // к оплате
	CreatedAt      time.Time       `json:"createdAt"`
	Items          []OrderItem     `json:"items"`
}

// Сумма до списания баллов: корзина + доставка - карта - промокод
func (o Order) SubtotalBeforePoints() decimal.Decimal {
	s := o.Subtotal.Add(o.ShippingFee).Sub(o.GiftCardAmount).Sub(o.PromoAmount)
	if s.IsNegative() {
		return decimal.Zero
	}
	return s
}

type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"orderId"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

func (i OrderItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
