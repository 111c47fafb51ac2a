package checkout

import (
	"context"
	"time"

	model "github.com/glkeru/loyalty/checkout/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=./../services/mock_checkout_test.go -package=checkout . LedgerStorage,CacheStorage,OrderPublisher,CheckoutJournal

// Результат списания с подарочной карты
type GiftCardDebit struct {
	Applied      decimal.Decimal
	Card         model.GiftCard // состояние после списания
	RedemptionID uuid.UUID      // запись списания, заказ забирает ее при сохранении
}

// Результат использования промокода
type PromoDebit struct {
	Promo        model.PromoGift
	RedemptionID uuid.UUID
}

// Начисление по заказу
type Accrual struct {
	OrderID     string
	Points      int64
	Spent       decimal.Decimal // прибавка к накопленной сумме
	Description string
	BonusRank   int   // уровень, за который положен бонус; 0 - бонуса нет
	BonusPoints int64
	BonusReason string
}

type LedgerStorage interface {
	// подарочные карты
	GetGiftCard(ctx context.Context, code string) (model.GiftCard, error)
	RedeemGiftCard(ctx context.Context, code string, amount decimal.Decimal, now time.Time) (GiftCardDebit, error)
	GetGiftCardRedemption(ctx context.Context, id uuid.UUID) (model.GiftCardRedemption, error)
	// промокоды
	GetPromo(ctx context.Context, token string) (model.PromoGift, error)
	RedeemPromo(ctx context.Context, token string, now time.Time) (PromoDebit, error)
	GetPromoRedemption(ctx context.Context, id uuid.UUID) (model.PromoRedemption, error)
	// участники
	GetMember(ctx context.Context, id uuid.UUID) (model.LoyaltyMember, error)
	GetMemberByEmail(ctx context.Context, email string) (model.LoyaltyMember, error)
	CreateMember(ctx context.Context, member model.LoyaltyMember, signupBonus int64) error
	RedeemPoints(ctx context.Context, memberID uuid.UUID, points int64, orderID string) error
	RedeemedForOrder(ctx context.Context, orderID string) (int64, error)
	PostAccrual(ctx context.Context, memberID uuid.UUID, accrual Accrual) (bonusGranted bool, err error)
	GetTransactions(ctx context.Context, memberID uuid.UUID, from time.Time, to time.Time) ([]model.LoyaltyTransaction, error)
	LedgerBalance(ctx context.Context, memberID uuid.UUID) (earned int64, redeemed int64, err error)
	ListMemberIDs(ctx context.Context) ([]uuid.UUID, error)
	// заказы; CreateOrder забирает списания карты и промокода в той же транзакции
	CreateOrder(ctx context.Context, order model.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (model.Order, error)
}

type CacheStorage interface {
	GetMember(ctx context.Context, email string) (model.LoyaltyMember, error)
	SetMember(ctx context.Context, member model.LoyaltyMember) error
	InvalidateMember(ctx context.Context, email string) error
}

// Публикация завершенных заказов
type OrderPublisher interface {
	PublishOrder(ctx context.Context, event model.OrderEvent) error
}

// Журнал переходов состояний оформления
type CheckoutJournal interface {
	Record(ctx context.Context, entry model.JournalEntry) error
	ByOrder(ctx context.Context, orderID string) ([]model.JournalEntry, error)
	ByAttempt(ctx context.Context, attemptID string) ([]model.JournalEntry, error)
}
