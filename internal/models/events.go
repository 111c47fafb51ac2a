package checkout

import (
	"time"

	"github.com/shopspring/decimal"
)

// Событие о завершенном заказе (topic orders)
type OrderEvent struct {
	OrderID        string          `json:"orderId"`
	UserID         string          `json:"userId,omitempty"`
	MemberID       string          `json:"memberId,omitempty"`
	Total          decimal.Decimal `json:"total"`
	PointsRedeemed int64           `json:"pointsRedeemed"`
	PointsEarned   int64           `json:"pointsEarned"`
	State          CommitState     `json:"state"`
	Warnings       []string        `json:"warnings,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// Запись журнала оформления
type JournalEntry struct {
	AttemptID string      `bson:"attemptId" json:"attemptId"`
	OrderID   string      `bson:"orderId,omitempty" json:"orderId,omitempty"`
	State     string      `bson:"state" json:"state"`
	Error     string      `bson:"error,omitempty" json:"error,omitempty"`
	At        time.Time   `bson:"at" json:"at"`
	Details   interface{} `bson:"details,omitempty" json:"details,omitempty"`
}
