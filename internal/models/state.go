package checkout

// Состояние оформления заказа
type CommitState int

const (
	StateDraft CommitState = iota
	StateSubmitted
	StatePersisted
	StateGiftCardDebited
	StatePromoRedeemed
	StatePointsRedeemed
	StateAccrualPosted
	StateComplete
)

var stateNames = [...]string{
	"DRAFT",
	"SUBMITTED",
	"PERSISTED",
	"GIFT_CARD_DEBITED",
	"PROMO_REDEEMED",
	"POINTS_REDEEMED",
	"ACCRUAL_POSTED",
	"COMPLETE",
}

func (s CommitState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

func (s CommitState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Заказ уже сохранен: откат невозможен, ошибки только предупреждения
func (s CommitState) Committed() bool {
	return s >= StatePersisted
}
