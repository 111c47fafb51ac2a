package pricing

import "github.com/shopspring/decimal"

type Tier struct {
	Name     string          `json:"name"`
	Rank     int             `json:"rank"`
	MinSpend decimal.Decimal `json:"minSpend"`
	EarnRate decimal.Decimal `json:"earnRate"` // доля от суммы заказа
}

// Уровни по возрастанию порога
var tiers = []Tier{
	{Name: "bronze", Rank: 0, MinSpend: decimal.NewFromInt(0), EarnRate: decimal.NewFromFloat(0.03)},
	{Name: "silver", Rank: 1, MinSpend: decimal.NewFromInt(500), EarnRate: decimal.NewFromFloat(0.05)},
	{Name: "gold", Rank: 2, MinSpend: decimal.NewFromInt(1500), EarnRate: decimal.NewFromFloat(0.07)},
	{Name: "platinum", Rank: 3, MinSpend: decimal.NewFromInt(4000), EarnRate: decimal.NewFromFloat(0.10)},
}

func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// Уровень по накопленной сумме покупок
func ResolveTier(totalSpent decimal.Decimal) Tier {
	if totalSpent.IsNegative() {
		totalSpent = decimal.Zero
	}
	tier := tiers[0]
	for _, t := range tiers[1:] {
		if t.MinSpend.LessThanOrEqual(totalSpent) {
			tier = t
		}
	}
	return tier
}

// Следующий уровень и сколько осталось потратить. ok=false для старшего уровня
func NextTier(totalSpent decimal.Decimal) (next Tier, remaining decimal.Decimal, ok bool) {
	current := ResolveTier(totalSpent)
	if current.Rank+1 >= len(tiers) {
		return Tier{}, decimal.Zero, false
	}
	next = tiers[current.Rank+1]
	if totalSpent.IsNegative() {
		totalSpent = decimal.Zero
	}
	return next, next.MinSpend.Sub(totalSpent), true
}

// Переход на более высокий уровень между двумя суммами
func TierTransition(before, after decimal.Decimal) (Tier, bool) {
	from := ResolveTier(before)
	to := ResolveTier(after)
	return to, to.Rank > from.Rank
}
