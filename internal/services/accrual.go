package checkout

import (
	"context"
	"fmt"

	interf "github.com/glkeru/loyalty/checkout/internal/interfaces"
	model "github.com/glkeru/loyalty/checkout/internal/models"
	"github.com/glkeru/loyalty/checkout/internal/pricing"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	TierUpgradeBonus int64 = 100
	SignupBonus      int64 = 50
)

// Расчет начисления по заказу.
// Ставка берется по уровню на момент заказа, база - сумма до списания баллов.
func CalculateAccrual(member model.LoyaltyMember, subtotalBeforePoints, payable decimal.Decimal, orderID string) interf.Accrual {
	tier := pricing.ResolveTier(member.TotalSpent)
	if subtotalBeforePoints.IsNegative() {
		subtotalBeforePoints = decimal.Zero
	}
	if payable.IsNegative() {
		payable = decimal.Zero
	}

	a := interf.Accrual{
		OrderID:     orderID,
		Points:      tier.EarnRate.Mul(subtotalBeforePoints).Floor().IntPart(),
		Spent:       payable,
		Description: fmt.Sprintf("earned on order %s (%s %s%%)", orderID, tier.Name, tier.EarnRate.Shift(2).String()),
	}

	next, up := pricing.TierTransition(member.TotalSpent, member.TotalSpent.Add(payable))
	if up && next.Rank > member.TierBonusRank {
		a.BonusRank = next.Rank
		a.BonusPoints = TierUpgradeBonus
		a.BonusReason = "tier upgrade bonus: " + next.Name
	}
	return a
}

type AccrualResult struct {
	Points      int64  `json:"points"`
	BonusPoints int64  `json:"bonusPoints"`
	Tier        string `json:"tier"`
}

// Начисление после сохранения заказа
func (s *CheckoutService) postAccrual(ctx context.Context, member model.LoyaltyMember, subtotalBeforePoints, payable decimal.Decimal, orderID string) (AccrualResult, error) {
	a := CalculateAccrual(member, subtotalBeforePoints, payable, orderID)
	granted, err := s.db.PostAccrual(ctx, member.ID, a)
	if err != nil {
		return AccrualResult{}, err
	}

	res := AccrualResult{
		Points: a.Points,
		Tier:   pricing.ResolveTier(member.TotalSpent.Add(a.Spent)).Name,
	}
	if granted {
		res.BonusPoints = a.BonusPoints
	}
	pointsEarned.Add(float64(res.Points + res.BonusPoints))
	s.logger.Info("points accrued",
		zap.String("member", member.ID.String()),
		zap.String("order", orderID),
		zap.Int64("points", res.Points),
		zap.Int64("bonus", res.BonusPoints),
	)
	return res, nil
}
