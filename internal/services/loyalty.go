package checkout

import (
	"context"
	"errors"
	"strings"
	"time"

	model "github.com/glkeru/loyalty/checkout/internal/models"
	"github.com/glkeru/loyalty/checkout/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type MemberView struct {
	ID              uuid.UUID       `json:"id"`
	Email           string          `json:"email"`
	Status          string          `json:"status"`
	Tier            string          `json:"tier"`
	EarnRate        decimal.Decimal `json:"earnRate"`
	TotalSpent      decimal.Decimal `json:"totalSpent"`
	AvailablePoints int64           `json:"availablePoints"`
	NextTier        string          `json:"nextTier,omitempty"`
	ToNextTier      decimal.Decimal `json:"toNextTier"`
	MaxRedeemable   int64           `json:"maxRedeemable"`
	RedeemReason    string          `json:"redeemReason,omitempty"`
}

// участник из кэша или из базы
func (s *CheckoutService) member(ctx context.Context, email string) (m model.LoyaltyMember, err error) {
	if s.cache != nil {
		m, err = s.cache.GetMember(ctx, email)
		if err == nil {
			return m, nil
		}
	}
	m, err = s.db.GetMemberByEmail(ctx, email)
	if err != nil {
		return m, err
	}
	if s.cache != nil {
		err = s.cache.SetMember(ctx, m)
		if err != nil {
			s.logger.Error("cache member", zap.String("email", email), zap.Error(err))
		}
	}
	return m, nil
}

func view(m model.LoyaltyMember, subtotal decimal.Decimal) MemberView {
	tier := pricing.ResolveTier(m.TotalSpent)
	v := MemberView{
		ID:              m.ID,
		Email:           m.Email,
		Status:          m.Status,
		Tier:            tier.Name,
		EarnRate:        tier.EarnRate,
		TotalSpent:      m.TotalSpent,
		AvailablePoints: m.AvailablePoints(),
	}
	if next, remaining, ok := pricing.NextTier(m.TotalSpent); ok {
		v.NextTier = next.Name
		v.ToNextTier = remaining
	}
	if m.Status != model.MemberActive {
		v.RedeemReason = "loyalty membership is not active"
		return v
	}
	maxPoints, err := pricing.MaxRedeemable(subtotal, v.AvailablePoints)
	if err != nil {
		v.RedeemReason = model.Reason(err)
		return v
	}
	v.MaxRedeemable = maxPoints
	return v
}

// Участник по email и окно списания для текущей суммы заказа
func (s *CheckoutService) LookupMember(ctx context.Context, email string, subtotal decimal.Decimal) (MemberView, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return MemberView{}, model.NewError(model.ErrValidation, "email is required")
	}
	m, err := s.member(ctx, email)
	if err != nil {
		return MemberView{}, err
	}
	return view(m, subtotal), nil
}

// Вступление в клуб. Участник и разовый бонус сохраняются вместе
func (s *CheckoutService) JoinClub(ctx context.Context, userID string, email string) (MemberView, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	userID = strings.TrimSpace(userID)
	if userID == "" || !strings.Contains(email, "@") {
		return MemberView{}, model.NewError(model.ErrValidation, "user id and a valid email are required")
	}

	m := model.LoyaltyMember{
		ID:         uuid.New(),
		UserID:     userID,
		Email:      email,
		Status:     model.MemberActive,
		TotalSpent: decimal.Zero,
		JoinDate:   s.now(),
	}
	err := s.db.CreateMember(ctx, m, SignupBonus)
	if err != nil {
		return MemberView{}, err
	}
	m.TotalPoints = SignupBonus
	m.SignupBonusGiven = SignupBonus > 0
	s.invalidateMember(ctx, email)
	return view(m, decimal.Zero), nil
}

// Списание баллов по уже сохраненному заказу
func (s *CheckoutService) RedeemPoints(ctx context.Context, memberID uuid.UUID, points int64, orderID uuid.UUID) (res MemberView, err error) {
	defer func() {
		redemptionsTotal.WithLabelValues("points", outcome(err)).Inc()
	}()

	if points <= 0 {
		return res, model.NewError(model.ErrValidation, "points to redeem must be positive")
	}
	order, err := s.db.GetOrder(ctx, orderID)
	if err != nil {
		return res, err
	}
	if order.MemberID == nil || *order.MemberID != memberID {
		return res, model.NewError(model.ErrValidation, "order %s does not belong to this member", orderID)
	}
	if points > order.PointsRedeemed {
		return res, model.NewError(model.ErrInsufficientForCap,
			"order %s was priced with %d points, cannot redeem %d", orderID, order.PointsRedeemed, points)
	}
	done, err := s.db.RedeemedForOrder(ctx, orderID.String())
	if err != nil {
		return res, err
	}
	if done > 0 {
		return res, model.AlreadyRedeemed(orderID.String())
	}

	m, err := s.db.GetMember(ctx, memberID)
	if err != nil {
		return res, err
	}
	if m.Status != model.MemberActive {
		return res, model.NewError(model.ErrValidation, "loyalty membership is not active")
	}
	err = pricing.CheckRedemption(points, order.SubtotalBeforePoints(), m.AvailablePoints())
	if err != nil {
		return res, err
	}

	err = s.db.RedeemPoints(ctx, memberID, points, orderID.String())
	if err != nil {
		return res, err
	}
	s.invalidateMember(ctx, m.Email)
	s.logger.Info("points redeemed",
		zap.String("member", memberID.String()),
		zap.String("order", orderID.String()),
		zap.Int64("points", points),
	)
	m.UsedPoints += points
	res = view(m, decimal.Zero)
	res.RedeemReason = ""
	return res, nil
}

// История транзакций за период
func (s *CheckoutService) History(ctx context.Context, memberID uuid.UUID, from time.Time, to time.Time) ([]model.LoyaltyTransaction, error) {
	if to.Before(from) {
		return nil, model.NewError(model.ErrValidation, "period end is before its start")
	}
	return s.db.GetTransactions(ctx, memberID, from, to)
}

type ReconcileReport struct {
	MemberID   uuid.UUID `json:"memberId"`
	Projected  int64     `json:"projected"` // total_points - used_points
	Earned     int64     `json:"earned"`
	Redeemed   int64     `json:"redeemed"`
	Consistent bool      `json:"consistent"`
}

// Сверка баланса участника с журналом транзакций
func (s *CheckoutService) Reconcile(ctx context.Context, memberID uuid.UUID) (ReconcileReport, error) {
	m, err := s.db.GetMember(ctx, memberID)
	if err != nil {
		return ReconcileReport{}, err
	}
	earned, redeemed, err := s.db.LedgerBalance(ctx, memberID)
	if err != nil {
		return ReconcileReport{}, err
	}
	r := ReconcileReport{
		MemberID:   memberID,
		Projected:  m.TotalPoints - m.UsedPoints,
		Earned:     earned,
		Redeemed:   redeemed,
		Consistent: m.TotalPoints-m.UsedPoints == earned-redeemed,
	}
	if !r.Consistent {
		s.logger.Warn("member balance differs from ledger",
			zap.String("member", memberID.String()),
			zap.Int64("projected", r.Projected),
			zap.Int64("ledger", earned-redeemed),
		)
	}
	return r, nil
}

// Сверка всех участников, each вызывается для каждого отчета
func (s *CheckoutService) ReconcileAll(ctx context.Context, workers int, each func(ReconcileReport)) error {
	ids, err := s.db.ListMemberIDs(ctx)
	if err != nil {
		return err
	}
	return reconcileMembers(ctx, ids, workers, func(ctx context.Context, id uuid.UUID) error {
		r, err := s.Reconcile(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil
			}
			return err
		}
		if each != nil {
			each(r)
		}
		return nil
	})
}
