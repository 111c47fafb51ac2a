package checkout

import (
	"context"
	"errors"
	"strings"

	model "github.com/glkeru/loyalty/checkout/internal/models"
	"github.com/glkeru/loyalty/checkout/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type ItemRequest struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Заказ от клиента. Карта и промокод учитываются по записям списания из ответов apply
type OrderRequest struct {
	Customer             Customer        `json:"customer"`
	Items                []ItemRequest   `json:"items"`
	GiftCardCode         string          `json:"giftCardCode"`
	GiftCardAmount       decimal.Decimal `json:"giftCardAmount"` // только для предварительного расчета
	GiftCardRedemptionID uuid.UUID       `json:"giftCardRedemptionId"`
	PromoToken           string          `json:"promoToken"`
	PromoRedemptionID    uuid.UUID       `json:"promoRedemptionId"`
	PointsToRedeem       int64           `json:"pointsToRedeem"`
}

type CheckoutResult struct {
	AttemptID    uuid.UUID         `json:"attemptId"`
	OrderID      uuid.UUID         `json:"orderId"`
	State        model.CommitState `json:"state"`
	Pricing      pricing.Breakdown `json:"pricing"`
	PointsEarned int64             `json:"pointsEarned"`
	BonusPoints  int64             `json:"bonusPoints"`
	Tier         string            `json:"tier,omitempty"`
	Warnings     []error           `json:"-"` // ошибки после сохранения заказа, заказ остается
}

func (r *CheckoutResult) advance(state model.CommitState) {
	r.State = state
}

func validateOrder(req OrderRequest) error {
	c := req.Customer
	var missing []string
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "name")
	}
	if !strings.Contains(c.Email, "@") {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(c.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(c.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(c.City) == "" {
		missing = append(missing, "city")
	}
	if len(missing) > 0 {
		return model.NewError(model.ErrValidation, "shipping fields are missing or invalid: %s", strings.Join(missing, ", "))
	}

	if len(req.Items) == 0 {
		return model.NewError(model.ErrValidation, "cart is empty")
	}
	for i, item := range req.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return model.NewError(model.ErrValidation, "cart item %d has no product", i+1)
		}
		if item.Quantity <= 0 {
			return model.NewError(model.ErrValidation, "cart item %s has invalid quantity %d", item.ProductID, item.Quantity)
		}
		if item.Price.IsNegative() {
			return model.NewError(model.ErrValidation, "cart item %s has negative price", item.ProductID)
		}
	}

	if req.GiftCardAmount.IsNegative() || req.PointsToRedeem < 0 {
		return model.NewError(model.ErrValidation, "discount amounts must not be negative")
	}
	giftCard := strings.TrimSpace(req.GiftCardCode) != "" || req.GiftCardAmount.IsPositive()
	if giftCard && req.GiftCardRedemptionID == uuid.Nil {
		return model.NewError(model.ErrValidation, "gift card was not applied, apply it before placing the order")
	}
	if strings.TrimSpace(req.PromoToken) != "" && req.PromoRedemptionID == uuid.Nil {
		return model.NewError(model.ErrValidation, "promo code was not applied, apply it before placing the order")
	}
	return nil
}

func cartTotal(items []ItemRequest) decimal.Decimal {
	total := decimal.Zero
	for _, i := range items {
		total = total.Add(i.Price.Mul(decimal.NewFromInt(int64(i.Quantity))))
	}
	return total
}

// Входные данные для расчета по состоянию хранилища
type pricingState struct {
	input    pricing.Input
	member   *model.LoyaltyMember
	giftCard *model.GiftCardRedemption
	promo    *model.PromoRedemption
}

// Карта и промокод учитываются по записям списания; запись, уже забранная заказом, отклоняется.
// CreateOrder повторяет эту проверку в транзакции сохранения.
func (s *CheckoutService) loadPricingState(ctx context.Context, req OrderRequest) (st pricingState, err error) {
	st.input = pricing.Input{
		CartTotal:       cartTotal(req.Items),
		PointsRequested: req.PointsToRedeem,
	}

	if req.GiftCardRedemptionID != uuid.Nil {
		r, err := s.db.GetGiftCardRedemption(ctx, req.GiftCardRedemptionID)
		if err != nil {
			return st, err
		}
		err = model.CheckGiftCardClaim(r, normalizeCode(req.GiftCardCode))
		if err != nil {
			return st, err
		}
		st.input.GiftCardAmount = r.Amount
		st.input.GiftCardBalance = r.Amount
		st.giftCard = &r
	}

	if req.PromoRedemptionID != uuid.Nil {
		r, err := s.db.GetPromoRedemption(ctx, req.PromoRedemptionID)
		if err != nil {
			return st, err
		}
		err = model.CheckPromoClaim(r, normalizeCode(req.PromoToken))
		if err != nil {
			return st, err
		}
		st.input.PromoAmount = r.Amount
		st.promo = &r
	}

	email := strings.ToLower(strings.TrimSpace(req.Customer.Email))
	m, err := s.db.GetMemberByEmail(ctx, email)
	switch {
	case err == nil:
		st.member = &m
		if m.Status == model.MemberActive {
			st.input.PointsAvailable = m.AvailablePoints()
		}
	case errors.Is(err, model.ErrNotFound):
		// покупатель не в клубе
	default:
		return st, err
	}

	if req.PointsToRedeem > 0 {
		if st.member == nil {
			return st, model.NewError(model.ErrValidation, "only club members can redeem points")
		}
		if st.member.Status != model.MemberActive {
			return st, model.NewError(model.ErrValidation, "loyalty membership is not active")
		}
	}
	return st, nil
}

// Предварительный расчет для отображения. Ничего не списывает
func (s *CheckoutService) Quote(ctx context.Context, req OrderRequest) (pricing.Breakdown, error) {
	for _, item := range req.Items {
		if item.Quantity <= 0 || item.Price.IsNegative() {
			return pricing.Breakdown{}, model.NewError(model.ErrValidation, "cart item %s is invalid", item.ProductID)
		}
	}
	st := pricing.Input{CartTotal: cartTotal(req.Items), PointsRequested: req.PointsToRedeem}

	if code := normalizeCode(req.GiftCardCode); code != "" {
		card, err := s.db.GetGiftCard(ctx, code)
		if err != nil {
			return pricing.Breakdown{}, err
		}
		if err = model.CheckGiftCard(card, s.now()); err != nil {
			return pricing.Breakdown{}, err
		}
		st.GiftCardAmount = req.GiftCardAmount
		if !st.GiftCardAmount.IsPositive() {
			st.GiftCardAmount = card.Balance
		}
		st.GiftCardBalance = card.Balance
	}
	if token := normalizeCode(req.PromoToken); token != "" {
		promo, err := s.db.GetPromo(ctx, token)
		if err != nil {
			return pricing.Breakdown{}, err
		}
		if err = model.CheckPromo(promo, s.now()); err != nil {
			return pricing.Breakdown{}, err
		}
		st.PromoAmount = promo.Amount
	}
	if email := strings.ToLower(strings.TrimSpace(req.Customer.Email)); email != "" {
		m, err := s.member(ctx, email)
		if err == nil && m.Status == model.MemberActive {
			st.PointsAvailable = m.AvailablePoints()
		} else if err != nil && !errors.Is(err, model.ErrNotFound) {
			return pricing.Breakdown{}, err
		}
	}
	return pricing.Compose(st), nil
}

func buildOrder(id uuid.UUID, req OrderRequest, b pricing.Breakdown, st pricingState) model.Order {
	o := model.Order{
		ID:             id,
		CustomerName:   strings.TrimSpace(req.Customer.Name),
		CustomerEmail:  strings.ToLower(strings.TrimSpace(req.Customer.Email)),
		CustomerPhone:  strings.TrimSpace(req.Customer.Phone),
		Address:        strings.TrimSpace(req.Customer.Address),
		City:           strings.TrimSpace(req.Customer.City),
		Subtotal:       b.CartTotal,
		ShippingFee:    b.ShippingFee,
		GiftCardAmount: b.GiftCardAmount,
		PromoAmount:    b.PromoAmount,
		PointsRedeemed: b.PointsRedeemed,
		TotalAmount:    b.Payable,
	}
	if b.GiftCardAmount.IsPositive() && st.giftCard != nil {
		o.GiftCardCode = st.giftCard.Code
		o.GiftCardRedemptionID = &st.giftCard.ID
	}
	if b.PromoAmount.IsPositive() && st.promo != nil {
		o.PromoGiftToken = st.promo.Token
		o.PromoRedemptionID = &st.promo.ID
	}
	if st.member != nil {
		o.MemberID = &st.member.ID
	}
	for _, i := range req.Items {
		o.Items = append(o.Items, model.OrderItem{
			ID:        uuid.New(),
			OrderID:   id,
			ProductID: strings.TrimSpace(i.ProductID),
			Name:      i.Name,
			Price:     i.Price,
			Quantity:  i.Quantity,
		})
	}
	return o
}

// Оформление заказа.
// Заказ сохраняется до любых списаний баллов; ошибки после сохранения
// возвращаются в Warnings, заказ не откатывается.
func (s *CheckoutService) SubmitOrder(ctx context.Context, req OrderRequest) (*CheckoutResult, error) {
	res := &CheckoutResult{AttemptID: uuid.New(), State: model.StateDraft}
	defer func() {
		ordersTotal.WithLabelValues(res.State.String()).Inc()
	}()

	// SUBMITTED
	res.advance(model.StateSubmitted)
	err := validateOrder(req)
	if err != nil {
		s.record(ctx, res.AttemptID, uuid.Nil, res.State, err, nil)
		return res, err
	}

	// пересчет на сервере
	st, err := s.loadPricingState(ctx, req)
	if err != nil {
		s.record(ctx, res.AttemptID, uuid.Nil, res.State, err, nil)
		return res, err
	}
	res.Pricing = pricing.Compose(st.input)
	if req.PointsToRedeem > 0 {
		err = pricing.CheckRedemption(req.PointsToRedeem, res.Pricing.SubtotalForPoints, st.input.PointsAvailable)
		if err != nil {
			s.record(ctx, res.AttemptID, uuid.Nil, res.State, err, nil)
			return res, err
		}
	}

	// PERSISTED
	order := buildOrder(uuid.New(), req, res.Pricing, st)
	order.CreatedAt = s.now()
	err = s.db.CreateOrder(ctx, order)
	if errors.Is(err, model.ErrExhausted) {
		// списание забрал параллельный заказ, ничего не сохранено
		s.record(ctx, res.AttemptID, uuid.Nil, res.State, err, nil)
		return res, err
	}
	if err != nil {
		s.logger.Error("create order", zap.String("attempt", res.AttemptID.String()), zap.Error(err))
		perr := &model.CheckoutError{
			Kind:   model.ErrPersistence,
			Reason: "order could not be saved, nothing was charged to your loyalty account, please retry",
			Err:    err,
		}
		s.record(ctx, res.AttemptID, uuid.Nil, res.State, perr, nil)
		return res, perr
	}
	res.OrderID = order.ID
	res.advance(model.StatePersisted)
	s.record(ctx, res.AttemptID, order.ID, res.State, nil, res.Pricing)

	// карта и промокод списаны до оформления, их записи забраны заказом при сохранении
	if order.GiftCardAmount.IsPositive() {
		res.advance(model.StateGiftCardDebited)
		s.record(ctx, res.AttemptID, order.ID, res.State, nil, map[string]string{
			"code": order.GiftCardCode, "amount": order.GiftCardAmount.String(),
			"redemption": order.GiftCardRedemptionID.String(),
		})
	}
	if order.PromoAmount.IsPositive() {
		res.advance(model.StatePromoRedeemed)
		s.record(ctx, res.AttemptID, order.ID, res.State, nil, map[string]string{
			"token": order.PromoGiftToken, "amount": order.PromoAmount.String(),
			"redemption": order.PromoRedemptionID.String(),
		})
	}

	// POINTS_REDEEMED: только после сохранения заказа
	if order.PointsRedeemed > 0 && st.member != nil {
		err = s.db.RedeemPoints(ctx, st.member.ID, order.PointsRedeemed, order.ID.String())
		redemptionsTotal.WithLabelValues("points", outcome(err)).Inc()
		if err != nil {
			s.postCommitFailure(ctx, res, "points", &model.CheckoutError{
				Kind: model.ErrPostCommitRedemption,
				Reason: "your order was placed but the loyalty points could not be redeemed, " +
					"please contact support with your order id",
				OrderID: order.ID,
				Err:     err,
			})
		} else {
			st.member.UsedPoints += order.PointsRedeemed
			res.advance(model.StatePointsRedeemed)
			s.record(ctx, res.AttemptID, order.ID, res.State, nil, map[string]int64{"points": order.PointsRedeemed})
		}
	}

	// ACCRUAL_POSTED
	if st.member != nil && st.member.Status == model.MemberActive {
		acc, err := s.postAccrual(ctx, *st.member, res.Pricing.SubtotalForPoints, res.Pricing.Payable, order.ID.String())
		if err != nil {
			s.postCommitFailure(ctx, res, "accrual", &model.CheckoutError{
				Kind:    model.ErrPostCommitAccrual,
				Reason:  "your order was placed but loyalty points could not be credited, support will follow up",
				OrderID: order.ID,
				Err:     err,
			})
		} else {
			res.PointsEarned = acc.Points
			res.BonusPoints = acc.BonusPoints
			res.Tier = acc.Tier
			res.advance(model.StateAccrualPosted)
			s.record(ctx, res.AttemptID, order.ID, res.State, nil, acc)
		}
		s.invalidateMember(ctx, st.member.Email)
	}

	res.advance(model.StateComplete)
	s.record(ctx, res.AttemptID, order.ID, res.State, nil, nil)
	s.publish(ctx, order, st.member, res)

	s.logger.Info("order placed",
		zap.String("order", order.ID.String()),
		zap.String("total", order.TotalAmount.String()),
		zap.Int("warnings", len(res.Warnings)),
	)
	return res, nil
}

func (s *CheckoutService) postCommitFailure(ctx context.Context, res *CheckoutResult, step string, err *model.CheckoutError) {
	postCommitFailures.WithLabelValues(step).Inc()
	s.logger.Error("post-commit step failed",
		zap.String("step", step),
		zap.String("order", res.OrderID.String()),
		zap.Error(err),
	)
	res.Warnings = append(res.Warnings, err)
	s.record(ctx, res.AttemptID, res.OrderID, res.State, err, map[string]string{"step": step})
}

func (s *CheckoutService) publish(ctx context.Context, order model.Order, member *model.LoyaltyMember, res *CheckoutResult) {
	if s.publisher == nil {
		return
	}
	event := model.OrderEvent{
		OrderID:        order.ID.String(),
		Total:          order.TotalAmount,
		PointsRedeemed: order.PointsRedeemed,
		PointsEarned:   res.PointsEarned + res.BonusPoints,
		State:          res.State,
		CreatedAt:      order.CreatedAt,
	}
	if member != nil {
		event.MemberID = member.ID.String()
		event.UserID = member.UserID
	}
	for _, w := range res.Warnings {
		event.Warnings = append(event.Warnings, w.Error())
	}
	err := s.publisher.PublishOrder(ctx, event)
	if err != nil {
		s.logger.Error("publish order event", zap.String("order", event.OrderID), zap.Error(err))
	}
}

func (s *CheckoutService) GetOrder(ctx context.Context, id uuid.UUID) (model.Order, error) {
	return s.db.GetOrder(ctx, id)
}
