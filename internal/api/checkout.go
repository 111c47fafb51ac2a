package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	model "github.com/glkeru/loyalty/checkout/internal/models"
	"github.com/glkeru/loyalty/checkout/internal/pricing"
	service "github.com/glkeru/loyalty/checkout/internal/services"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=./mock_api_test.go -package=checkout . Checkout

// Операции оформления, которые обслуживает HTTP
type Checkout interface {
	CheckGiftCard(ctx context.Context, code string) (service.GiftCardResult, error)
	ApplyGiftCard(ctx context.Context, code string, amount decimal.Decimal) (service.GiftCardResult, error)
	CheckPromo(ctx context.Context, token string) (service.PromoResult, error)
	ApplyPromo(ctx context.Context, token string, remaining decimal.Decimal) (service.PromoResult, error)
	LookupMember(ctx context.Context, email string, subtotal decimal.Decimal) (service.MemberView, error)
	JoinClub(ctx context.Context, userID string, email string) (service.MemberView, error)
	History(ctx context.Context, memberID uuid.UUID, from time.Time, to time.Time) ([]model.LoyaltyTransaction, error)
	RedeemPoints(ctx context.Context, memberID uuid.UUID, points int64, orderID uuid.UUID) (service.MemberView, error)
	Quote(ctx context.Context, req service.OrderRequest) (pricing.Breakdown, error)
	SubmitOrder(ctx context.Context, req service.OrderRequest) (*service.CheckoutResult, error)
	GetOrder(ctx context.Context, id uuid.UUID) (model.Order, error)
	Journal(ctx context.Context, orderID uuid.UUID) ([]model.JournalEntry, error)
	AttemptJournal(ctx context.Context, attemptID uuid.UUID) ([]model.JournalEntry, error)
}

var _ Checkout = (*service.CheckoutService)(nil)

type CheckoutHandler struct {
	router *mux.Router
	serv   Checkout
	logger *zap.Logger
}

func NewHandler(serv Checkout, logger *zap.Logger) *CheckoutHandler {
	router := mux.NewRouter()
	handler := &CheckoutHandler{router, serv, logger}
	router.Use(MiddlewareLog())
	router.HandleFunc("/giftcards/check", handler.CheckGiftCardHandler).Methods(http.MethodPost)
	router.HandleFunc("/giftcards/apply", handler.ApplyGiftCardHandler).Methods(http.MethodPost)
	router.HandleFunc("/promos/check", handler.CheckPromoHandler).Methods(http.MethodPost)
	router.HandleFunc("/promos/apply", handler.ApplyPromoHandler).Methods(http.MethodPost)
	router.HandleFunc("/members", handler.LookupMemberHandler).Methods(http.MethodGet)
	router.HandleFunc("/members", handler.JoinClubHandler).Methods(http.MethodPost)
	router.HandleFunc("/members/{id}/transactions", handler.HistoryHandler).Methods(http.MethodGet)
	router.HandleFunc("/checkout/quote", handler.QuoteHandler).Methods(http.MethodPost)
	router.HandleFunc("/orders", handler.SubmitOrderHandler).Methods(http.MethodPost)
	router.HandleFunc("/orders/{id}", handler.GetOrderHandler).Methods(http.MethodGet)
	router.HandleFunc("/orders/{id}/journal", handler.JournalHandler).Methods(http.MethodGet)
	router.HandleFunc("/checkout/attempts/{id}/journal", handler.AttemptJournalHandler).Methods(http.MethodGet)
	router.HandleFunc("/points/redeem", handler.RedeemPointsHandler).Methods(http.MethodPost)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return handler
}

func (r *CheckoutHandler) ServeHTTP(w http.ResponseWriter, res *http.Request) {
	r.router.ServeHTTP(w, res)
}

func (r *CheckoutHandler) Log(msg string, handler string, err error) {
	r.logger.Error(msg,
		zap.String("handler", handler),
		zap.Error(err),
	)
}

type ErrorResponse struct {
	Error     string     `json:"error"`
	Reason    string     `json:"reason"`
	OrderID   *uuid.UUID `json:"orderId,omitempty"`
	AttemptID *uuid.UUID `json:"attemptId,omitempty"` // для поиска в журнале, если заказ не сохранен
}

// Код ответа по виду ошибки
func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrExpired):
		return http.StatusGone
	case errors.Is(err, model.ErrExhausted), errors.Is(err, model.ErrInsufficientForCap):
		return http.StatusConflict
	case errors.Is(err, model.ErrPersistence):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func kindOf(err error) string {
	switch {
	case errors.Is(err, model.ErrValidation):
		return "validation"
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	case errors.Is(err, model.ErrExpired):
		return "expired"
	case errors.Is(err, model.ErrExhausted):
		return "exhausted"
	case errors.Is(err, model.ErrInsufficientForCap):
		return "insufficient_for_cap"
	case errors.Is(err, model.ErrPersistence):
		return "persistence"
	case errors.Is(err, model.ErrPostCommitRedemption):
		return "post_commit_redemption"
	case errors.Is(err, model.ErrPostCommitAccrual):
		return "post_commit_accrual"
	}
	return "internal"
}

func errorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: kindOf(err), Reason: model.Reason(err)}
	var ce *model.CheckoutError
	if errors.As(err, &ce) && ce.OrderID != uuid.Nil {
		resp.OrderID = &ce.OrderID
	}
	if resp.Error == "internal" {
		// детали хранилища наружу не отдаем
		resp.Reason = "internal error"
	}
	return resp
}

func (r *CheckoutHandler) writeJSON(w http.ResponseWriter, status int, v any, handler string) {
	j, err := json.Marshal(v)
	if err != nil {
		r.Log("Marshal", handler, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(j)
}

func (r *CheckoutHandler) writeError(w http.ResponseWriter, err error, handler string) {
	r.writeErrorResponse(w, err, errorResponse(err), handler)
}

func (r *CheckoutHandler) writeErrorResponse(w http.ResponseWriter, err error, resp ErrorResponse, handler string) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		r.Log("Request failed", handler, err)
	}
	r.writeJSON(w, status, resp, handler)
}

func (r *CheckoutHandler) decode(w http.ResponseWriter, req *http.Request, v any, handler string) bool {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		r.Log("Get request body", handler, err)
		r.writeError(w, model.NewError(model.ErrValidation, "body is empty"), handler)
		return false
	}
	defer req.Body.Close()
	err = json.Unmarshal(body, v)
	if err != nil {
		r.writeError(w, model.NewError(model.ErrValidation, "body is not correct: %v", err), handler)
		return false
	}
	return true
}

func pathID(req *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(req)["id"])
	if err != nil {
		return uuid.Nil, model.NewError(model.ErrNotFound, "unknown id %q", mux.Vars(req)["id"])
	}
	return id, nil
}

type codeRequest struct {
	Code   string          `json:"code"`
	Amount decimal.Decimal `json:"amount"`
}

// Проверка подарочной карты
func (r *CheckoutHandler) CheckGiftCardHandler(w http.ResponseWriter, req *http.Request) {
	var body codeRequest
	if !r.decode(w, req, &body, "CheckGiftCardHandler") {
		return
	}
	res, err := r.serv.CheckGiftCard(req.Context(), body.Code)
	if err != nil {
		r.writeError(w, err, "CheckGiftCardHandler")
		return
	}
	r.writeJSON(w, http.StatusOK, res, "CheckGiftCardHandler")
}

// Списание с подарочной карты
func (r *CheckoutHandler) ApplyGiftCardHandler(w http.ResponseWriter, req *http.Request) {
	var body codeRequest
	if !r.decode(w, req, &body, "ApplyGiftCardHandler") {
		return
	}
	res, err := r.serv.ApplyGiftCard(req.Context(), body.Code, body.Amount)
	if err != nil {
		r.writeError(w, err, "ApplyGiftCardHandler")
		return
	}
	r.writeJSON(w, http.StatusOK, res, "ApplyGiftCardHandler")
}

type promoRequest struct {
	Token     string          `json:"token"`
	Remaining decimal.Decimal `json:"remaining"`
}

// Проверка промокода
func (r *CheckoutHandler) CheckPromoHandler(w http.ResponseWriter, req *http.Request) {
	var body promoRequest
	if !r.decode(w, req, &body, "CheckPromoHandler") {
		return
	}
	res, err := r.serv.CheckPromo(req.Context(), body.Token)
	if err != nil {
		r.writeError(w, err, "CheckPromoHandler")
		return
	}
	r.writeJSON(w, http.StatusOK, res, "CheckPromoHandler")
}

// Использование промокода
func (r *CheckoutHandler) ApplyPromoHandler(w http.ResponseWriter, req *http.Request) {
	var body promoRequest
	if !r.decode(w, req, &body, "ApplyPromoHandler") {
		return
	}
	res, err := r.serv.ApplyPromo(req.Context(), body.Token, body.Remaining)
	if err != nil {
		r.writeError(w, err, "ApplyPromoHandler")
		return
	}
	r.writeJSON(w, http.StatusOK, res, "ApplyPromoHandler")
}

// Участник по email
func (r *CheckoutHandler) LookupMemberHandler(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	subtotal := decimal.Zero
	if s := q.Get("subtotal"); s != "" {
		var err error
		subtotal, err = decimal.NewFromString(s)
		if err != nil {
			r.writeError(w, model.NewError(model.ErrValidation, "subtotal %q is not a number", s), "LookupMemberHandler")
			return
		}
	}
	res, err := r.serv.LookupMember(req.Context(), q.Get("email"), subtotal)
	if err != nil {
		r.writeError(w, err, "LookupMemberHandler")
		return
	}
	r.writeJSON(w, http.StatusOK, res, "LookupMemberHandler")
}

type joinRequest struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Вступление в клуб
func (r *CheckoutHandler) JoinClubHandler(w http.ResponseWriter, req *http.Request) {
	var body joinRequest
	if !r.decode(w, req, &body, "JoinClubHandler") {
		return
	}
	res, err := r.serv.JoinClub(req.Context(), body.UserID, body.Email)
	if err != nil {
		r.writeError(w, err, "JoinClubHandler")
		return
	}
	r.writeJSON(w, http.StatusCreated, res, "JoinClubHandler")
}

func parseDate(s string, def time.Time) (time.Time, error) {
	if s == "" {
		return def, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return t, model.NewError(model.ErrValidation, "date %q is not correct", s)
	}
	return t, nil
}

// История транзакций
func (r *CheckoutHandler) HistoryHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		r.writeError(w, err, "HistoryHandler")
		return
	}
	now := time.Now()
	from, err := parseDate(req.URL.Query().Get("from"), now.AddDate(0, -1, 0))
	if err != nil {
		r.writeError(w, err, "HistoryHandler")
		return
	}
	to, err := parseDate(req.URL.Query().Get("to"), now)
	if err != nil {
		r.writeError(w, err, "HistoryHandler")
		return
	}
	tnxs, err := r.serv.History(req.Context(), id, from, to)
	if err != nil {
		r.writeError(w, err, "HistoryHandler")
		return
	}
	if tnxs == nil {
		tnxs = []model.LoyaltyTransaction{}
	}
	r.writeJSON(w, http.StatusOK, tnxs, "HistoryHandler")
}

// Предварительный расчет
func (r *CheckoutHandler) QuoteHandler(w http.ResponseWriter, req *http.Request) {
	var body service.OrderRequest
	if !r.decode(w, req, &body, "QuoteHandler") {
		return
	}
	res, err := r.serv.Quote(req.Context(), body)
	if err != nil {
		r.writeError(w, err, "QuoteHandler")
		return
	}
	r.writeJSON(w, http.StatusOK, res, "QuoteHandler")
}

type OrderResponse struct {
	*service.CheckoutResult
	Warnings []ErrorResponse `json:"warnings,omitempty"`
}

// Оформление заказа
func (r *CheckoutHandler) SubmitOrderHandler(w http.ResponseWriter, req *http.Request) {
	var body service.OrderRequest
	if !r.decode(w, req, &body, "SubmitOrderHandler") {
		return
	}
	res, err := r.serv.SubmitOrder(req.Context(), body)
	if err != nil {
		resp := errorResponse(err)
		if res != nil && res.AttemptID != uuid.Nil {
			resp.AttemptID = &res.AttemptID
		}
		r.writeErrorResponse(w, err, resp, "SubmitOrderHandler")
		return
	}
	resp := OrderResponse{CheckoutResult: res}
	for _, warn := range res.Warnings {
		resp.Warnings = append(resp.Warnings, errorResponse(warn))
	}
	r.writeJSON(w, http.StatusCreated, resp, "SubmitOrderHandler")
}

// Заказ
func (r *CheckoutHandler) GetOrderHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		r.writeError(w, err, "GetOrderHandler")
		return
	}
	order, err := r.serv.GetOrder(req.Context(), id)
	if err != nil {
		r.writeError(w, err, "GetOrderHandler")
		return
	}
	r.writeJSON(w, http.StatusOK, order, "GetOrderHandler")
}

// Журнал оформления заказа
func (r *CheckoutHandler) JournalHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		r.writeError(w, err, "JournalHandler")
		return
	}
	entries, err := r.serv.Journal(req.Context(), id)
	if err != nil {
		r.writeError(w, err, "JournalHandler")
		return
	}
	r.writeJSON(w, http.StatusOK, entries, "JournalHandler")
}

// Журнал попытки оформления
func (r *CheckoutHandler) AttemptJournalHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		r.writeError(w, err, "AttemptJournalHandler")
		return
	}
	entries, err := r.serv.AttemptJournal(req.Context(), id)
	if err != nil {
		r.writeError(w, err, "AttemptJournalHandler")
		return
	}
	r.writeJSON(w, http.StatusOK, entries, "AttemptJournalHandler")
}

type redeemRequest struct {
	MemberID uuid.UUID   `json:"memberId"`
	OrderID  uuid.UUID   `json:"orderId"`
	Points   json.Number `json:"points"`
}

// Списание баллов по сохраненному заказу
func (r *CheckoutHandler) RedeemPointsHandler(w http.ResponseWriter, req *http.Request) {
	var body redeemRequest
	if !r.decode(w, req, &body, "RedeemPointsHandler") {
		return
	}
	points, err := body.Points.Int64()
	if err != nil {
		r.writeError(w, model.NewError(model.ErrValidation, "points must be a whole number"), "RedeemPointsHandler")
		return
	}
	res, err := r.serv.RedeemPoints(req.Context(), body.MemberID, points, body.OrderID)
	if err != nil {
		r.writeError(w, err, "RedeemPointsHandler")
		return
	}
	r.writeJSON(w, http.StatusOK, res, "RedeemPointsHandler")
}
