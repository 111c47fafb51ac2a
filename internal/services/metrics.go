package checkout

import (
	"errors"

	model "github.com/glkeru/loyalty/checkout/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	redemptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_redemptions_total",
			Help: "Списания: подарочные карты, промокоды, баллы",
		},
		[]string{"kind", "outcome"},
	)

	postCommitFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_post_commit_failures_total",
			Help: "Ошибки после сохранения заказа",
		},
		[]string{"step"},
	)

	ordersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_orders_total",
			Help: "Попытки оформления заказа по итоговому состоянию",
		},
		[]string{"state"},
	)

	pointsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_points_earned_total",
			Help: "Начисленные баллы",
		},
	)
)

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	case errors.Is(err, model.ErrExpired):
		return "expired"
	case errors.Is(err, model.ErrExhausted):
		return "exhausted"
	case errors.Is(err, model.ErrInsufficientForCap):
		return "over_cap"
	case errors.Is(err, model.ErrValidation):
		return "invalid"
	}
	return "error"
}
