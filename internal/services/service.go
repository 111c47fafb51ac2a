package checkout

import (
	"context"
	"time"

	interf "github.com/glkeru/loyalty/checkout/internal/interfaces"
	model "github.com/glkeru/loyalty/checkout/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CheckoutService struct {
	logger    *zap.Logger
	db        interf.LedgerStorage
	cache     interf.CacheStorage    // может быть nil
	publisher interf.OrderPublisher  // может быть nil
	journal   interf.CheckoutJournal // может быть nil
	now       func() time.Time
}

func NewCheckoutService(logger *zap.Logger, db interf.LedgerStorage, cache interf.CacheStorage,
	publisher interf.OrderPublisher, journal interf.CheckoutJournal) *CheckoutService {
	return &CheckoutService{
		logger:    logger,
		db:        db,
		cache:     cache,
		publisher: publisher,
		journal:   journal,
		now:       time.Now,
	}
}

func (s *CheckoutService) Log(err error) {
	s.logger.Error(err.Error())
}

// инвалидировать кэш участника
func (s *CheckoutService) invalidateMember(ctx context.Context, email string) {
	if s.cache == nil || email == "" {
		return
	}
	err := s.cache.InvalidateMember(ctx, email)
	if err != nil {
		s.logger.Error("invalidate member cache", zap.String("email", email), zap.Error(err))
	}
}

// запись в журнал оформления
func (s *CheckoutService) record(ctx context.Context, attempt uuid.UUID, orderID uuid.UUID, state model.CommitState, cause error, details any) {
	s.logger.Debug("checkout state",
		zap.String("attempt", attempt.String()),
		zap.String("state", state.String()),
	)
	if s.journal == nil {
		return
	}
	entry := model.JournalEntry{
		AttemptID: attempt.String(),
		State:     state.String(),
		At:        s.now(),
		Details:   details,
	}
	if orderID != uuid.Nil {
		entry.OrderID = orderID.String()
	}
	if cause != nil {
		entry.Error = cause.Error()
	}
	err := s.journal.Record(ctx, entry)
	if err != nil {
		s.logger.Error("checkout journal", zap.String("attempt", attempt.String()), zap.Error(err))
	}
}

// Журнал по заказу
func (s *CheckoutService) Journal(ctx context.Context, orderID uuid.UUID) ([]model.JournalEntry, error) {
	if s.journal == nil {
		return nil, model.NewError(model.ErrNotFound, "checkout journal is not configured")
	}
	return s.journal.ByOrder(ctx, orderID.String())
}

// Журнал попытки оформления, в том числе неудачной до сохранения заказа
func (s *CheckoutService) AttemptJournal(ctx context.Context, attemptID uuid.UUID) ([]model.JournalEntry, error) {
	if s.journal == nil {
		return nil, model.NewError(model.ErrNotFound, "checkout journal is not configured")
	}
	return s.journal.ByAttempt(ctx, attemptID.String())
}
