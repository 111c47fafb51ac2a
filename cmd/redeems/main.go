// Job - повторное списание баллов по заказам (очередь points_redeems)
// Поддержка ставит запрос, если списание после сохранения заказа не прошло
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/glkeru/loyalty/checkout/internal/config"
	db "github.com/glkeru/loyalty/checkout/internal/db"
	rabbit "github.com/glkeru/loyalty/checkout/internal/external/rabbitmq"
	model "github.com/glkeru/loyalty/checkout/internal/models"
	services "github.com/glkeru/loyalty/checkout/internal/services"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func main() {
	// config
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// log
	logger, err := cfg.Log.Logger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// rabbitmq
	reader, err := rabbit.NewRabbitConsumer(cfg.RabbitURL)
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer reader.Close()

	// database
	ledger, err := db.NewLedgerDB(ctx, cfg.DB.URL, logger)
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer ledger.Close()

	// cache
	var serv *services.CheckoutService
	redis, err := db.NewCacheService(ctx, cfg.Cache.URL, cfg.Cache.User, cfg.Cache.Password)
	if err != nil {
		logger.Error(err.Error())
		serv = services.NewCheckoutService(logger, ledger, nil, nil, nil)
	} else {
		defer redis.Close()
		serv = services.NewCheckoutService(logger, ledger, redis, nil, nil)
	}

	// os signals
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		cancel()
	}()

	// workers
	wg := &sync.WaitGroup{}
	wg.Add(cfg.RedeemWorkers)
	for i := 0; i < cfg.RedeemWorkers; i++ {
		go worker(ctx, serv, wg, logger, reader)
	}
	wg.Wait()
}

// worker for rabbitmq messages
func worker(ctx context.Context, serv *services.CheckoutService, wg *sync.WaitGroup, logger *zap.Logger, reader *rabbit.RabbitConsumer) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-reader.Msg:
			if !ok {
				return
			}
			handle(ctx, serv, logger, reader, msg)
		}
	}
}

func handle(ctx context.Context, serv *services.CheckoutService, logger *zap.Logger, reader *rabbit.RabbitConsumer, msg amqp.Delivery) {
	req, err := rabbit.ParseRedeem(msg.Body)
	if err != nil {
		// битое сообщение в очередь не возвращаем
		logger.Error("parse redeem", zap.Error(err))
		_ = msg.Nack(false, false)
		return
	}
	memberID, err1 := uuid.Parse(req.MemberID)
	orderID, err2 := uuid.Parse(req.OrderID)
	if err = errors.Join(err1, err2); err != nil {
		logger.Error("parse redeem ids", zap.String("redeem", req.RedeemID), zap.Error(err))
		_ = reader.Processed(ctx, req.RedeemID, false, "member or order id is not correct")
		_ = msg.Ack(false)
		return
	}

	_, err = serv.RedeemPoints(ctx, memberID, req.Points, orderID)
	confirm, success, reason := outcome(err)
	if !confirm {
		// ошибка хранилища - вернем в очередь
		logger.Error("redeem", zap.String("redeem", req.RedeemID), zap.Error(err))
		_ = msg.Nack(false, true)
		return
	}

	err = reader.Processed(ctx, req.RedeemID, success, reason)
	if err != nil {
		logger.Error("confirm redeem", zap.String("redeem", req.RedeemID), zap.Error(err))
		_ = msg.Nack(false, true)
		return
	}
	_ = msg.Ack(false)
}

// Итог запроса: подтверждать ли его и с каким результатом.
// Повтор по уже списанному заказу подтверждается как успешный
func outcome(err error) (confirm bool, success bool, reason string) {
	switch {
	case err == nil:
		return true, true, ""
	case errors.Is(err, model.ErrAlreadyRedeemed):
		return true, true, "already redeemed"
	case isFinal(err):
		return true, false, model.Reason(err)
	}
	return false, false, ""
}

// повтор не поможет
func isFinal(err error) bool {
	return errors.Is(err, model.ErrValidation) ||
		errors.Is(err, model.ErrNotFound) ||
		errors.Is(err, model.ErrExhausted) ||
		errors.Is(err, model.ErrInsufficientForCap)
}
