// HTTP server - подарочные карты, промокоды, клуб и оформление заказов
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/glkeru/loyalty/checkout/internal/api"
	"github.com/glkeru/loyalty/checkout/internal/config"
	db "github.com/glkeru/loyalty/checkout/internal/db"
	kafka "github.com/glkeru/loyalty/checkout/internal/external/kafka"
	interf "github.com/glkeru/loyalty/checkout/internal/interfaces"
	services "github.com/glkeru/loyalty/checkout/internal/services"
	tracing "github.com/glkeru/loyalty/checkout/observability/otel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
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

	// tracing
	if cfg.OtelEndpoint != "" {
		shutdown, err := tracing.InitTracer(ctx, cfg.OtelEndpoint, "checkout", logger)
		if err != nil {
			logger.Error("tracing is disabled", zap.Error(err))
		} else {
			defer shutdown()
		}
	}

	// database
	ledger, err := db.NewLedgerDB(ctx, cfg.DB.URL, logger)
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer ledger.Close()
	if cfg.DB.Migrate {
		err = ledger.Migrate(ctx)
		if err != nil {
			logger.Error("migrate", zap.Error(err))
			panic(err)
		}
	}

	// cache
	var cache interf.CacheStorage
	if cfg.Cache.URL != "" {
		redis, err := db.NewCacheService(ctx, cfg.Cache.URL, cfg.Cache.User, cfg.Cache.Password)
		if err != nil {
			logger.Error("cache is disabled", zap.Error(err))
		} else {
			defer redis.Close()
			cache = redis
		}
	}

	// order events
	var publisher interf.OrderPublisher
	if cfg.KafkaURL != "" {
		writer, err := kafka.NewWriter(cfg.KafkaURL, cfg.KafkaTopic)
		if err != nil {
			logger.Error("order events are disabled", zap.Error(err))
		} else {
			defer writer.Close()
			publisher = writer
		}
	}

	// journal
	var journal interf.CheckoutJournal
	if cfg.MongoURL != "" {
		mgo, err := db.NewJournalDB(cfg.MongoURL)
		if err != nil {
			logger.Error("checkout journal is disabled", zap.Error(err))
		} else {
			defer mgo.Close(context.Background())
			journal = mgo
		}
	}

	serv := services.NewCheckoutService(logger, ledger, cache, publisher, journal)

	// api handlers
	r := api.NewHandler(serv, logger)
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(r, "checkout"),
		Addr:         cfg.HTTP.Addr(),
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go func() {
		logger.Info("listen", zap.String("addr", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server", zap.Error(err))
		}
	}()

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, tcancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer tcancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
