// Job - сверка балансов участников с журналом транзакций
// Баланс участника должен совпадать с суммой EARN минус сумма REDEEM
package main

import (
	"context"
	"sync/atomic"

	"github.com/glkeru/loyalty/checkout/internal/config"
	db "github.com/glkeru/loyalty/checkout/internal/db"
	services "github.com/glkeru/loyalty/checkout/internal/services"
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

	ctx := context.Background()

	// database
	ledger, err := db.NewLedgerDB(ctx, cfg.DB.URL, logger)
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer ledger.Close()

	serv := services.NewCheckoutService(logger, ledger, nil, nil, nil)

	var checked, mismatched atomic.Int64
	err = serv.ReconcileAll(ctx, cfg.ReconcileWorkers, func(r services.ReconcileReport) {
		checked.Add(1)
		if !r.Consistent {
			mismatched.Add(1)
		}
	})
	if err != nil {
		logger.Error(err.Error())
		return
	}
	logger.Info("Job reconcile is finished",
		zap.Int64("checked", checked.Load()),
		zap.Int64("mismatched", mismatched.Load()),
	)
}
