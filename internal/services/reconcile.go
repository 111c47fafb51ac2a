package checkout

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Обработка участников с ограничением параллельности
func reconcileMembers(ctx context.Context, ids []uuid.UUID, workers int, fn func(context.Context, uuid.UUID) error) error {
	if workers <= 0 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, id := range ids {
		select {
		case <-gctx.Done():
			return g.Wait()
		default:
		}
		id := id
		g.Go(func() error {
			return fn(gctx, id)
		})
	}
	return g.Wait()
}
