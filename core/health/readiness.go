package health

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/qrkit/core/handler"
	"github.com/dmitrymomot/qrkit/core/logger"
	"github.com/dmitrymomot/qrkit/core/response"
)

// CheckTimeout bounds every readiness check.
const CheckTimeout = 3 * time.Second

// Check is a named dependency probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Readiness answers "READY" when every check passes and 503 otherwise. The
// error details list the names of the failed checks.
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		failed := run(ctx, log, checks)
		if len(failed) > 0 {
			return response.Error(response.ErrServiceUnavailable.WithDetails(map[string]any{
				"failed": failed,
			}))
		}
		return response.String("READY")
	}
}

func run(ctx context.Context, log *slog.Logger, checks []Check) []string {
	var (
		mu     sync.Mutex
		failed []string
	)

	var g errgroup.Group
	for _, c := range checks {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, CheckTimeout)
			defer cancel()

			if err := probe(cctx, c.Fn); err != nil {
				log.ErrorContext(ctx, "Readiness check failed",
					logger.Component("health"),
					logger.Key("check", c.Name),
					logger.Error(err),
				)
				mu.Lock()
				failed = append(failed, c.Name)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	slices.Sort(failed)
	return failed
}

func probe(ctx context.Context, fn func(context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("check panicked: %v", p)
		}
	}()
	if fn == nil {
		return nil
	}
	return fn(ctx)
}
