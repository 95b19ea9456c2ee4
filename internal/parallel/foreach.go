package parallel

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ForEach runs fn once per range with at most limit tasks in flight and
// blocks until every task has returned. The first non-nil error cancels the
// context passed to the remaining tasks and is returned. A panic inside fn is
// recovered and returned as an error. limit < 1 means one task per range.
func ForEach(ctx context.Context, ranges []Range, limit int, fn func(ctx context.Context, idx int, r Range) error) error {
	if len(ranges) == 0 {
		return ctx.Err()
	}
	if limit < 1 {
		limit = len(ranges)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, r := range ranges {
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = fmt.Errorf("task %d [%d,%d) panicked: %v", i, r.Start, r.End, rec)
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i, r)
		})
	}
	return g.Wait()
}
