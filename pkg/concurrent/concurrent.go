package concurrent

import (
	"context"

	"github.com/zeusync/gameai/pkg/sequence"
	"golang.org/x/sync/errgroup"
)

// Concurrent runs the action function for each element of the iterator in a separate goroutine.
// It waits for all goroutines to finish. If action returns an error, it returns the first error encountered.
func Concurrent[T any](i *sequence.Iterator[T], action func(T) error) error {
	errGroup := errgroup.Group{}
	next, stop := i.Pull()
	defer stop()

	for {
		value, valid := next()
		if !valid {
			break
		}

		errGroup.Go(func() error {
			return action(value)
		})
	}

	return errGroup.Wait()
}

// ConcurrentContext is Concurrent with a shared context that is cancelled as
// soon as one action fails, and at most limit actions in flight. A limit
// below 1 means no limit. Elements left when ctx is cancelled are skipped and
// ctx.Err() is returned.
func ConcurrentContext[T any](ctx context.Context, i *sequence.Iterator[T], limit int, action func(context.Context, T) error) error {
	errGroup, groupCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		errGroup.SetLimit(limit)
	}
	next, stop := i.Pull()
	defer stop()

	stopped := false
	for {
		value, valid := next()
		if !valid {
			break
		}
		if groupCtx.Err() != nil {
			stopped = true
			break
		}

		errGroup.Go(func() error {
			return action(groupCtx, value)
		})
	}

	if err := errGroup.Wait(); err != nil {
		return err
	}
	if stopped {
		return ctx.Err()
	}
	return nil
}
