package cardform

import (
	"context"
	"errors"

	"github.com/dmitrymomot/cardform/pkg/logger"
)

// Observer is called after the form handles each event, with the error the
// form returned for it (nil for field edits). Returning an error stops Bind.
type Observer func(ctx context.Context, ev Event, err error) error

// Bind feeds events from sub into the form until ctx is done or the
// subscription ends. Bind owns sub and closes it on every return path.
//
// All form mutations happen on the goroutine calling Bind.
func (f *Form) Bind(ctx context.Context, sub *Subscription, observe Observer) error {
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-sub.Events():
			if !ok {
				return nil
			}
			err := f.Apply(ctx, ev)
			if observe != nil {
				if oerr := observe(ctx, ev, err); oerr != nil {
					return oerr
				}
				continue
			}
			if err != nil && !errors.Is(err, ErrSubmitBlocked) {
				f.logger.ErrorContext(ctx, "card form event failed",
					logger.Component("cardform"),
					logger.Event(ev.Kind.String()),
					logger.Error(err),
				)
			}
		}
	}
}
