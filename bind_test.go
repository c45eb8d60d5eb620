package cardform_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardform"
)

type observed struct {
	ev   cardform.Event
	err  error
	view cardform.View
}

func bindForm(t *testing.T, ctx context.Context, f *cardform.Form, s *cardform.Stream, stop error) (<-chan observed, <-chan error) {
	t.Helper()

	out := make(chan observed, 16)
	done := make(chan error, 1)
	sub := s.Subscribe(ctx)
	go func() {
		done <- f.Bind(ctx, sub, func(_ context.Context, ev cardform.Event, err error) error {
			out <- observed{ev: ev, err: err, view: f.View()}
			if ev.Kind == cardform.EventSubmit {
				return stop
			}
			return nil
		})
	}()
	return out, done
}

func next(t *testing.T, ch <-chan observed) observed {
	t.Helper()
	select {
	case o := <-ch:
		return o
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for form update")
		return observed{}
	}
}

func wait(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(time.Second):
		t.Fatal("bind did not return")
		return nil
	}
}

func TestForm_Bind(t *testing.T) {
	t.Parallel()

	t.Run("applies events and submits", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		submitted := make(chan cardform.FormData, 1)
		f := cardform.New(func(_ context.Context, data cardform.FormData) error {
			submitted <- data
			return nil
		})
		s := cardform.NewStream(8)
		t.Cleanup(func() { _ = s.Close() })
		updates, done := bindForm(t, ctx, f, s, nil)

		require.NoError(t, s.Publish(ctx, cardform.Change(cardform.FieldHolder, "Jane")))
		require.NoError(t, s.Publish(ctx, cardform.Change(cardform.FieldNumber, visa)))
		require.NoError(t, s.Publish(ctx, cardform.Change(cardform.FieldCVV, "123")))

		next(t, updates)
		assert.False(t, next(t, updates).view.CanSubmit)
		assert.True(t, next(t, updates).view.CanSubmit)

		require.NoError(t, s.Publish(ctx, cardform.SubmitRequest()))
		o := next(t, updates)
		assert.NoError(t, o.err)
		assert.Equal(t, cardform.FormData{Holder: "Jane", Number: visa, CVV: "123"}, <-submitted)

		cancel()
		assert.NoError(t, wait(t, done))
		require.Eventually(t, func() bool { return s.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("reports blocked submit to the observer", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		f := cardform.New(func(context.Context, cardform.FormData) error { return nil })
		s := cardform.NewStream(8)
		t.Cleanup(func() { _ = s.Close() })
		updates, _ := bindForm(t, ctx, f, s, nil)

		require.NoError(t, s.Publish(ctx, cardform.SubmitRequest()))
		assert.ErrorIs(t, next(t, updates).err, cardform.ErrSubmitBlocked)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		f := cardform.New(nil)
		s := cardform.NewStream(8)
		t.Cleanup(func() { _ = s.Close() })
		updates, _ := bindForm(t, ctx, f, s, nil)

		require.NoError(t, s.Publish(ctx, cardform.Change("ccExpiry", "12/30")))
		assert.ErrorIs(t, next(t, updates).err, cardform.ErrUnknownField)
	})

	t.Run("observer error stops bind and releases subscription", func(t *testing.T) {
		t.Parallel()
		stop := errors.New("client gone")
		f := cardform.New(nil)
		s := cardform.NewStream(8)
		t.Cleanup(func() { _ = s.Close() })
		updates, done := bindForm(t, context.Background(), f, s, stop)

		require.NoError(t, s.Publish(context.Background(), cardform.SubmitRequest()))
		next(t, updates)
		assert.ErrorIs(t, wait(t, done), stop)
		assert.Equal(t, 0, s.Subscribers())
	})

	t.Run("stream close ends bind", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		s := cardform.NewStream(8)
		_, done := bindForm(t, context.Background(), f, s, nil)

		require.NoError(t, s.Close())
		assert.NoError(t, wait(t, done))
	})

	t.Run("without observer", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		f := cardform.New(nil)
		s := cardform.NewStream(8)
		sub := s.Subscribe(ctx)

		done := make(chan error, 1)
		go func() { done <- f.Bind(ctx, sub, nil) }()

		require.NoError(t, s.Publish(ctx, cardform.SubmitRequest()))
		cancel()
		assert.NoError(t, wait(t, done))
		_ = s.Close()
	})
}
