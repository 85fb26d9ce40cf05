package jsonstream

import (
	"context"
	"io"

	"github.com/samber/mo"
)

// Stream decodes the JSON array in r on a background goroutine and delivers
// the elements on the returned channel. Elements are queued without limit
// between the parser and the reader of the channel, so a slow consumer never
// stalls the parser; memory grows with the backlog instead.
//
// A decoding error is delivered as the last result before the channel is
// closed. Cancelling ctx stops the parser and closes the channel. A consumer
// that stops reading early must cancel ctx; otherwise the goroutines stay
// blocked holding the backlog.
func Stream[T any](ctx context.Context, r io.Reader) <-chan mo.Result[T] {
	in := make(chan mo.Result[T])

	go func() {
		defer close(in)

		send := func(res mo.Result[T]) bool {
			select {
			case in <- res:
				return true
			case <-ctx.Done():
				return false
			}
		}

		err := decodeArray(r, func(item T) bool {
			return send(mo.Ok(item))
		})
		if err != nil {
			send(mo.Err[T](err))
		}
	}()

	return unbounded(ctx, in)
}

// unbounded forwards everything from in to the returned channel, buffering as
// much as needed.
func unbounded[T any](ctx context.Context, in <-chan T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		var queue []T
		for in != nil || len(queue) > 0 {
			var (
				send chan<- T
				head T
			)
			if len(queue) > 0 {
				send = out
				head = queue[0]
			}

			select {
			case item, ok := <-in:
				if !ok {
					in = nil
					continue
				}
				queue = append(queue, item)
			case send <- head:
				var zero T
				queue[0] = zero
				queue = queue[1:]
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
