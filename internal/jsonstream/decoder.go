package jsonstream

import (
	"io"
	"iter"
	"sync"

	"github.com/samber/mo"
)

// Decoder yields the elements of a JSON array one at a time. Parsing runs on
// its own goroutine and hands each element over an unbuffered channel, so
// the parser never gets more than one element ahead of the caller.
type Decoder[T any] struct {
	results chan mo.Result[T]
	done    chan struct{}
	once    sync.Once
}

// NewDecoder decodes r by walking the JSON tokens of the array.
func NewDecoder[T any](r io.Reader) *Decoder[T] {
	return start(r, decodeArray[T])
}

// NewSequenceDecoder decodes r by stripping the array framing with an
// ArrayReader and decoding the remaining values in sequence.
func NewSequenceDecoder[T any](r io.Reader) *Decoder[T] {
	return start(r, decodeElements[T])
}

func start[T any](r io.Reader, drive driver[T]) *Decoder[T] {
	d := &Decoder[T]{
		results: make(chan mo.Result[T]),
		done:    make(chan struct{}),
	}
	go d.run(r, drive)
	return d
}

func (d *Decoder[T]) run(r io.Reader, drive driver[T]) {
	defer close(d.results)

	err := drive(r, func(item T) bool {
		return d.send(mo.Ok(item))
	})
	if err != nil {
		d.send(mo.Err[T](err))
	}
}

func (d *Decoder[T]) send(res mo.Result[T]) bool {
	select {
	case d.results <- res:
		return true
	case <-d.done:
		return false
	}
}

// Next returns the next element. A decoding error is returned once, after
// every element decoded before it; afterwards Next returns io.EOF.
func (d *Decoder[T]) Next() (T, error) {
	res, ok := <-d.results
	if !ok {
		var zero T
		return zero, io.EOF
	}
	return res.Get()
}

// All ranges over the remaining elements. Iteration stops after the first error.
func (d *Decoder[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			item, err := d.Next()
			if err == io.EOF {
				return
			}
			if !yield(item, err) || err != nil {
				return
			}
		}
	}
}

// Close stops the parsing goroutine. It does not close the underlying reader.
func (d *Decoder[T]) Close() {
	d.once.Do(func() {
		close(d.done)
	})
}
