package jsonstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// emitFunc hands one decoded element to the consumer. It returns false when
// the consumer is gone and decoding should stop.
type emitFunc[T any] func(T) bool

type driver[T any] func(r io.Reader, emit emitFunc[T]) error

// decodeArray walks the tokens of a top-level array and decodes each element
// as soon as it is complete. Several arrays in a row are read as one; anything
// else after a closing bracket is invalid.
func decodeArray[T any](r io.Reader, emit emitFunc[T]) error {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read array start: %w", eofIsUnexpected(err))
	}

	for index := 0; ; {
		if delim, ok := tok.(json.Delim); !ok || delim != '[' {
			return fmt.Errorf("%w: expected '[', got %v", ErrInvalidData, tok)
		}

		for ; dec.More(); index++ {
			var item T
			if err := dec.Decode(&item); err != nil {
				return fmt.Errorf("failed to decode element %d: %w", index, eofIsUnexpected(err))
			}
			if !emit(item) {
				return nil
			}
		}

		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read array end: %w", eofIsUnexpected(err))
		}
		if delim, ok := tok.(json.Delim); !ok || delim != ']' {
			return fmt.Errorf("%w: expected ']', got %v", ErrInvalidData, tok)
		}

		tok, err = dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: after array end at offset %d: %w", ErrInvalidData, dec.InputOffset(), err)
		}
	}
}

// decodeElements reads the array through an ArrayReader and decodes the
// resulting whitespace separated values one after another.
func decodeElements[T any](r io.Reader, emit emitFunc[T]) error {
	dec := json.NewDecoder(NewArrayReader(r))

	for index := 0; ; index++ {
		var item T
		err := dec.Decode(&item)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to decode element %d: %w", index, err)
		}
		if !emit(item) {
			return nil
		}
	}
}

func eofIsUnexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
