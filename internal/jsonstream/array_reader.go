package jsonstream

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidData is returned when the input is not a top-level JSON array.
var ErrInvalidData = errors.New("invalid data")

// ArrayReader turns a stream holding one JSON array into a stream of the
// array's elements separated by whitespace. The outer brackets and the
// top-level commas are replaced by spaces; brackets, braces and commas
// inside strings or nested values pass through untouched.
//
// Input that ends before the array is closed fails with io.ErrUnexpectedEOF.
// A NUL byte before the opening bracket ends the stream cleanly. Several
// arrays in a row are read as one long sequence.
type ArrayReader struct {
	r        io.Reader
	depth    int // -1 outside the outer array
	inString bool
	escaped  bool
	offset   int64
	err      error
}

func NewArrayReader(r io.Reader) *ArrayReader {
	return &ArrayReader{r: r, depth: -1}
}

func (a *ArrayReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if a.err != nil {
		return 0, a.err
	}

	for {
		n, err := a.r.Read(p)

		n, stop, scanErr := a.scan(p[:n])
		if scanErr != nil {
			a.err = scanErr
			return n, scanErr
		}
		if stop {
			a.err = io.EOF
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}

		if err == io.EOF {
			a.err = io.EOF
			if a.depth >= 0 {
				a.err = io.ErrUnexpectedEOF
			}
			return n, a.err
		}
		if err != nil {
			a.err = err
			return n, err
		}
		if n > 0 {
			return n, nil
		}
	}
}

// scan rewrites buf in place. It returns how many bytes are valid output,
// whether a NUL ended the stream, and any framing error.
func (a *ArrayReader) scan(buf []byte) (int, bool, error) {
	defer func() { a.offset += int64(len(buf)) }()

	for i, b := range buf {
		if a.depth < 0 {
			switch {
			case b == '[':
				a.depth = 0
				buf[i] = ' '
			case isSpace(b):
				buf[i] = ' '
			case b == 0:
				return i, true, nil
			default:
				return i, false, fmt.Errorf("%w: unexpected %q at offset %d before array start", ErrInvalidData, b, a.offset+int64(i))
			}
			continue
		}

		if a.inString {
			switch {
			case a.escaped:
				a.escaped = false
			case b == '\\':
				a.escaped = true
			case b == '"':
				a.inString = false
			}
			continue
		}

		switch b {
		case '"':
			a.inString = true
		case '[', '{':
			a.depth++
		case ']', '}':
			if a.depth > 0 {
				a.depth--
				continue
			}
			if b == '}' {
				return i, false, fmt.Errorf("%w: unmatched '}' at offset %d", ErrInvalidData, a.offset+int64(i))
			}
			a.depth = -1
			buf[i] = ' '
		case ',':
			if a.depth == 0 {
				buf[i] = ' '
			}
		}
	}

	return len(buf), false, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}
