package state

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ErrInvalidCursor is returned when a stored cursor cannot be decoded.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor records how far a search sync got, so a restarted sync can continue
// from the first page that was not queued yet.
type Cursor struct {
	// NextPage is the URI of the first page not queued yet.
	NextPage string `cbor:"1,keyasint"`

	// PageNumber is the number NextPage will get when queued.
	PageNumber int `cbor:"2,keyasint"`

	// Cards queued so far.
	Cards int `cbor:"3,keyasint,omitempty"`

	// TotalCards as reported by the first page, 0 if unknown.
	TotalCards int `cbor:"4,keyasint,omitempty"`
}

// EncodeCursor encodes c as base64 CBOR.
func EncodeCursor(c Cursor) (string, error) {
	data, err := cbor.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// DecodeCursor reverses EncodeCursor.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, fmt.Errorf("%w: empty", ErrInvalidCursor)
	}

	data, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	var c Cursor
	if err := cbor.Unmarshal(data, &c); err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	if c.NextPage == "" || c.PageNumber < 1 {
		return Cursor{}, fmt.Errorf("%w: missing next page", ErrInvalidCursor)
	}
	return c, nil
}
