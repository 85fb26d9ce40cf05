package state

import (
	"encoding/base64"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_EncodeDecode(t *testing.T) {
	c := Cursor{
		NextPage:   "https://api.scryfall.com/cards/search?q=t%3Afrog&page=3",
		PageNumber: 3,
		Cards:      350,
		TotalCards: 412,
	}

	encoded, err := EncodeCursor(c)
	require.NoError(t, err)
	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, "/")

	decoded, err := DecodeCursor(encoded)
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestDecodeCursor_Invalid(t *testing.T) {
	noPage, err := cbor.Marshal(Cursor{PageNumber: 2})
	require.NoError(t, err)

	tests := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "invalid base64", cursor: "not-valid-base64!@#$"},
		{name: "valid base64 but invalid CBOR", cursor: base64.URLEncoding.EncodeToString([]byte("hello world"))},
		{name: "missing next page", cursor: base64.URLEncoding.EncodeToString(noPage)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursor(tt.cursor)
			assert.ErrorIs(t, err, ErrInvalidCursor)
		})
	}
}
