package jsonstream

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkReader returns the input in fixed size reads.
type chunkReader struct {
	data []byte
	size int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}
	n := min(c.size, len(c.data), len(p))
	copy(p, c.data[:n])
	c.data = c.data[n:]
	return n, nil
}

// splitReader returns the input in two reads split at the given offset.
func splitReader(s string, at int) io.Reader {
	return io.MultiReader(strings.NewReader(s[:at]), strings.NewReader(s[at:]))
}

func readAll(t *testing.T, r io.Reader) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	_, err := io.Copy(&buf, r)
	return buf.String(), err
}

func decodeSequence(t *testing.T, r io.Reader) ([]json.RawMessage, error) {
	t.Helper()
	dec := json.NewDecoder(r)
	var out []json.RawMessage
	for {
		var raw json.RawMessage
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, raw)
	}
}

func TestArrayReader_RemovesFraming(t *testing.T) {
	out, err := readAll(t, NewArrayReader(strings.NewReader(`[1,{"a":[2,3]},"x,]"]`)))
	require.NoError(t, err)
	assert.Equal(t, ` 1 {"a":[2,3]} "x,]" `, out)
}

func TestArrayReader_Elements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty array", input: `[]`, want: nil},
		{name: "whitespace around", input: " \n[ 1 , 2 ]\n", want: []string{"1", "2"}},
		{name: "objects", input: `[{"a":1},{"a":2},{"a":3}]`, want: []string{`{"a":1}`, `{"a":2}`, `{"a":3}`}},
		{name: "separators inside strings", input: `["a,b]{", 2]`, want: []string{`"a,b]{"`, "2"}},
		{name: "escaped backslash", input: `["\\", "q\"]"]`, want: []string{`"\\"`, `"q\"]"`}},
		{name: "nested arrays", input: `[[1,2],[3,[4]]]`, want: []string{"[1,2]", "[3,[4]]"}},
		{name: "consecutive arrays", input: `[1][2]`, want: []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeSequence(t, NewArrayReader(strings.NewReader(tt.input)))
			require.NoError(t, err)

			var gotStrings []string
			for _, raw := range got {
				gotStrings = append(gotStrings, string(raw))
			}
			assert.Equal(t, tt.want, gotStrings)
		})
	}
}

func TestArrayReader_ChunkedReads(t *testing.T) {
	input := `[{"a":1},{"a":2},{"a":3}]`

	got, err := decodeSequence(t, NewArrayReader(&chunkReader{data: []byte(input), size: 5}))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.JSONEq(t, `{"a":3}`, string(got[2]))
}

func TestArrayReader_EverySplitOffset(t *testing.T) {
	input := `[{"s":"x\"]","n":[1,2]}, "\\", 3]`
	want, err := readAll(t, NewArrayReader(strings.NewReader(input)))
	require.NoError(t, err)

	for at := 0; at <= len(input); at++ {
		got, err := readAll(t, NewArrayReader(splitReader(input, at)))
		require.NoError(t, err, "split at %d", at)
		assert.Equal(t, want, got, "split at %d", at)
	}

	got, err := readAll(t, NewArrayReader(iotest.OneByteReader(strings.NewReader(input))))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestArrayReader_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "object at top level", input: `{"a":1}`, want: ErrInvalidData},
		{name: "scalar at top level", input: `42`, want: ErrInvalidData},
		{name: "unmatched brace", input: `[1}`, want: ErrInvalidData},
		{name: "unterminated array", input: `[1,2`, want: io.ErrUnexpectedEOF},
		{name: "unterminated string", input: `["abc`, want: io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewArrayReader(strings.NewReader(tt.input))
			_, err := readAll(t, r)
			require.ErrorIs(t, err, tt.want)

			// errors are sticky
			_, err = r.Read(make([]byte, 8))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestArrayReader_NulEndsStream(t *testing.T) {
	out, err := readAll(t, NewArrayReader(strings.NewReader("[1]\x00garbage")))
	require.NoError(t, err)
	assert.Equal(t, " 1 ", out)

	out, err = readAll(t, NewArrayReader(strings.NewReader("\x00")))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestArrayReader_EmptyInput(t *testing.T) {
	out, err := readAll(t, NewArrayReader(strings.NewReader("")))
	require.NoError(t, err)
	assert.Empty(t, out)
}
