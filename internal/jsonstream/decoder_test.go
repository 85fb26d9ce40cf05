package jsonstream

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	A int `json:"a"`
}

type newDecoderFunc func(io.Reader) *Decoder[item]

var decoders = map[string]newDecoderFunc{
	"tokens":   NewDecoder[item],
	"sequence": NewSequenceDecoder[item],
}

func collect(d *Decoder[item]) ([]item, error) {
	var out []item
	for {
		it, err := d.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, it)
	}
}

func TestDecoder_Elements(t *testing.T) {
	input := `[{"a":1},{"a":2},{"a":3}]`

	for name, newDecoder := range decoders {
		t.Run(name, func(t *testing.T) {
			d := newDecoder(&chunkReader{data: []byte(input), size: 5})
			defer d.Close()

			got, err := collect(d)
			require.NoError(t, err)
			assert.Equal(t, []item{{A: 1}, {A: 2}, {A: 3}}, got)

			_, err = d.Next()
			assert.Equal(t, io.EOF, err)
		})
	}
}

func TestDecoder_EmptyArray(t *testing.T) {
	for name, newDecoder := range decoders {
		t.Run(name, func(t *testing.T) {
			got, err := collect(newDecoder(strings.NewReader(" [ ] ")))
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestDecoder_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		items []item
		want  error
	}{
		{name: "unterminated", input: `[{"a":1},{"a":2}`, items: []item{{A: 1}, {A: 2}}, want: io.ErrUnexpectedEOF},
		{name: "not an array", input: `{"a":1}`, want: ErrInvalidData},
		{name: "unmatched closing bracket", input: `[{"a":1}]]`, items: []item{{A: 1}}, want: ErrInvalidData},
		{name: "unmatched closing brace", input: `[{"a":1}]}`, items: []item{{A: 1}}, want: ErrInvalidData},
		{name: "trailing garbage", input: `[{"a":1},{"a":2}] x`, items: []item{{A: 1}, {A: 2}}, want: ErrInvalidData},
		{name: "trailing value", input: `[{"a":1}] 2`, items: []item{{A: 1}}, want: ErrInvalidData},
	}

	for _, tt := range tests {
		for name, newDecoder := range decoders {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				d := newDecoder(strings.NewReader(tt.input))
				got, err := collect(d)
				require.ErrorIs(t, err, tt.want)
				assert.Equal(t, tt.items, got)

				_, err = d.Next()
				assert.Equal(t, io.EOF, err)
			})
		}
	}
}

func TestDecoder_ConsecutiveArrays(t *testing.T) {
	for name, newDecoder := range decoders {
		t.Run(name, func(t *testing.T) {
			got, err := collect(newDecoder(strings.NewReader(`[{"a":1}] [] [{"a":2},{"a":3}]`)))
			require.NoError(t, err)
			assert.Equal(t, []item{{A: 1}, {A: 2}, {A: 3}}, got)
		})
	}
}

func TestDecoder_EverySplitOffset(t *testing.T) {
	input := `[{"a":1}, {"a":22},{"a":-3} ,{"a":4}]`
	want := []item{{A: 1}, {A: 22}, {A: -3}, {A: 4}}

	for name, newDecoder := range decoders {
		t.Run(name, func(t *testing.T) {
			for at := 0; at <= len(input); at++ {
				got, err := collect(newDecoder(splitReader(input, at)))
				require.NoError(t, err, "split at %d", at)
				assert.Equal(t, want, got, "split at %d", at)
			}
		})
	}
}

func TestDecoder_ElementsBeforeError(t *testing.T) {
	d := NewDecoder[item](strings.NewReader(`[{"a":1},{"a":"x"}]`))

	got, err := collect(d)
	require.Error(t, err)
	assert.Equal(t, []item{{A: 1}}, got)
}

func TestDecoder_EmptyInputIsAnError(t *testing.T) {
	_, err := collect(NewDecoder[item](strings.NewReader("")))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDecoder_CloseStopsProducer(t *testing.T) {
	d := NewDecoder[item](strings.NewReader(`[{"a":1},{"a":2},{"a":3}]`))

	first, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, first.A)

	d.Close()
	d.Close()

	// at most the element already handed off remains
	require.Eventually(t, func() bool {
		_, err := d.Next()
		return err == io.EOF
	}, time.Second, time.Millisecond)
}

func TestDecoder_All(t *testing.T) {
	d := NewDecoder[item](strings.NewReader(`[{"a":1},{"a":2},{"a":3}]`))
	defer d.Close()

	var sum int
	for it, err := range d.All() {
		require.NoError(t, err)
		sum += it.A
		if it.A == 2 {
			break
		}
	}
	assert.Equal(t, 3, sum)
}

func drain(ch <-chan mo.Result[item]) ([]item, error) {
	var out []item
	for res := range ch {
		it, err := res.Get()
		if err != nil {
			return out, err
		}
		out = append(out, it)
	}
	return out, nil
}

func TestStream(t *testing.T) {
	ch := Stream[item](context.Background(), iotestSlow(`[{"a":1},{"a":2},{"a":3}]`))

	got, err := drain(ch)
	require.NoError(t, err)
	assert.Equal(t, []item{{A: 1}, {A: 2}, {A: 3}}, got)
}

func TestStream_ProducerRunsAhead(t *testing.T) {
	var b strings.Builder
	b.WriteString("[")
	for i := range 100 {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"a":1}`)
	}
	b.WriteString("]")

	r := &trackingReader{r: strings.NewReader(b.String()), total: int64(b.Len())}
	ch := Stream[item](context.Background(), r)

	// nothing is consumed yet, the whole input still gets parsed
	require.Eventually(t, r.done, time.Second, time.Millisecond)

	got, err := drain(ch)
	require.NoError(t, err)
	assert.Len(t, got, 100)
}

func TestStream_Error(t *testing.T) {
	got, err := drain(Stream[item](context.Background(), strings.NewReader(`[{"a":1},`)))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, []item{{A: 1}}, got)
}

func TestStream_UnmatchedClosingBracket(t *testing.T) {
	got, err := drain(Stream[item](context.Background(), strings.NewReader(`[{"a":1},{"a":2}]]`)))
	require.ErrorIs(t, err, ErrInvalidData)
	assert.Equal(t, []item{{A: 1}, {A: 2}}, got)
}

func TestStream_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pr, pw := io.Pipe()
	defer pw.Close()

	ch := Stream[item](ctx, pr)
	_, err := pw.Write([]byte(`[{"a":1},`))
	require.NoError(t, err)

	res := <-ch
	assert.Equal(t, 1, res.MustGet().A)

	cancel()
	require.Eventually(t, func() bool {
		_, ok := <-ch
		return !ok
	}, time.Second, time.Millisecond)
}

// trackingReader counts the bytes handed to the parser.
type trackingReader struct {
	r     io.Reader
	total int64
	read  atomic.Int64
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	t.read.Add(int64(n))
	return n, err
}

func (t *trackingReader) done() bool {
	return t.read.Load() == t.total
}

func iotestSlow(s string) io.Reader {
	return &chunkReader{data: []byte(s), size: 3}
}
