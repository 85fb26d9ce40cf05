package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Sentinel errors, match with errors.Is
var (
	// ErrTransport is returned when the request never produced a response
	ErrTransport = errors.New("transport error")

	// ErrProvider is returned when the API answered with an error status
	ErrProvider = errors.New("provider error")

	// ErrDecode is returned when a response body does not have the expected shape
	ErrDecode = errors.New("decode error")

	// ErrInvariant is returned when a response breaks a documented invariant,
	// such as a list saying it has more pages without a link to them
	ErrInvariant = errors.New("invariant violated")
)

// TransportError wraps a network level failure for a URL.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// ProviderError is the error object returned by the API for 4xx and 5xx
// responses.
type ProviderError struct {
	Status   int      `json:"status"`
	Code     string   `json:"code"`
	Details  string   `json:"details"`
	Type     string   `json:"type,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func (e *ProviderError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scryfall error %d", e.Status)
	if e.Code != "" {
		fmt.Fprintf(&b, " (%s)", e.Code)
	}
	if e.Details != "" {
		fmt.Fprintf(&b, ": %s", e.Details)
	}
	for _, w := range e.Warnings {
		fmt.Fprintf(&b, "\n\twarning: %s", w)
	}
	return b.String()
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Status == 404
}

// DecodeError is returned when a body could not be decoded into the target type.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// InvariantError describes a response that decoded fine but is inconsistent.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return "invariant violated: " + e.Reason
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

// newProviderError builds a ProviderError from an error response. Bodies that
// are not the API's JSON error object (proxies and gateways answer with HTML)
// are reduced to their visible text.
func newProviderError(status int, body []byte) *ProviderError {
	pe := &ProviderError{}
	if err := json.Unmarshal(body, pe); err != nil || pe.Details == "" {
		pe = &ProviderError{Details: htmlText(body)}
	}
	pe.Status = status
	return pe
}

func htmlText(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return strings.TrimSpace(string(body))
	}

	sel := doc.Find("body")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("script, style").Remove()

	if title := strings.TrimSpace(doc.Find("title").Text()); title != "" && strings.TrimSpace(sel.Text()) == "" {
		return title
	}
	return strings.Join(strings.Fields(sel.Text()), " ")
}
