// Package search builds card search queries.
//
// A Query is assembled from field functions such as Cmc, Name or Color and
// from boolean properties (CardIs, PrintingIs), then combined with And, Or
// and Not:
//
//	q := search.Cmc(4).And(search.Name("Yargle"))
//	q.String() // (cmc:4 AND name:"Yargle")
//
// Each field function only accepts the value types that make sense for the
// field; passing a date to Color does not compile.
package search

import "net/url"

// Search is anything that can be sent to the card search endpoint.
type Search interface {
	Values() url.Values
}

// Raw is query text written directly in the search syntax.
type Raw string

func (r Raw) Values() url.Values {
	return url.Values{"q": []string{string(r)}}
}

var (
	_ Search = Query{}
	_ Search = (*SearchOptions)(nil)
	_ Search = Raw("")
)
