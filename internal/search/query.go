package search

import (
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// Kind is the node type of a Query.
type Kind int

const (
	KindEmpty Kind = iota
	KindAnd
	KindOr
	KindNot
	KindParam
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	case KindNot:
		return "not"
	case KindParam:
		return "param"
	case KindCustom:
		return "custom"
	default:
		return "empty"
	}
}

// Query is a boolean search expression. The zero value is the empty query,
// which is the identity of both And and Or. Queries are values: combining
// them never modifies the operands.
type Query struct {
	kind     Kind
	children []Query // operands of And/Or, the single operand of Not
	param    Param
	raw      string
}

// Empty returns the empty query.
func Empty() Query {
	return Query{}
}

// Custom wraps a raw query expression that has no typed helper.
func Custom(expr string) Query {
	return Query{kind: KindCustom, raw: expr}
}

// Exact matches a card whose name is exactly name.
func Exact(name string) Query {
	return paramQuery(valueParam(FieldExact, name))
}

func paramQuery(p Param) Query {
	return Query{kind: KindParam, param: p}
}

func (q Query) Kind() Kind {
	return q.kind
}

func (q Query) IsEmpty() bool {
	return q.kind == KindEmpty
}

// Children returns a copy of the operands of an And, Or or Not node.
func (q Query) Children() []Query {
	return append([]Query(nil), q.children...)
}

// Param returns the leaf term of a KindParam node.
func (q Query) Param() (Param, bool) {
	return q.param, q.kind == KindParam
}

// And combines q and other so that both must match.
func (q Query) And(other Query) Query {
	return q.combine(KindAnd, other)
}

// Or combines q and other so that either may match.
func (q Query) Or(other Query) Query {
	return q.combine(KindOr, other)
}

// combine flattens groups of the same kind and drops empty operands.
func (q Query) combine(kind Kind, other Query) Query {
	if q.kind == KindEmpty {
		return other
	}
	if other.kind == KindEmpty {
		return q
	}

	operands := make([]Query, 0, len(q.children)+len(other.children)+2)
	for _, side := range []Query{q, other} {
		if side.kind == kind {
			operands = append(operands, side.children...)
		} else {
			operands = append(operands, side)
		}
	}

	return Query{kind: kind, children: operands}
}

// Not negates q. Negating a negation unwraps it, and the empty query stays empty.
func Not(q Query) Query {
	switch q.kind {
	case KindNot:
		return q.children[0]
	case KindEmpty:
		return q
	default:
		return Query{kind: KindNot, children: []Query{q}}
	}
}

// All combines every query with And.
func All(queries ...Query) Query {
	return lo.Reduce(queries, func(acc Query, q Query, _ int) Query {
		return acc.And(q)
	}, Empty())
}

// Any combines every query with Or.
func Any(queries ...Query) Query {
	return lo.Reduce(queries, func(acc Query, q Query, _ int) Query {
		return acc.Or(q)
	}, Empty())
}

// String renders the query in the search syntax.
func (q Query) String() string {
	switch q.kind {
	case KindAnd:
		return q.group(" AND ")
	case KindOr:
		return q.group(" OR ")
	case KindNot:
		return "-" + q.children[0].String()
	case KindParam:
		return q.param.String()
	case KindCustom:
		return "(" + q.raw + ")"
	default:
		return ""
	}
}

func (q Query) group(sep string) string {
	parts := lo.Map(q.children, func(child Query, _ int) string {
		return child.String()
	})
	return "(" + strings.Join(parts, sep) + ")"
}

// Values encodes a plain search. The empty query is sent as is and rejected by the server.
func (q Query) Values() url.Values {
	return url.Values{"q": []string{q.String()}}
}
