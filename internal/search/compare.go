package search

// CompareOp is the operator between a field and its value.
type CompareOp int

const (
	opNone CompareOp = iota // field default, rendered as ':'
	OpLte
	OpLt
	OpGte
	OpGt
	OpEq
	OpNeq
)

// String returns the operator as it appears in query text.
func (o CompareOp) String() string {
	switch o {
	case OpLte:
		return "<="
	case OpLt:
		return "<"
	case OpGte:
		return ">="
	case OpGt:
		return ">"
	case OpEq:
		return "="
	case OpNeq:
		return "!="
	default:
		return ":"
	}
}

// Compare wraps a value with a comparison operator. A Compare[T] is accepted
// by every search field that accepts comparisons of T.
type Compare[T any] struct {
	op    CompareOp
	value T
}

func (c Compare[T]) Op() CompareOp {
	return c.op
}

func (c Compare[T]) Value() T {
	return c.value
}

func (c Compare[T]) compareOp() CompareOp {
	return c.op
}

func (c Compare[T]) operand() any {
	return c.value
}

type comparison interface {
	compareOp() CompareOp
	operand() any
}

func Lt[T any](v T) Compare[T] {
	return Compare[T]{op: OpLt, value: v}
}

func Lte[T any](v T) Compare[T] {
	return Compare[T]{op: OpLte, value: v}
}

func Gt[T any](v T) Compare[T] {
	return Compare[T]{op: OpGt, value: v}
}

func Gte[T any](v T) Compare[T] {
	return Compare[T]{op: OpGte, value: v}
}

func Eq[T any](v T) Compare[T] {
	return Compare[T]{op: OpEq, value: v}
}

func Neq[T any](v T) Compare[T] {
	return Compare[T]{op: OpNeq, value: v}
}
