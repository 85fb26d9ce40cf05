package search

// Param is a single search term: a boolean property such as is:foil, or a
// field, an optional comparison operator and an already rendered value.
type Param struct {
	property Property
	field    Field
	op       CompareOp
	value    string
}

func propertyParam(p Property) Param {
	return Param{property: p}
}

func valueParam(field Field, v any) Param {
	op, text := render(v)
	return Param{field: field, op: op, value: text}
}

// Property returns the boolean property of the term, or nil for field terms.
func (p Param) Property() Property {
	return p.property
}

func (p Param) Field() Field {
	return p.field
}

func (p Param) Op() CompareOp {
	return p.op
}

func (p Param) Value() string {
	return p.value
}

func (p Param) String() string {
	if p.property != nil {
		return p.property.String()
	}
	if p.field == FieldExact && p.op == opNone {
		return "!" + p.value
	}
	return p.field.String() + p.op.String() + p.value
}
