package abicodec

// Field is one decoded tuple component.
type Field struct {
	Name  string
	Value any
}

// Tuple is a decoded tuple value. Fields keep the component order of the
// tuple type; Name is empty for unnamed components.
type Tuple struct {
	Fields []Field
}

// NewTuple builds a tuple value from positional values, for use as an
// encoder input.
func NewTuple(values ...any) Tuple {
	fields := make([]Field, len(values))
	for i, v := range values {
		fields[i] = Field{Value: v}
	}
	return Tuple{Fields: fields}
}

func newTuple(t TupleType, values []any) Tuple {
	fields := make([]Field, len(values))
	for i, v := range values {
		fields[i] = Field{Name: t.Components[i].Name, Value: v}
	}
	return Tuple{Fields: fields}
}

// Len returns the number of components.
func (t Tuple) Len() int {
	return len(t.Fields)
}

// Values returns the component values in order.
func (t Tuple) Values() []any {
	values := make([]any, len(t.Fields))
	for i, f := range t.Fields {
		values[i] = f.Value
	}
	return values
}

// Get returns the value of the first component with the given name.
func (t Tuple) Get(name string) (any, bool) {
	for _, f := range t.Fields {
		if f.Name == name && name != "" {
			return f.Value, true
		}
	}
	return nil, false
}

// At returns the i-th component value, or nil if out of range.
func (t Tuple) At(i int) any {
	if i < 0 || i >= len(t.Fields) {
		return nil
	}
	return t.Fields[i].Value
}
