package shared

import "reflect"

// ValueObject gives a domain type structural equality. It stores props and
// compares them, nothing else; invariants belong to the concrete factories.
type ValueObject[P any] struct {
	props P
}

func NewValueObject[P any](props P) ValueObject[P] {
	return ValueObject[P]{props: props}
}

func (v ValueObject[P]) Props() P { return v.props }

// Equals is a deep comparison: maps match regardless of insertion order,
// slices must match element by element in order. A nil map or slice is not
// equal to an empty one, so factories should store one form consistently.
func (v ValueObject[P]) Equals(other ValueObject[P]) bool {
	return reflect.DeepEqual(v.props, other.props)
}
