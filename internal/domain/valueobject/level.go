package valueobject

import (
	"math"
	"strconv"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
)

type levelProps struct {
	value float64
}

// NumericLevel is a non-negative number such as a subscription tier.
type NumericLevel struct {
	vo shared.ValueObject[levelProps]
}

// CreateOrUpdateNumericLevel is the untrusted entry point used for client
// input; negative and non-finite values are rejected.
func CreateOrUpdateNumericLevel(value float64) (NumericLevel, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		// NaN and Inf have no JSON encoding, report them as text
		return NumericLevel{}, shared.NewInvalidValue("level must be a finite number", strconv.FormatFloat(value, 'g', -1, 64))
	}
	if value < 0 {
		return NumericLevel{}, shared.NewInvalidValue("level must be greater than or equal to 0", value)
	}
	return NumericLevel{vo: shared.NewValueObject(levelProps{value: value})}, nil
}

// InsertNumericLevel wraps a value read back from storage. No range check
// is made: the value was validated when it was written.
func InsertNumericLevel(value float64) NumericLevel {
	return NumericLevel{vo: shared.NewValueObject(levelProps{value: value})}
}

func (l NumericLevel) Value() float64 { return l.vo.Props().value }

func (l NumericLevel) Equals(other NumericLevel) bool { return l.vo.Equals(other.vo) }
