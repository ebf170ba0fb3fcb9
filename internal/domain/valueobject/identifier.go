package valueobject

import (
	"strings"

	"github.com/google/uuid"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
)

type identifierProps struct {
	value string
}

// Identifier is a version-4 UUID in its canonical 36 character form.
type Identifier struct {
	vo shared.ValueObject[identifierProps]
}

// CreateIdentifier generates a fresh random identifier for a new resource.
func CreateIdentifier() Identifier {
	return Identifier{vo: shared.NewValueObject(identifierProps{value: uuid.NewString()})}
}

// InsertIdentifier wraps an externally supplied identifier after checking
// it is a canonical version-4 UUID. Hex digits are stored lower-cased so
// both spellings of the same UUID are equal.
func InsertIdentifier(value string) (Identifier, error) {
	if !isUUIDv4(value) {
		return Identifier{}, shared.NewInvalidFormat("identifier must be a valid UUID v4", value)
	}
	return Identifier{vo: shared.NewValueObject(identifierProps{value: strings.ToLower(value)})}, nil
}

func (i Identifier) Value() string { return i.vo.Props().value }

func (i Identifier) String() string { return i.Value() }

func (i Identifier) Equals(other Identifier) bool { return i.vo.Equals(other.vo) }

func isUUIDv4(s string) bool {
	// uuid.Parse also accepts urn, braced and unhyphenated forms
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}
