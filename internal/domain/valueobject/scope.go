package valueobject

import (
	"strings"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
)

type scopeProps struct {
	values []string
}

// StringSetScope is a non-empty ordered set of trimmed strings.
type StringSetScope struct {
	vo shared.ValueObject[scopeProps]
}

// InsertStringSetScope validates raw input and normalizes it: elements are
// trimmed, blanks dropped, then duplicates removed keeping the first
// occurrence. value may be a []string or a decoded JSON array ([]any).
func InsertStringSetScope(value any) (StringSetScope, error) {
	raw, ok := toStrings(value)
	if !ok {
		return StringSetScope{}, shared.NewInvalidFormat("scope must be an array of strings", value)
	}
	values := normalize(raw)
	if len(values) == 0 {
		return StringSetScope{}, shared.NewRequiredValueMissing("scope must not be empty", value)
	}
	return StringSetScope{vo: shared.NewValueObject(scopeProps{values: values})}, nil
}

// Value returns a copy; the stored set cannot be changed after construction.
func (s StringSetScope) Value() []string {
	values := s.vo.Props().values
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func (s StringSetScope) Contains(v string) bool {
	for _, x := range s.vo.Props().values {
		if x == v {
			return true
		}
	}
	return false
}

func (s StringSetScope) Equals(other StringSetScope) bool { return s.vo.Equals(other.vo) }

func toStrings(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func normalize(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
