// Package mapper converts each resource between its persisted record, its
// domain entity and its client view. The three functions of a mapper are
// kept together so a field added to a resource is added to all of them.
//
// Mappers are pure: they never validate (records are assumed to have been
// written by this system) and every call returns freshly allocated maps and
// slices, so callers may mutate results without affecting the input.
package mapper

// Mapper is implemented once per resource type.
type Mapper[R, E, V any] interface {
	MapDataToEntity(rec R) E
	MapEntityToData(ent E) R
	MapDataToView(rec R) V
}
