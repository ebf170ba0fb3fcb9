package shared

// Cloner is implemented by property bags. Clone must return a copy that
// shares no map or slice with the receiver.
type Cloner[P any] interface {
	Clone() P
}

// Entity gives a domain type identity-based equality. The identifier is
// fixed at construction; properties are reachable only through Props.
// The entity keeps its own copy of props, so neither the value passed to
// NewEntity nor the value returned by Props can change it.
type Entity[P Cloner[P]] struct {
	id    string
	props P
}

func NewEntity[P Cloner[P]](id string, props P) Entity[P] {
	return Entity[P]{id: id, props: props.Clone()}
}

func (e Entity[P]) ID() string { return e.id }

func (e Entity[P]) Props() P { return e.props.Clone() }

// Equals compares identifiers only; two entities with the same id are the
// same entity whatever their current properties are.
func (e Entity[P]) Equals(other Entity[P]) bool {
	return e.id == other.id
}
