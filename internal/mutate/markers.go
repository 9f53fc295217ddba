package mutate

// Marker is a set of in-flight operation kinds attached to one task.
type Marker uint8

const (
	MarkAdded Marker = 1 << iota
	MarkToggling
	MarkEditing
	MarkDeleting
	MarkPendingDelete
)

// Has reports whether any of the kinds in k are set.
func (m Marker) Has(k Marker) bool { return m&k != 0 }

// Markers maps task ids to their transient markers. Delete and highlight
// markers carry the sequence of the operation that set them so a stale
// completion cannot clear a newer operation's marker.
type Markers struct {
	byID  map[int64]Marker
	owner map[ownerKey]uint64
}

type ownerKey struct {
	id   int64
	kind Marker
}

func newMarkers() *Markers {
	return &Markers{
		byID:  map[int64]Marker{},
		owner: map[ownerKey]uint64{},
	}
}

func (m *Markers) Of(id int64) Marker { return m.byID[id] }

func (m *Markers) Has(id int64, k Marker) bool { return m.byID[id].Has(k) }

// Any returns a task id carrying k, if one exists.
func (m *Markers) Any(k Marker) (int64, bool) {
	for id, mk := range m.byID {
		if mk.Has(k) {
			return id, true
		}
	}
	return 0, false
}

func (m *Markers) set(id int64, k Marker) {
	m.byID[id] |= k
}

// own sets k on id and records seq as the owning operation.
func (m *Markers) own(id int64, k Marker, seq uint64) {
	m.set(id, k)
	for _, single := range []Marker{MarkAdded, MarkToggling, MarkEditing, MarkDeleting, MarkPendingDelete} {
		if k.Has(single) {
			m.owner[ownerKey{id, single}] = seq
		}
	}
}

func (m *Markers) clear(id int64, k Marker) {
	mk := m.byID[id] &^ k
	if mk == 0 {
		delete(m.byID, id)
	} else {
		m.byID[id] = mk
	}
	for _, single := range []Marker{MarkAdded, MarkToggling, MarkEditing, MarkDeleting, MarkPendingDelete} {
		if k.Has(single) {
			delete(m.owner, ownerKey{id, single})
		}
	}
}

// release clears k on id only when seq still owns it.
func (m *Markers) release(id int64, k Marker, seq uint64) bool {
	if cur, ok := m.owner[ownerKey{id, k}]; !ok || cur != seq {
		return false
	}
	m.clear(id, k)
	return true
}

// clearAll drops k from every task.
func (m *Markers) clearAll(k Marker) {
	for id := range m.byID {
		m.clear(id, k)
	}
}
