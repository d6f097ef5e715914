package loc

// MaxJunctions bounds the interior depth of a Location. Inversion and
// composition fail with ErrOverflow rather than exceed it.
const MaxJunctions = 8

// Junctions is a fixed-capacity, ordered (root-to-leaf) junction sequence.
// Insertion and removal happen only at the front or the back.
//
// The zero value is the empty sequence. Junctions is a value type: assignment
// copies, so a working copy never aliases the original.
type Junctions struct {
	n int
	j [MaxJunctions]Junction
}

// Path builds a junction sequence from the given steps, root first.
func Path(js ...Junction) (Junctions, error) {
	var out Junctions
	for _, j := range js {
		if err := out.PushBack(j); err != nil {
			return Junctions{}, err
		}
	}
	return out, nil
}

// Len returns the number of junctions in the sequence.
func (js Junctions) Len() int { return js.n }

// At returns the i-th junction from the root. It panics if i is out of range,
// as with a slice index.
func (js Junctions) At(i int) Junction {
	if i < 0 || i >= js.n {
		panic("loc: junction index out of range")
	}
	return js.j[i]
}

// TakeFirst removes and returns the first junction. ok is false when the
// sequence is empty, in which case the sequence is unchanged.
func (js *Junctions) TakeFirst() (j Junction, ok bool) {
	if js.n == 0 {
		return Junction{}, false
	}
	j = js.j[0]
	copy(js.j[:], js.j[1:js.n])
	js.n--
	js.j[js.n] = Junction{}
	return j, true
}

// TakeLast removes and returns the last junction. ok is false when the
// sequence is empty, in which case the sequence is unchanged.
func (js *Junctions) TakeLast() (j Junction, ok bool) {
	if js.n == 0 {
		return Junction{}, false
	}
	js.n--
	j = js.j[js.n]
	js.j[js.n] = Junction{}
	return j, true
}

// PushBack appends a junction. It returns ErrOverflow when the sequence
// already holds MaxJunctions entries.
func (js *Junctions) PushBack(j Junction) error {
	if js.n >= MaxJunctions {
		return ErrOverflow
	}
	js.j[js.n] = j
	js.n++
	return nil
}

// PushFront prepends a junction. It returns ErrOverflow when the sequence
// already holds MaxJunctions entries.
func (js *Junctions) PushFront(j Junction) error {
	if js.n >= MaxJunctions {
		return ErrOverflow
	}
	copy(js.j[1:js.n+1], js.j[:js.n])
	js.j[0] = j
	js.n++
	return nil
}

// Slice returns the junctions as a fresh slice, root first.
func (js Junctions) Slice() []Junction {
	if js.n == 0 {
		return nil
	}
	out := make([]Junction, js.n)
	copy(out, js.j[:js.n])
	return out
}

// Equal reports structural equality of two sequences.
func (js Junctions) Equal(o Junctions) bool {
	if js.n != o.n {
		return false
	}
	for i := 0; i < js.n; i++ {
		if !js.j[i].Equal(o.j[i]) {
			return false
		}
	}
	return true
}

// Location is a relative path in the system tree: ascend Parents hops toward
// a shared ancestor, then descend through Interior.
//
// Location is a value type; callers mutate only their own copies.
type Location struct {
	parents  uint8
	interior Junctions
}

// New builds a location from an ascend-count and an interior path.
func New(parents uint8, interior Junctions) Location {
	return Location{parents: parents, interior: interior}
}

// Here is the location of the current system itself.
func Here() Location { return Location{} }

// Ancestor is the location n hops up from the current system.
func Ancestor(n uint8) Location { return Location{parents: n} }

// Parents returns the ascend-count.
func (l Location) Parents() uint8 { return l.parents }

// Interior returns a copy of the descend-sequence.
func (l Location) Interior() Junctions { return l.interior }

// Len returns the number of junctions in the descend-sequence.
func (l Location) Len() int { return l.interior.Len() }

// IsAscendOnly reports whether the location is exactly n hops up with an
// empty descend-sequence.
func (l Location) IsAscendOnly(n uint8) bool {
	return l.parents == n && l.interior.Len() == 0
}

// TakeFirst removes and returns the first interior junction, leaving the
// ascend-count untouched. ok is false when the interior is empty.
func (l *Location) TakeFirst() (Junction, bool) {
	return l.interior.TakeFirst()
}

// PushBack appends a junction to the interior. It returns ErrOverflow when
// the interior already holds MaxJunctions entries.
func (l *Location) PushBack(j Junction) error {
	return l.interior.PushBack(j)
}

// Equal reports structural equality of two locations.
func (l Location) Equal(o Location) bool {
	return l.parents == o.parents && l.interior.Equal(o.interior)
}
