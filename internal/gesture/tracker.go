package gesture

import (
	"slices"

	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// Tracker keeps the set of active touch contacts and builds PointerEvents
// that carry the full contact list.
type Tracker struct {
	contacts []Contact
}

// Len returns the number of active contacts.
func (t *Tracker) Len() int {
	return len(t.contacts)
}

// Down registers a new contact. A repeated id updates the existing contact.
func (t *Tracker) Down(id int64, x, y float32) PointerEvent {
	pos := math.Vec2{X: x, Y: y}
	if i := t.find(id); i >= 0 {
		t.contacts[i].Pos = pos
	} else {
		t.contacts = append(t.contacts, Contact{ID: id, Pos: pos})
	}
	return t.event(PointerDown, pos)
}

// Move updates a contact. Moves for unknown ids are reported with the
// current contact list unchanged.
func (t *Tracker) Move(id int64, x, y float32) PointerEvent {
	pos := math.Vec2{X: x, Y: y}
	if i := t.find(id); i >= 0 {
		t.contacts[i].Pos = pos
	}
	return t.event(PointerMove, pos)
}

// Up removes a contact.
func (t *Tracker) Up(id int64, x, y float32) PointerEvent {
	if i := t.find(id); i >= 0 {
		t.contacts = slices.Delete(t.contacts, i, i+1)
	}
	return t.event(PointerUp, math.Vec2{X: x, Y: y})
}

// Reset drops every contact, for example when the window loses focus.
func (t *Tracker) Reset() PointerEvent {
	t.contacts = t.contacts[:0]
	return t.event(PointerUp, math.Vec2{})
}

func (t *Tracker) find(id int64) int {
	return slices.IndexFunc(t.contacts, func(c Contact) bool { return c.ID == id })
}

func (t *Tracker) event(kind EventKind, pos math.Vec2) PointerEvent {
	return PointerEvent{
		Kind:     kind,
		Source:   SourceTouch,
		Pos:      pos,
		Contacts: slices.Clone(t.contacts),
	}
}
