// Package scene holds the editable vectors and the linear transform that
// the visualizer draws.
package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Jamieson-H7/visualizations/pkg/math"
)

var (
	// ErrIndexOutOfRange is returned when a vector or row index does not exist.
	ErrIndexOutOfRange = errors.New("scene: index out of range")
	// ErrAxisOutOfRange is returned for component axes other than 0, 1 or 2.
	ErrAxisOutOfRange = errors.New("scene: axis out of range")
)

// Vector is one user-editable vector.
type Vector struct {
	Value           math.Vec3
	Visible         bool
	ShowTransformed bool
}

// State is the list of vectors plus the transform rows. There is always at
// least one vector and one row. Vectors are identified by position, so
// removing one shifts the indices of those after it.
type State struct {
	vectors []Vector
	rows    []math.Vec3

	// onChange is called after every successful mutation.
	onChange func()
}

// DefaultVector is the vector a fresh scene starts with.
var DefaultVector = math.Vec3{X: 0.6, Y: 0.6, Z: 0.6}

// DefaultRows returns the starting transform, half the identity.
func DefaultRows() []math.Vec3 {
	return []math.Vec3{
		{X: 0.5},
		{Y: 0.5},
		{Z: 0.5},
	}
}

// New creates a scene from the given vectors and rows. Empty inputs fall
// back to DefaultVector and DefaultRows.
func New(vectors []Vector, rows []math.Vec3) *State {
	s := &State{}
	if len(vectors) == 0 {
		vectors = []Vector{{Value: DefaultVector, Visible: true, ShowTransformed: true}}
	}
	if len(rows) == 0 {
		rows = DefaultRows()
	}
	s.vectors = append(s.vectors, vectors...)
	s.rows = append(s.rows, rows...)
	return s
}

// OnChange installs the callback invoked after every mutation. A nil
// callback disables notification.
func (s *State) OnChange(fn func()) {
	s.onChange = fn
}

func (s *State) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Vectors returns the vectors in display order. The slice must not be modified.
func (s *State) Vectors() []Vector {
	return s.vectors
}

// Len returns the number of vectors.
func (s *State) Len() int {
	return len(s.vectors)
}

// Vector returns the vector at index i.
func (s *State) Vector(i int) (Vector, bool) {
	if i < 0 || i >= len(s.vectors) {
		return Vector{}, false
	}
	return s.vectors[i], true
}

// AddVector appends a visible vector and returns its index.
func (s *State) AddVector(v math.Vec3) int {
	s.vectors = append(s.vectors, Vector{Value: v, Visible: true, ShowTransformed: true})
	s.changed()
	return len(s.vectors) - 1
}

// RemoveVector deletes the vector at index i. It refuses to remove the last
// remaining vector and reports whether anything was removed.
func (s *State) RemoveVector(i int) bool {
	if len(s.vectors) <= 1 || i < 0 || i >= len(s.vectors) {
		return false
	}
	s.vectors = append(s.vectors[:i], s.vectors[i+1:]...)
	s.changed()
	return true
}

// SetVector replaces the value of the vector at index i.
func (s *State) SetVector(i int, v math.Vec3) error {
	if i < 0 || i >= len(s.vectors) {
		return fmt.Errorf("vector %d: %w", i, ErrIndexOutOfRange)
	}
	s.vectors[i].Value = v
	s.changed()
	return nil
}

// SetVectorComponent sets one component (axis 0, 1 or 2) of vector i.
func (s *State) SetVectorComponent(i, axis int, value float32) error {
	if i < 0 || i >= len(s.vectors) {
		return fmt.Errorf("vector %d: %w", i, ErrIndexOutOfRange)
	}
	if axis < 0 || axis > 2 {
		return fmt.Errorf("vector %d axis %d: %w", i, axis, ErrAxisOutOfRange)
	}
	s.vectors[i].Value = s.vectors[i].Value.WithComponent(axis, value)
	s.changed()
	return nil
}

// SetVectorComponentText sets a component from user-entered text.
// Text that is not a finite number is stored as 0.
func (s *State) SetVectorComponentText(i, axis int, text string) error {
	return s.SetVectorComponent(i, axis, ParseComponent(text))
}

// SetVisible toggles drawing of vector i.
func (s *State) SetVisible(i int, visible bool) error {
	if i < 0 || i >= len(s.vectors) {
		return fmt.Errorf("vector %d: %w", i, ErrIndexOutOfRange)
	}
	s.vectors[i].Visible = visible
	s.changed()
	return nil
}

// SetShowTransformed toggles drawing of vector i's image under the transform.
func (s *State) SetShowTransformed(i int, show bool) error {
	if i < 0 || i >= len(s.vectors) {
		return fmt.Errorf("vector %d: %w", i, ErrIndexOutOfRange)
	}
	s.vectors[i].ShowTransformed = show
	s.changed()
	return nil
}

// Rows returns the transform rows. The slice must not be modified.
func (s *State) Rows() []math.Vec3 {
	return s.rows
}

// AddTransformRow appends a zero row and returns its index.
func (s *State) AddTransformRow() int {
	s.rows = append(s.rows, math.Vec3{})
	s.changed()
	return len(s.rows) - 1
}

// RemoveTransformRow deletes row i, refusing to remove the last row.
func (s *State) RemoveTransformRow(i int) bool {
	if len(s.rows) <= 1 || i < 0 || i >= len(s.rows) {
		return false
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	s.changed()
	return true
}

// SetTransformComponent sets one entry of transform row i.
func (s *State) SetTransformComponent(row, axis int, value float32) error {
	if row < 0 || row >= len(s.rows) {
		return fmt.Errorf("row %d: %w", row, ErrIndexOutOfRange)
	}
	if axis < 0 || axis > 2 {
		return fmt.Errorf("row %d axis %d: %w", row, axis, ErrAxisOutOfRange)
	}
	s.rows[row] = s.rows[row].WithComponent(axis, value)
	s.changed()
	return nil
}

// SetTransformComponentText is SetTransformComponent for user-entered text.
func (s *State) SetTransformComponentText(row, axis int, text string) error {
	return s.SetTransformComponent(row, axis, ParseComponent(text))
}

// ApplyTransform returns Σ rows[i] * input[i]. Rows beyond the input's
// length are ignored and missing input components count as zero.
func (s *State) ApplyTransform(input []float32) math.Vec3 {
	return ApplyRows(s.rows, input)
}

// Transformed returns the image of vector i under the transform.
func (s *State) Transformed(i int) (math.Vec3, bool) {
	v, ok := s.Vector(i)
	if !ok {
		return math.Vec3{}, false
	}
	return s.ApplyTransform(v.Value.Slice()), true
}

// ApplyRows is the lenient matrix-vector product behind ApplyTransform.
func ApplyRows(rows []math.Vec3, input []float32) math.Vec3 {
	var out math.Vec3
	for i, row := range rows {
		if i >= len(input) {
			break
		}
		out = out.Add(row.Scale(input[i]))
	}
	return out
}

// ParseComponent converts user text to a component value. Anything that is
// not a finite number becomes 0.
func ParseComponent(text string) float32 {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
	if err != nil {
		return 0
	}
	v := float32(f)
	if !math.IsFinite(v) {
		return 0
	}
	return v
}
