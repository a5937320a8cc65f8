package scene

import (
	"fmt"
	"strings"

	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// DebugLines describes every vector, and its image when shown, one line
// per vector:
//
//	v1 = (0.6000, 0.6000, 0.6000) |v|=1.0392 → (0.3000, 0.3000, 0.3000) |out|=0.5196
func (s *State) DebugLines() []string {
	lines := make([]string, 0, len(s.vectors))
	for i, v := range s.vectors {
		var b strings.Builder
		fmt.Fprintf(&b, "v%d = %s |v|=%.4f", i+1, formatVec(v.Value), v.Value.Length())
		if v.ShowTransformed && len(s.rows) > 0 {
			out := s.ApplyTransform(v.Value.Slice())
			fmt.Fprintf(&b, " → %s |out|=%.4f", formatVec(out), out.Length())
		}
		lines = append(lines, b.String())
	}
	return lines
}

func formatVec(v math.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}
