package picking

import "testing"

func TestHandlesHitTest(t *testing.T) {
	h := NewHandles(0)
	h.Add(0, 100, 100, [3]float32{1, 0.5, 0})
	h.Add(3, 110, 100, [3]float32{0.2, 0.6, 1})

	tests := []struct {
		name    string
		x, y    float32
		wantIdx int
		wantOK  bool
	}{
		{"exact first", 100, 100, 0, true},
		{"nearest wins", 107, 100, 3, true},
		{"edge of radius", 100, 91, 0, true},
		{"outside radius", 80, 80, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := h.HitTest(tt.x, tt.y)
			if ok != tt.wantOK || (ok && idx != tt.wantIdx) {
				t.Errorf("HitTest(%v, %v) = (%d, %v), want (%d, %v)", tt.x, tt.y, idx, ok, tt.wantIdx, tt.wantOK)
			}
		})
	}
}

func TestHandlesResetReusesStorage(t *testing.T) {
	h := NewHandles(HitRadius)
	for i := 0; i < 8; i++ {
		h.Add(i, float32(i*20), 0, [3]float32{})
	}
	capBefore := cap(h.items)
	h.Reset()
	if h.Len() != 0 {
		t.Fatalf("Len after Reset = %d, want 0", h.Len())
	}
	if _, ok := h.HitTest(0, 0); ok {
		t.Error("stale handle hit after Reset")
	}
	h.Add(0, 5, 5, [3]float32{})
	if cap(h.items) != capBefore {
		t.Errorf("capacity changed from %d to %d", capBefore, cap(h.items))
	}
}
