package state

import "testing"

func TestEnsureVisibleAdjustsOffset(t *testing.T) {
	var v Viewport
	v.EnsureVisible(4, 5, 2)
	if v.Offset != 3 {
		t.Fatalf("expected offset 3, got %d", v.Offset)
	}

	v.EnsureVisible(-1, 5, 2)
	if v.Offset != 0 {
		t.Fatalf("expected row normalized to 0, got offset %d", v.Offset)
	}

	v.Offset = 4
	v.EnsureVisible(1, 5, 0)
	if v.Offset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", v.Offset)
	}

	v.Offset = 4
	v.EnsureVisible(1, 5, 3)
	if v.Offset != 1 {
		t.Fatalf("expected offset aligned with row, got %d", v.Offset)
	}

	v.Offset = 1
	v.EnsureVisible(2, 5, 3)
	if v.Offset != 1 {
		t.Fatalf("expected offset unchanged for a visible row, got %d", v.Offset)
	}
}

func TestEnsureRangeVisible(t *testing.T) {
	var v Viewport
	v.EnsureRangeVisible(3, 5, 10, 4)
	if v.Offset != 2 {
		t.Fatalf("expected whole range visible at offset 2, got %d", v.Offset)
	}
	v.EnsureRangeVisible(1, 8, 10, 4)
	if v.Offset != 1 {
		t.Fatalf("expected first row preferred when range does not fit, got %d", v.Offset)
	}
}

func TestWindow(t *testing.T) {
	v := Viewport{Offset: 8}
	start, end := v.Window(10, 4)
	if start != 6 || end != 10 {
		t.Fatalf("expected 6..10, got %d..%d", start, end)
	}
	start, end = v.Window(3, 4)
	if start != 0 || end != 3 {
		t.Fatalf("expected full range, got %d..%d", start, end)
	}
}
