package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Fatalf("zero frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionChoice3)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Errorf("Has reports wrong actions: %v", f.Actions)
	}
	if f.Choice() != 3 {
		t.Errorf("Choice() = %d, expected 3", f.Choice())
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) || f.Choice() != 0 {
		t.Errorf("Clear left actions behind")
	}
	if !clone.Has(ActionLeft) {
		t.Errorf("Clone should not share storage")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionUp:      "Up",
		ActionRight:   "Right",
		ActionRestart: "Restart",
		ActionChoice4: "Choice4",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if a.String() != want {
			t.Errorf("%d.String() = %q, want %q", a, a.String(), want)
		}
	}
}

func TestLevelColor(t *testing.T) {
	if LevelColor(0) != ColorDefault {
		t.Errorf("empty cells should use the default color")
	}
	if LevelColor(1) != LevelColors[0] {
		t.Errorf("level 1 should use the first color")
	}
	if LevelColor(1+len(LevelColors)) != LevelColor(1) {
		t.Errorf("colors should cycle")
	}
}
