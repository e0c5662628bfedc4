package engine

import (
	"reflect"
	"testing"
)

func TestDirectionVectors(t *testing.T) {
	want := map[Direction]Vector{
		DirUp:    {0, -1},
		DirRight: {1, 0},
		DirDown:  {0, 1},
		DirLeft:  {-1, 0},
	}
	for d, v := range want {
		if got := d.Vector(); got != v {
			t.Errorf("%v.Vector() = %v, want %v", d, got, v)
		}
	}
}

func TestBuildTraversals(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Traversals
	}{
		{DirUp, Traversals{X: []int{0, 1, 2}, Y: []int{0, 1, 2}}},
		{DirRight, Traversals{X: []int{2, 1, 0}, Y: []int{0, 1, 2}}},
		{DirDown, Traversals{X: []int{0, 1, 2}, Y: []int{2, 1, 0}}},
		{DirLeft, Traversals{X: []int{0, 1, 2}, Y: []int{0, 1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := BuildTraversals(3, tt.dir.Vector()); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildTraversals(3, %v) = %+v, want %+v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"up", DirUp, false},
		{"RIGHT", DirRight, false},
		{" 2 ", DirDown, false},
		{"3", DirLeft, false},
		{"north", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
