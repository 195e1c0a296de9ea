package entities

import "testing"

func TestDirDelta(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		wantDX int
		wantDY int
	}{
		{name: "none", dir: DirNone, wantDX: 0, wantDY: 0},
		{name: "up", dir: DirUp, wantDX: 0, wantDY: -1},
		{name: "down", dir: DirDown, wantDX: 0, wantDY: 1},
		{name: "left", dir: DirLeft, wantDX: -1, wantDY: 0},
		{name: "right", dir: DirRight, wantDX: 1, wantDY: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := DirDelta(tc.dir)
			if dx != tc.wantDX || dy != tc.wantDY {
				t.Fatalf("DirDelta(%v) = (%d,%d), want (%d,%d)", tc.dir, dx, dy, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	for _, d := range Directions {
		r := d.Reverse()
		dx, dy := DirDelta(d)
		rx, ry := DirDelta(r)
		if dx != -rx || dy != -ry {
			t.Fatalf("%v.Reverse() = %v", d, r)
		}
		if r.Reverse() != d {
			t.Fatalf("reverse of reverse of %v is %v", d, r.Reverse())
		}
	}
	if DirNone.Reverse() != DirNone {
		t.Fatal("DirNone should have no reverse")
	}
}

func TestNewPlayerFacesRight(t *testing.T) {
	p := NewPlayer(48, 48)
	if p.CurrentDir != DirRight || p.NextDir != DirNone || !p.MouthOpen {
		t.Fatalf("unexpected initial player %+v", p)
	}
}

func TestBufferKeepsLastDirection(t *testing.T) {
	p := NewPlayer(0, 0)
	p.Buffer(DirUp)
	p.Buffer(DirNone)
	if p.NextDir != DirUp {
		t.Fatalf("NextDir = %v, want up", p.NextDir)
	}
	p.Buffer(DirLeft)
	if p.NextDir != DirLeft {
		t.Fatalf("NextDir = %v, want left", p.NextDir)
	}
}

func TestAnimateTogglesMouth(t *testing.T) {
	p := NewPlayer(0, 0)
	for i := 0; i < 11; i++ {
		p.Animate(12)
	}
	if !p.MouthOpen {
		t.Fatal("mouth toggled early")
	}
	p.Animate(12)
	if p.MouthOpen {
		t.Fatal("mouth should close after 12 ticks")
	}
	for i := 0; i < 12; i++ {
		p.Animate(12)
	}
	if !p.MouthOpen {
		t.Fatal("mouth should reopen after another 12 ticks")
	}
}

func TestNewGhostColorsCycle(t *testing.T) {
	for i := 0; i < 6; i++ {
		g := NewGhost(0, 0, i)
		if g.Color != GhostColors[i%len(GhostColors)] {
			t.Fatalf("ghost %d color %v", i, g.Color)
		}
		if g.CurrentDir != DirNone {
			t.Fatalf("ghost %d starts moving %v", i, g.CurrentDir)
		}
	}
}
