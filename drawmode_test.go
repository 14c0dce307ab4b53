package spritefx

import "testing"

func TestDrawModeString(t *testing.T) {
	tests := []struct {
		name string
		mode DrawMode
		want string
	}{
		{"default", DrawModeDefault, "default"},
		{"straightAlpha", DrawModeStraightAlpha, "straightAlpha"},
		{"silhouette", DrawModeSilhouette, "silhouette"},
		{"colorMask", DrawModeColorMask, "colorMask"},
		{"line", DrawModeLine, "line"},
		{"out of range", DrawMode(99), "unknown"},
		{"negative", DrawMode(-1), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("DrawMode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
			}
		})
	}
}

func TestDrawModeValid(t *testing.T) {
	for _, m := range DrawModes() {
		if !m.Valid() {
			t.Errorf("DrawMode %v should be valid", m)
		}
	}
	for _, m := range []DrawMode{-1, DrawMode(int(numDrawModes)), 99} {
		if m.Valid() {
			t.Errorf("DrawMode(%d) should not be valid", int(m))
		}
	}
}

func TestDrawModes(t *testing.T) {
	modes := DrawModes()
	want := []DrawMode{
		DrawModeDefault,
		DrawModeStraightAlpha,
		DrawModeSilhouette,
		DrawModeColorMask,
		DrawModeLine,
	}
	if len(modes) != len(want) {
		t.Fatalf("DrawModes() returned %d modes, want %d", len(modes), len(want))
	}
	for i, m := range modes {
		if m != want[i] {
			t.Errorf("DrawModes()[%d] = %v, want %v", i, m, want[i])
		}
	}
}

func TestDrawModeByName(t *testing.T) {
	for _, m := range DrawModes() {
		got, ok := DrawModeByName(m.String())
		if !ok {
			t.Errorf("DrawModeByName(%q) not found", m.String())
			continue
		}
		if got != m {
			t.Errorf("DrawModeByName(%q) = %v, want %v", m.String(), got, m)
		}
	}

	if _, ok := DrawModeByName("sepia"); ok {
		t.Error("DrawModeByName(sepia) should not resolve")
	}
	if _, ok := DrawModeByName(""); ok {
		t.Error("DrawModeByName(\"\") should not resolve")
	}
}
