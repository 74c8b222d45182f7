package splitter

import (
	"errors"
	"image"
	"testing"
)

func TestRectangles_Examples(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		dir           Direction
		n             int
		want          []image.Rectangle
	}{
		{
			name: "300x100 horizontal 3",
			width: 300, height: 100, dir: Horizontal, n: 3,
			want: []image.Rectangle{
				image.Rect(0, 0, 300, 33),
				image.Rect(0, 33, 300, 66),
				image.Rect(0, 66, 300, 100),
			},
		},
		{
			name: "10x10 vertical 4",
			width: 10, height: 10, dir: Vertical, n: 4,
			want: []image.Rectangle{
				image.Rect(0, 0, 2, 10),
				image.Rect(2, 0, 4, 10),
				image.Rect(4, 0, 6, 10),
				image.Rect(6, 0, 10, 10),
			},
		},
		{
			name: "even split",
			width: 8, height: 4, dir: Vertical, n: 2,
			want: []image.Rectangle{
				image.Rect(0, 0, 4, 4),
				image.Rect(4, 0, 8, 4),
			},
		},
		{
			name: "one pixel per slice",
			width: 5, height: 3, dir: Horizontal, n: 3,
			want: []image.Rectangle{
				image.Rect(0, 0, 5, 1),
				image.Rect(0, 1, 5, 2),
				image.Rect(0, 2, 5, 3),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rectangles(tt.width, tt.height, tt.dir, tt.n)
			if err != nil {
				t.Fatalf("Rectangles failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rectangles, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("rect %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRectangles_Tiling(t *testing.T) {
	sizes := [][2]int{{1, 1}, {3, 7}, {10, 10}, {17, 5}, {64, 33}, {101, 99}, {300, 100}}

	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		for _, dir := range []Direction{Horizontal, Vertical} {
			extent := Extent(w, h, dir)
			for n := 1; n <= extent && n <= DefaultMaxCount; n++ {
				rects, err := Rectangles(w, h, dir, n)
				if err != nil {
					t.Fatalf("%dx%d %v n=%d: %v", w, h, dir, n, err)
				}
				checkTiling(t, w, h, dir, n, rects)
			}
		}
	}
}

func checkTiling(t *testing.T, w, h int, dir Direction, n int, rects []image.Rectangle) {
	t.Helper()

	if len(rects) != n {
		t.Fatalf("%dx%d %v n=%d: got %d rectangles", w, h, dir, n, len(rects))
	}

	covered := make([]int, w*h)
	sum := 0
	for _, r := range rects {
		if r.Empty() {
			t.Fatalf("%dx%d %v n=%d: empty rectangle %v", w, h, dir, n, r)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				covered[y*w+x]++
			}
		}
		if dir == Horizontal {
			sum += r.Dy()
			if r.Min.X != 0 || r.Max.X != w {
				t.Errorf("%v does not span the full width %d", r, w)
			}
		} else {
			sum += r.Dx()
			if r.Min.Y != 0 || r.Max.Y != h {
				t.Errorf("%v does not span the full height %d", r, h)
			}
		}
	}

	for i, c := range covered {
		if c != 1 {
			t.Fatalf("%dx%d %v n=%d: pixel (%d,%d) covered %d times", w, h, dir, n, i%w, i/w, c)
		}
	}

	extent := Extent(w, h, dir)
	if sum != extent {
		t.Errorf("%dx%d %v n=%d: sizes sum to %d, want %d", w, h, dir, n, sum, extent)
	}

	base := extent / n
	last := rects[n-1]
	lastSize := last.Dy()
	if dir == Vertical {
		lastSize = last.Dx()
	}
	if lastSize != extent-(n-1)*base {
		t.Errorf("%dx%d %v n=%d: last slice is %d, want %d", w, h, dir, n, lastSize, extent-(n-1)*base)
	}

	// reading order
	for i := 1; i < n; i++ {
		if dir == Horizontal && rects[i].Min.Y != rects[i-1].Max.Y {
			t.Errorf("rect %d does not follow rect %d", i, i-1)
		}
		if dir == Vertical && rects[i].Min.X != rects[i-1].Max.X {
			t.Errorf("rect %d does not follow rect %d", i, i-1)
		}
	}
}

func TestRectangles_Rejects(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		dir           Direction
		n             int
		field         string
	}{
		{"count exceeds height", 100, 3, Horizontal, 4, "count"},
		{"count exceeds width", 2, 100, Vertical, 3, "count"},
		{"zero count", 10, 10, Horizontal, 0, "count"},
		{"zero width", 0, 10, Horizontal, 2, "image"},
		{"negative height", 10, -1, Vertical, 2, "image"},
		{"bad direction", 10, 10, Direction(7), 2, "direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Rectangles(tt.width, tt.height, tt.dir, tt.n)
			if !errors.Is(err, ErrInvalidParameters) {
				t.Fatalf("expected ErrInvalidParameters, got %v", err)
			}
			var pe *ParamError
			if !errors.As(err, &pe) || pe.Field != tt.field {
				t.Errorf("expected field %q, got %v", tt.field, err)
			}
		})
	}
}

func TestLimits_Check(t *testing.T) {
	l := Limits{MaxCount: 10}

	tests := []struct {
		name    string
		count   int
		extent  int
		wantErr bool
	}{
		{"one is below minimum", 1, 100, true},
		{"minimum", 2, 100, false},
		{"maximum", 10, 100, false},
		{"above maximum", 11, 100, true},
		{"exceeds extent", 5, 4, true},
		{"equals extent", 4, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := l.Check(tt.count, tt.extent)
			if tt.wantErr && !errors.Is(err, ErrInvalidParameters) {
				t.Errorf("expected ErrInvalidParameters, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLimits_DefaultMax(t *testing.T) {
	if got := (Limits{}).Max(); got != DefaultMaxCount {
		t.Errorf("Max: got %d, want %d", got, DefaultMaxCount)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"horizontal", Horizontal},
		{"H", Horizontal},
		{"Vertical", Vertical},
		{"v", Vertical},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Fatalf("ParseDirection(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDirection("diagonal"); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters, got %v", err)
	}
}
