package colorlut

import "testing"

func TestToPixelToSampleBijection(t *testing.T) {
	seen := make(map[[2]int]bool, Samples)
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			for x := 0; x < Dim; x++ {
				for y := 0; y < Dim; y++ {
					px, py := ToPixel(x, y, i, j)
					if px < 0 || px >= Side || py < 0 || py >= Side {
						t.Fatalf("ToPixel(%d,%d,%d,%d) = (%d,%d) out of range", x, y, i, j, px, py)
					}
					if seen[[2]int{px, py}] {
						t.Fatalf("ToPixel(%d,%d,%d,%d) = (%d,%d) hit twice", x, y, i, j, px, py)
					}
					seen[[2]int{px, py}] = true

					gx, gy, gi, gj := ToSample(px, py)
					if gx != x || gy != y || gi != i || gj != j {
						t.Fatalf("ToSample(%d,%d) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
							px, py, gx, gy, gi, gj, x, y, i, j)
					}
				}
			}
		}
	}
	if len(seen) != Samples {
		t.Errorf("covered %d texels, want %d", len(seen), Samples)
	}
}

func TestToPixel(t *testing.T) {
	tests := []struct {
		x, y, i, j int
		px, py     int
	}{
		{0, 0, 0, 0, 0, 0},
		{15, 15, 15, 15, 255, 255},
		{3, 5, 2, 1, 35, 21},
		{0, 0, 1, 0, 16, 0},
	}
	for _, tt := range tests {
		px, py := ToPixel(tt.x, tt.y, tt.i, tt.j)
		if px != tt.px || py != tt.py {
			t.Errorf("ToPixel(%d,%d,%d,%d) = (%d,%d), want (%d,%d)",
				tt.x, tt.y, tt.i, tt.j, px, py, tt.px, tt.py)
		}
	}
}
