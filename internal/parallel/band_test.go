package parallel

import "testing"

func TestPartition_CoversEveryRowOnce(t *testing.T) {
	heights := []int{0, 1, 3, 4, 100, 101}

	for count := 1; count <= 8; count++ {
		for _, h := range heights {
			bands := Partition(h, count)

			if len(bands) != count {
				t.Fatalf("Partition(%d, %d) returned %d bands, want %d", h, count, len(bands), count)
			}

			hits := make([]int, h)
			next := 0
			for i, b := range bands {
				if b.StartY != next {
					t.Errorf("Partition(%d, %d) band %d starts at %d, want %d", h, count, i, b.StartY, next)
				}
				for y := b.StartY; y < b.EndY; y++ {
					hits[y]++
				}
				next = b.EndY
			}
			if next != h {
				t.Errorf("Partition(%d, %d) ends at %d, want %d", h, count, next, h)
			}
			for y, n := range hits {
				if n != 1 {
					t.Errorf("Partition(%d, %d) covers row %d %d times, want 1", h, count, y, n)
				}
			}
		}
	}
}

func TestPartition_RemainderInLastBand(t *testing.T) {
	tests := []struct {
		height, count int
		want          []Band
	}{
		{101, 4, []Band{{0, 25}, {25, 50}, {50, 75}, {75, 101}}},
		{100, 4, []Band{{0, 25}, {25, 50}, {50, 75}, {75, 100}}},
		{3, 4, []Band{{0, 0}, {0, 0}, {0, 0}, {0, 3}}},
		{1, 4, []Band{{0, 0}, {0, 0}, {0, 0}, {0, 1}}},
		{7, 1, []Band{{0, 7}}},
	}

	for _, tt := range tests {
		got := Partition(tt.height, tt.count)
		if len(got) != len(tt.want) {
			t.Fatalf("Partition(%d, %d) = %v, want %v", tt.height, tt.count, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Partition(%d, %d)[%d] = %v, want %v", tt.height, tt.count, i, got[i], tt.want[i])
			}
		}
	}
}

func TestPartition_InvalidArguments(t *testing.T) {
	bands := Partition(10, 0)
	if len(bands) != 1 || bands[0] != (Band{0, 10}) {
		t.Errorf("Partition(10, 0) = %v, want [[0,10)]", bands)
	}

	bands = Partition(-3, 2)
	for _, b := range bands {
		if !b.Empty() {
			t.Errorf("Partition(-3, 2) produced non-empty band %v", b)
		}
	}
}

func TestBand_Clamp(t *testing.T) {
	tests := []struct {
		name   string
		band   Band
		lo, hi int
		want   Band
		empty  bool
	}{
		{"inside", Band{5, 10}, 1, 99, Band{5, 10}, false},
		{"first band", Band{0, 25}, 1, 99, Band{1, 25}, false},
		{"last band", Band{75, 100}, 1, 99, Band{75, 99}, false},
		{"fully clipped", Band{0, 1}, 1, 2, Band{1, 1}, true},
		{"inverted", Band{0, 0}, 1, 0, Band{1, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.band.Clamp(tt.lo, tt.hi)
			if got != tt.want {
				t.Errorf("Clamp(%d, %d) = %v, want %v", tt.lo, tt.hi, got, tt.want)
			}
			if got.Empty() != tt.empty {
				t.Errorf("Empty() = %v, want %v", got.Empty(), tt.empty)
			}
			if tt.empty && got.Rows() != 0 {
				t.Errorf("Rows() = %d, want 0", got.Rows())
			}
		})
	}
}

func TestBand_String(t *testing.T) {
	if got := (Band{StartY: 3, EndY: 9}).String(); got != "[3,9)" {
		t.Errorf("String() = %q, want %q", got, "[3,9)")
	}
}
