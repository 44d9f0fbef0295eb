package text

import (
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// testRegistry creates a registry with "regular", "bold" and "mono",
// "regular" being the global fallback.
func testRegistry(t *testing.T) *Registry {
	t.Helper()

	reg, err := NewRegistry("regular",
		FontSpec{ID: "regular", Data: goregular.TTF},
		FontSpec{ID: "bold", Data: gobold.TTF},
		FontSpec{ID: "mono", Data: gomono.TTF},
	)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return reg
}

// fragmentsOf builds fragments with the given lengths and no glyphs.
func fragmentsOf(lengths ...float64) []*Fragment {
	frags := make([]*Fragment, len(lengths))
	for i, l := range lengths {
		frags[i] = &Fragment{Length: l}
	}
	return frags
}

func approxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
