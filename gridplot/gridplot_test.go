package gridplot

import (
	"math"
	"testing"

	chem "github.com/rsolis/gocrystal"
)

func TestPlanarAverage(Te *testing.T) {
	g, err := chem.NewGrid([3]int{2, 2, 3}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	//plane k holds the value k everywhere
	for k := 0; k < 3; k++ {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				g.Set(i, j, k, float64(k))
			}
		}
	}
	avg, err := PlanarAverage(g, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if len(avg) != 3 {
		Te.Fatalf("got %d planes, want 3", len(avg))
	}
	for k, v := range avg {
		if math.Abs(v-float64(k)) > 1e-12 {
			Te.Errorf("plane %d: got %v, want %d", k, v, k)
		}
	}
	//averaging along x sees every plane equally
	avg, err = PlanarAverage(g, 0)
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range avg {
		if math.Abs(v-1.0) > 1e-12 {
			Te.Errorf("x plane %d: got %v, want 1", i, v)
		}
	}
	if _, err := PlanarAverage(g, 3); err == nil {
		Te.Error("invalid axis accepted")
	}
}
