//Package gridplot turns density grids into planar averages and profile
//plots, the usual way of looking at a CHGCAR or a work-function
//calculation along the slab normal.
package gridplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	chem "github.com/rsolis/gocrystal"
)

//PlanarAverage averages the grid over the two directions perpendicular
//to the given axis, returning one value per plane along it.
func PlanarAverage(g *chem.Grid, axis int) ([]float64, error) {
	if axis < 0 || axis > 2 {
		return nil, fmt.Errorf("gridplot: invalid axis %d", axis)
	}
	shape := g.Shape()
	avg := make([]float64, shape[axis])
	perp := float64(g.Len() / shape[axis])
	var idx [3]int
	for i := 0; i < shape[0]; i++ {
		idx[0] = i
		for j := 0; j < shape[1]; j++ {
			idx[1] = j
			for k := 0; k < shape[2]; k++ {
				idx[2] = k
				avg[idx[axis]] += g.At(i, j, k)
			}
		}
	}
	for i := range avg {
		avg[i] /= perp
	}
	return avg, nil
}

//axisStep returns the distance between consecutive planes along axis.
func axisStep(g *chem.Grid, axis int) float64 {
	geom := g.Geometry()
	if geom == nil || geom.Lattice() == nil {
		return 1
	}
	v := geom.Lattice().Vec(axis)
	length := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	return length / float64(g.Shape()[axis])
}

//Profile plots the given per-plane values against distance and saves the
//plot as a PNG file. step is the distance between planes.
func Profile(vals []float64, step float64, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "z (A)"
	p.Y.Label.Text = "average density"
	pts := make(plotter.XYs, len(vals))
	for i, v := range vals {
		pts[i].X = float64(i) * step
		pts[i].Y = v
	}
	p.Add(plotter.NewGrid())
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(l)
	return p.Save(14*vg.Centimeter, 10*vg.Centimeter, filename)
}

//GridProfile averages g along the two directions perpendicular to axis
//and plots the result, in one call.
func GridProfile(g *chem.Grid, axis int, title, filename string) error {
	avg, err := PlanarAverage(g, axis)
	if err != nil {
		return err
	}
	return Profile(avg, axisStep(g, axis), title, filename)
}
