// ndx-stats prints the group table of a GROMACS index file and can draw the
// group sizes as a bar chart.
package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/weitse-hsu/gmx-utils/ndx"
)

func main() {
	var (
		ndxFile = flag.String("n", "index.ndx", "input index file")
		pngFile = flag.String("o", "", "write a group-size bar chart to this PNG file")
	)
	flag.Parse()

	x, err := ndx.Read(*ndxFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Index groups (%d):\n%s", x.Len(), x.Summary())

	if *pngFile == "" {
		return
	}
	if err := plotSizes(x, *pngFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *pngFile)
}

func plotSizes(x *ndx.Index, path string) error {
	p := plot.New()
	p.Title.Text = "Index group sizes"
	p.Y.Label.Text = "atoms"

	names := x.Names()
	values := make(plotter.Values, len(names))
	for i, n := range names {
		g, _ := x.Group(n)
		values[i] = float64(len(g))
	}
	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(names...)

	return p.Save(vg.Length(len(names)+4)*vg.Centimeter, 10*vg.Centimeter, path)
}
