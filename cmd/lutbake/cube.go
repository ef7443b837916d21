package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gogpu/colorlut"
)

// writeCube writes src as an Adobe .cube 3D LUT. Red varies fastest.
func writeCube(w io.Writer, src *colorlut.Source) error {
	if !colorlut.ValidateSource(src) {
		return &colorlut.ValidationError{Name: src.Name(), Width: src.Width(), Height: src.Height()}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "TITLE %q\n", src.Name())
	fmt.Fprintf(bw, "LUT_3D_SIZE %d\n", colorlut.Dim)
	fmt.Fprintln(bw, "DOMAIN_MIN 0.0 0.0 0.0")
	fmt.Fprintln(bw, "DOMAIN_MAX 1.0 1.0 1.0")

	pix := src.Pixels()
	for b := 0; b < colorlut.Dim; b++ {
		for g := 0; g < colorlut.Dim; g++ {
			// rows are stored bottom up
			row := (colorlut.Dim - 1 - g) * colorlut.Side
			for r := 0; r < colorlut.Dim; r++ {
				c := pix[row+b*colorlut.Dim+r]
				fmt.Fprintf(bw, "%.6f %.6f %.6f\n", c.R, c.G, c.B)
			}
		}
	}
	return bw.Flush()
}
