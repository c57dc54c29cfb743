// Package plot renders a curve pair to a raster image by slicing it along
// evenly spaced vertical lines.
//
// Every column is an exact vertical line computed with
// algcurve.PairAnalysis.SliceAt, so the points drawn are exactly the
// points of the curves over that column, including isolated points that
// numeric contouring misses. Columns are computed in parallel.
//
// Example:
//
//	img, err := plot.Render(pa, plot.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	return plot.WritePNG(f, img)
package plot
