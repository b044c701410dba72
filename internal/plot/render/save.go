package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"psrs-report/internal/plot/mappings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// SavePNG renders p at the given physical size and resolution and writes it
// to path, creating the parent directory if needed.
func SavePNG(p *plot.Plot, size mappings.FigureSize, dpi int, path string) error {
	c := vgimg.NewWith(vgimg.UseWH(size.Width, size.Height), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))
	return writePNG(c, path)
}

// Grid is a row-major arrangement of subplots sharing one legend drawn in a
// strip above them. Nil cells are left blank.
type Grid struct {
	Cells        [][]*plot.Plot
	Legend       plot.Legend
	LegendHeight vg.Length
	Cell         mappings.FigureSize
}

// SaveGridPNG renders g with every cell at g.Cell size.
func SaveGridPNG(g Grid, dpi int, path string) error {
	rows := len(g.Cells)
	if rows == 0 || len(g.Cells[0]) == 0 {
		return errors.New("render: grid has no cells")
	}
	cols := len(g.Cells[0])

	width := g.Cell.Width * vg.Length(cols)
	height := g.Cell.Height*vg.Length(rows) + g.LegendHeight
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	dc := draw.New(c)

	split := dc.Max.Y - g.LegendHeight
	legendArea := draw.Canvas{
		Canvas:    dc.Canvas,
		Rectangle: vg.Rectangle{Min: vg.Point{X: dc.Min.X, Y: split}, Max: dc.Max},
	}
	plotArea := draw.Canvas{
		Canvas:    dc.Canvas,
		Rectangle: vg.Rectangle{Min: dc.Min, Max: vg.Point{X: dc.Max.X, Y: split}},
	}

	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	for r, row := range g.Cells {
		for col, p := range row {
			if p == nil {
				continue
			}
			p.Draw(tiles.At(plotArea, col, r))
		}
	}
	g.Legend.Draw(legendArea)

	return writePNG(c, path)
}

func writePNG(c *vgimg.Canvas, path string) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
