package mappings

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// StyleToken is the colour and marker assigned to one array-size series.
type StyleToken struct {
	Name  string
	Color color.RGBA
	Glyph draw.GlyphDrawer
}

// Palette is an ordered, fixed sequence of style tokens. Series i uses At(i).
type Palette []StyleToken

// At returns the token for series index i, cycling when there are more
// series than tokens.
func (p Palette) At(i int) StyleToken {
	if i < 0 {
		i = 0
	}
	return p[i%len(p)]
}

func (p Palette) Len() int {
	return len(p)
}

var (
	Blue   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	Orange = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	Green  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	Red    = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	Purple = color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}
	Brown  = color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff}

	Black     = color.RGBA{A: 0xff}
	LightGray = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
)

var SeriesPalette = Palette{
	{Name: "blue-circle", Color: Blue, Glyph: draw.CircleGlyph{}},
	{Name: "orange-square", Color: Orange, Glyph: draw.BoxGlyph{}},
	{Name: "green-triangle", Color: Green, Glyph: draw.PyramidGlyph{}},
	{Name: "red-diamond", Color: Red, Glyph: DiamondGlyph{}},
	{Name: "purple-triangle-down", Color: Purple, Glyph: InvertedPyramidGlyph{}},
	{Name: "brown-ring", Color: Brown, Glyph: draw.RingGlyph{}},
}

// DiamondGlyph is a filled square rotated by 45 degrees.
type DiamondGlyph struct{}

func (DiamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	c.FillPolygon(sty.Color, []vg.Point{
		{X: pt.X, Y: pt.Y + r},
		{X: pt.X + r, Y: pt.Y},
		{X: pt.X, Y: pt.Y - r},
		{X: pt.X - r, Y: pt.Y},
	})
}

// InvertedPyramidGlyph is a filled triangle pointing down.
type InvertedPyramidGlyph struct{}

func (InvertedPyramidGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	c.FillPolygon(sty.Color, []vg.Point{
		{X: pt.X - r, Y: pt.Y + r*0.6},
		{X: pt.X + r, Y: pt.Y + r*0.6},
		{X: pt.X, Y: pt.Y - r},
	})
}

// DashGlyph is a short horizontal stroke, used to mark ideal values.
type DashGlyph struct {
	Width vg.Length
}

func (g DashGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	ls := draw.LineStyle{Color: sty.Color, Width: g.Width}
	c.StrokeLine2(ls, pt.X-sty.Radius, pt.Y, pt.X+sty.Radius, pt.Y)
}
