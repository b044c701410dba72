package mappings

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// FigureSize is the physical size of a rendered figure; pixel dimensions
// follow from the profile's DPI.
type FigureSize struct {
	Width  vg.Length
	Height vg.Length
}

// StyleProfile carries every visual constant a chart generator needs.
// GetProfile returns a deep copy, so callers may modify the result.
type StyleProfile struct {
	Name string

	Typeface font.Typeface
	Variant  font.Variant

	TitleFontSize  vg.Length
	LabelFontSize  vg.Length
	TickFontSize   vg.Length
	LegendFontSize vg.Length

	LineWidth          vg.Length
	ReferenceLineWidth vg.Length
	BarOutlineWidth    vg.Length
	MarkerRadius       vg.Length
	ReferenceDashes    []vg.Length

	GridColor  color.Color
	GridWidth  vg.Length
	GridDashes []vg.Length

	LineFigure FigureSize
	BarFigure  FigureSize
	PhaseCell  FigureSize
	DPI        int

	// ReferenceHeadroom scales the largest observed speedup to the extent of
	// the linear reference line and the speedup y axis.
	ReferenceHeadroom float64
	EfficiencyCeiling float64
	// BarGroupWidth is the share of one x unit a group of bars occupies.
	BarGroupWidth float64
	PhaseBarWidth float64
	PhaseColumns  int

	Palette Palette
}

// Font returns the profile's typeface at the given size.
func (sp StyleProfile) Font(size vg.Length) font.Font {
	return font.Font{Typeface: sp.Typeface, Variant: sp.Variant, Size: size}
}

const DefaultProfile = "paper"

var profiles = map[string]StyleProfile{
	"paper": {
		Name:     "paper",
		Typeface: "Liberation",
		Variant:  "Serif",

		TitleFontSize:  vg.Points(14),
		LabelFontSize:  vg.Points(14),
		TickFontSize:   vg.Points(12),
		LegendFontSize: vg.Points(11),

		LineWidth:          vg.Points(1.8),
		ReferenceLineWidth: vg.Points(1.5),
		BarOutlineWidth:    vg.Points(0.5),
		MarkerRadius:       vg.Points(4),
		ReferenceDashes:    []vg.Length{vg.Points(6), vg.Points(3)},

		GridColor:  LightGray,
		GridWidth:  vg.Points(0.5),
		GridDashes: []vg.Length{vg.Points(2), vg.Points(2)},

		LineFigure: FigureSize{Width: 9 * vg.Inch, Height: 6 * vg.Inch},
		BarFigure:  FigureSize{Width: 13 * vg.Inch, Height: 6 * vg.Inch},
		PhaseCell:  FigureSize{Width: 5 * vg.Inch, Height: 4 * vg.Inch},
		DPI:        300,

		ReferenceHeadroom: 1.25,
		EfficiencyCeiling: 1.2,
		BarGroupWidth:     0.8,
		PhaseBarWidth:     0.6,
		PhaseColumns:      3,

		Palette: SeriesPalette,
	},
	"poster": {
		Name:     "poster",
		Typeface: "Liberation",
		Variant:  "Serif",

		TitleFontSize:  vg.Points(18),
		LabelFontSize:  vg.Points(18),
		TickFontSize:   vg.Points(16),
		LegendFontSize: vg.Points(15),

		LineWidth:          vg.Points(2.5),
		ReferenceLineWidth: vg.Points(2),
		BarOutlineWidth:    vg.Points(0.8),
		MarkerRadius:       vg.Points(5),
		ReferenceDashes:    []vg.Length{vg.Points(8), vg.Points(4)},

		GridColor:  LightGray,
		GridWidth:  vg.Points(0.8),
		GridDashes: []vg.Length{vg.Points(3), vg.Points(3)},

		LineFigure: FigureSize{Width: 12 * vg.Inch, Height: 8 * vg.Inch},
		BarFigure:  FigureSize{Width: 16 * vg.Inch, Height: 8 * vg.Inch},
		PhaseCell:  FigureSize{Width: 6 * vg.Inch, Height: 5 * vg.Inch},
		DPI:        300,

		ReferenceHeadroom: 1.3,
		EfficiencyCeiling: 1.15,
		BarGroupWidth:     0.8,
		PhaseBarWidth:     0.6,
		PhaseColumns:      3,

		Palette: SeriesPalette,
	},
}

// GetProfile looks up a named profile.
func GetProfile(name string) (StyleProfile, bool) {
	p, ok := profiles[name]
	if !ok {
		return StyleProfile{}, false
	}
	p.ReferenceDashes = append([]vg.Length(nil), p.ReferenceDashes...)
	p.GridDashes = append([]vg.Length(nil), p.GridDashes...)
	p.Palette = append(Palette(nil), p.Palette...)
	return p, true
}

// MustProfile is GetProfile for names known at compile time.
func MustProfile(name string) StyleProfile {
	p, ok := GetProfile(name)
	if !ok {
		panic(fmt.Sprintf("unknown style profile %q", name))
	}
	return p
}

func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
