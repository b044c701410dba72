package mappings

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPalette_AtCycles(t *testing.T) {
	chk := require.New(t)
	n := SeriesPalette.Len()

	chk.Equal(SeriesPalette[0].Name, SeriesPalette.At(0).Name)
	chk.Equal(SeriesPalette[0].Name, SeriesPalette.At(n).Name)
	chk.Equal(SeriesPalette[1].Name, SeriesPalette.At(n+1).Name)
	chk.Equal(SeriesPalette[0].Name, SeriesPalette.At(-3).Name)
}

func TestPalette_AtIsIndexModLen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := rapid.IntRange(0, 10_000).Draw(t, "i")
		got := SeriesPalette.At(i)
		want := SeriesPalette[i%SeriesPalette.Len()]
		if got.Name != want.Name || got.Color != want.Color {
			t.Fatalf("At(%d): expected %s, got %s", i, want.Name, got.Name)
		}
	})
}

func TestPalette_TokensAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, tok := range SeriesPalette {
		if seen[tok.Name] {
			t.Fatalf("duplicate token %s", tok.Name)
		}
		seen[tok.Name] = true
		if tok.Glyph == nil {
			t.Fatalf("token %s has no glyph", tok.Name)
		}
	}
}

func TestGetProfile(t *testing.T) {
	chk := require.New(t)

	paper, ok := GetProfile(DefaultProfile)
	chk.True(ok)
	chk.Equal(1.25, paper.ReferenceHeadroom)
	chk.Equal(1.2, paper.EfficiencyCeiling)
	chk.Equal(300, paper.DPI)
	chk.Equal(3, paper.PhaseColumns)

	poster, ok := GetProfile("poster")
	chk.True(ok)
	chk.GreaterOrEqual(poster.EfficiencyCeiling, 1.15)
	chk.Greater(float64(poster.LabelFontSize), float64(paper.LabelFontSize))

	_, ok = GetProfile("billboard")
	chk.False(ok)
	chk.Equal([]string{"paper", "poster"}, ProfileNames())
}

func TestGetProfile_ReturnsIndependentValues(t *testing.T) {
	a := MustProfile("paper")
	a.ReferenceHeadroom = 9
	b := MustProfile("paper")
	if b.ReferenceHeadroom != 1.25 {
		t.Fatalf("profile table was modified through a returned value")
	}

	want := b.ReferenceDashes[0]
	a.ReferenceDashes[0] = 99
	a.GridDashes[0] = 99
	a.Palette[0].Name = "changed"
	c := MustProfile("paper")
	if c.ReferenceDashes[0] != want || c.GridDashes[0] == 99 || c.Palette[0].Name == "changed" {
		t.Fatalf("profile slices are shared with returned values")
	}
}

func TestGetMetricMapping_Fallback(t *testing.T) {
	if got := GetMetricMapping("speedup").Label; got != "Speedup" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := GetMetricMapping("latency").Label; got != "latency" {
		t.Fatalf("expected raw key fallback, got %q", got)
	}
}
