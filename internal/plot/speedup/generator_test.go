package speedup

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"psrs-report/internal/plot/mappings"
	"psrs-report/internal/table"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const scenario = "n,p1,p2,p4,p8\n10000,1,1.9,3.6,6.1\n1000000,1,1.95,3.8,7.0\n"

func newTestGenerator() *SpeedupPlotGenerator {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewSpeedupPlotGenerator(mappings.MustProfile(mappings.DefaultProfile), logger)
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results_speedup.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPreparePlotData_Scenario(t *testing.T) {
	chk := require.New(t)
	st, err := table.LoadSpeedupTable(writeInput(t, scenario))
	chk.NoError(err)

	data := newTestGenerator().preparePlotData(st)

	chk.Equal([]int{1, 2, 4, 8}, data.Processors)
	chk.GreaterOrEqual(data.ReferenceLimit, 8.75)
	chk.InDelta(8.75, data.ReferenceLimit, 1e-9)

	chk.Len(data.Series, 2)
	chk.Equal("10K", data.Series[0].Label)
	chk.Equal("1M", data.Series[1].Label)
	chk.Equal(mappings.SeriesPalette[0].Name, data.Series[0].Style.Name)
	chk.Equal(mappings.SeriesPalette[1].Name, data.Series[1].Style.Name)

	last := data.Series[1].Points[3]
	chk.Equal(8.0, last.X)
	chk.Equal(7.0, last.Y)
}

func TestPreparePlotData_PaletteCyclesPastSixSizes(t *testing.T) {
	chk := require.New(t)
	content := "n,p1,p2\n"
	for i := 1; i <= 7; i++ {
		content += fmt.Sprintf("%d000,1,1.5\n", i)
	}
	st, err := table.LoadSpeedupTable(writeInput(t, content))
	chk.NoError(err)

	data := newTestGenerator().preparePlotData(st)
	chk.Len(data.Series, 7)
	chk.Equal(data.Series[0].Style.Name, data.Series[6].Style.Name)
}

func TestGenerate_WritesPNG(t *testing.T) {
	chk := require.New(t)
	out := filepath.Join(t.TempDir(), "plots", "plot_speedup_processors.png")

	path, err := newTestGenerator().Generate(PlotOptions{
		InputPath:  writeInput(t, scenario),
		OutputPath: out,
	})
	chk.NoError(err)
	chk.Equal(out, path)

	f, err := os.Open(out)
	chk.NoError(err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	chk.NoError(err)
	chk.Equal(2700, cfg.Width)
	chk.Equal(1800, cfg.Height)
}

func TestGenerate_ShortRowIsParseError(t *testing.T) {
	chk := require.New(t)
	out := filepath.Join(t.TempDir(), "out.png")

	_, err := newTestGenerator().Generate(PlotOptions{
		InputPath:  writeInput(t, "n,p1,p2\n1000,1\n"),
		OutputPath: out,
	})
	var parseErr *table.ParseError
	chk.True(errors.As(err, &parseErr), "expected *table.ParseError, got %v", err)
	chk.NoFileExists(out)
}

func TestGenerate_MissingInput(t *testing.T) {
	_, err := newTestGenerator().Generate(PlotOptions{
		InputPath:  filepath.Join(t.TempDir(), "absent.txt"),
		OutputPath: filepath.Join(t.TempDir(), "out.png"),
	})
	require.ErrorIs(t, err, table.ErrNotFound)
}
