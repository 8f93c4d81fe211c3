// Package charts renders aggregation results as interactive echarts pages.
package charts

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"

	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

const (
	width  = "900px"
	height = "500px"
)

var palette = []string{"#5470C6", "#91CC75", "#FAC858", "#EE6666", "#73C0DE", "#3BA272"}

// Chart is one named bar chart; Name doubles as the output file stem.
type Chart struct {
	Name string
	Bar  *charts.Bar
}

func newBar(title, subtitle, color string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  width,
			Height: height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithColorsOpts(opts.Colors{color}),
	)
	return bar
}

func barData(values []int) []opts.BarData {
	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v}
	}
	return data
}

func histogramBar(title, subtitle, color string, labels []string, counts []int) *charts.Bar {
	bar := newBar(title, subtitle, color)
	bar.SetXAxis(labels).
		AddSeries("draws", barData(counts)).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:     opts.Bool(true),
				Position: "top",
			}),
		)
	return bar
}

func Frequency(t drawstats.FrequencyTable, subtitle string) *charts.Bar {
	labels := make([]string, 0, drawstats.MaxNumber)
	counts := make([]int, 0, drawstats.MaxNumber)
	for n := drawstats.MinNumber; n <= drawstats.MaxNumber; n++ {
		labels = append(labels, strconv.Itoa(n))
		counts = append(counts, t[n])
	}
	bar := newBar("Number frequency", subtitle, palette[0])
	bar.SetXAxis(labels).AddSeries("appearances", barData(counts))
	return bar
}

func OddEven(h *drawstats.RatioHistogram, subtitle string) *charts.Bar {
	return histogramBar("Odd:even ratio", subtitle, palette[1], h.Labels, h.Counts)
}

func HighLow(h *drawstats.RatioHistogram, subtitle string) *charts.Bar {
	return histogramBar("High:low ratio (cutoff "+strconv.Itoa(h.Cutoff)+")", subtitle, palette[2], h.Labels, h.Counts)
}

func AC(h *drawstats.ACHistogram, subtitle string) *charts.Bar {
	return histogramBar("AC value (optimal "+h.OptimalRange.String()+")", subtitle, palette[3], h.Labels, h.Counts)
}

func Sum(h *drawstats.SumHistogram, subtitle string) *charts.Bar {
	return histogramBar("Number sum", subtitle, palette[4], h.Labels, h.Counts)
}

func Consecutive(h *drawstats.RatioHistogram, subtitle string) *charts.Bar {
	return histogramBar("Consecutive pairs", subtitle, palette[5], h.Labels, h.Counts)
}

// All returns the charts of report in display order.
func All(report *drawstats.Report, subtitle string) []Chart {
	return []Chart{
		{Name: "frequency", Bar: Frequency(report.Frequency, subtitle)},
		{Name: "odd_even", Bar: OddEven(report.OddEvenStats, subtitle)},
		{Name: "high_low", Bar: HighLow(report.HighLowStats, subtitle)},
		{Name: "ac", Bar: AC(report.ACValueStats, subtitle)},
		{Name: "sum", Bar: Sum(report.SumStats, subtitle)},
		{Name: "consecutive", Bar: Consecutive(report.PatternAnalysis.Consecutive, subtitle)},
	}
}

// WritePage renders every chart of report into a single HTML page.
func WritePage(w io.Writer, title string, report *drawstats.Report, subtitle string) error {
	page := components.NewPage()
	page.PageTitle = title
	for _, c := range All(report, subtitle) {
		page.AddCharts(c.Bar)
	}
	return page.Render(w)
}

// WriteDir writes one <name>.html file per chart plus index.html into dir
// and returns the written file names.
func WriteDir(dir string, title string, report *drawstats.Report, subtitle string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create chart directory")
	}

	write := func(name string, render func(io.Writer) error) error {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return errors.Wrap(err, "create chart file")
		}
		defer f.Close()
		return errors.Wrapf(render(f), "render %s", name)
	}

	var names []string
	for _, c := range All(report, subtitle) {
		name := c.Name + ".html"
		if err := write(name, c.Bar.Render); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := write("index.html", func(w io.Writer) error {
		return WritePage(w, title, report, subtitle)
	}); err != nil {
		return nil, err
	}
	return append(names, "index.html"), nil
}
