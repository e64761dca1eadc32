// Package htmlchart renders benchmark trends as an interactive echarts page.
package htmlchart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/tiancaiamao/benchtrend"
)

const (
	DefaultFilename   = "benchmark_trends.html"
	DefaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

	title = "Benchmark Trends"
)

type Renderer struct {
	// AssetsHost is where the page loads echarts.min.js from.
	AssetsHost string
	// EchartsJS, when set, is a local echarts.min.js that is inlined into
	// the page, so it renders without network access.
	EchartsJS string
}

func New(assetsHost string) *Renderer {
	if assetsHost == "" {
		assetsHost = DefaultAssetsHost
	}
	return &Renderer{AssetsHost: assetsHost}
}

func (r *Renderer) Kind() string { return "interactive HTML" }

func (r *Renderer) Filename() string { return DefaultFilename }

// Check renders a throwaway chart to make sure the echarts templates work.
func (r *Renderer) Check() error {
	if r.AssetsHost == "" {
		return errors.New("no echarts assets host configured")
	}
	sample := benchtrend.Trends{}
	sample.Add("sample", time.Unix(0, 0), 1)

	var buf bytes.Buffer
	if err := NewChart(sample, r.AssetsHost).Render(&buf); err != nil {
		return fmt.Errorf("go-echarts render: %w", err)
	}
	if !strings.Contains(buf.String(), "echarts.min.js") {
		return errors.New("go-echarts page does not reference echarts.min.js")
	}
	return nil
}

func (r *Renderer) Render(w io.Writer, final benchtrend.Trends) error {
	line := NewChart(final, r.AssetsHost)
	if r.EchartsJS == "" {
		return line.Render(w)
	}

	js, err := os.ReadFile(r.EchartsJS)
	if err != nil {
		return err
	}
	var page bytes.Buffer
	if err := line.Render(&page); err != nil {
		return err
	}
	inlined, err := inlineScript(page.Bytes(), r.AssetsHost+"echarts.min.js", js)
	if err != nil {
		return err
	}
	_, err = w.Write(inlined)
	return err
}

// inlineScript replaces the <script src=src> tag of page with the script
// itself.
func inlineScript(page []byte, src string, js []byte) ([]byte, error) {
	tag := []byte(`<script src="` + src + `"></script>`)
	if !bytes.Contains(page, tag) {
		return nil, fmt.Errorf("page has no script tag for %s", src)
	}
	js = bytes.ReplaceAll(js, []byte("</script"), []byte(`<\/script`))
	inline := make([]byte, 0, len(js)+len("<script></script>"))
	inline = append(inline, "<script>"...)
	inline = append(inline, js...)
	inline = append(inline, "</script>"...)
	return bytes.Replace(page, tag, inline, 1), nil
}

// NewChart builds a line chart with one series per benchmark.
func NewChart(final benchtrend.Trends, assetsHost string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  title,
			Width:      "1200px",
			Height:     "700px",
			AssetsHost: assetsHost,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Type: "scroll", Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "time", Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Mean(ns)", Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}, opts.DataZoom{Type: "inside"}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true), Name: "benchmark_trends"},
			},
		}),
	)

	for _, name := range final.Names() {
		oneCase := final[name]
		data := make([]opts.LineData, 0, len(oneCase))
		for _, p := range oneCase {
			data = append(data, opts.LineData{Value: []interface{}{p.Date.UnixMilli(), p.Mean}})
		}
		line.AddSeries(name, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))
	}
	return line
}
