package htmlchart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiancaiamao/benchtrend"
)

func TestRender(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	final := benchtrend.Trends{}
	final.Add("Foo", t1, 100)
	final.Add("Foo", t2, 120)
	final.Add("Bar", t2, 7.5)

	r := New("https://assets.example.com/")
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, final))

	page := buf.String()
	assert.Contains(t, page, "Benchmark Trends")
	assert.Contains(t, page, "https://assets.example.com/echarts.min.js")
	assert.Contains(t, page, `"name":"Foo"`)
	assert.Contains(t, page, `"name":"Bar"`)
	assert.Contains(t, page, "[1709287200000,100]")
	assert.Contains(t, page, "[1709373600000,120]")
	assert.Contains(t, page, `"type":"time"`)
}

func TestNewChartSeriesOrder(t *testing.T) {
	final := benchtrend.Trends{}
	for _, name := range []string{"c", "a", "b"} {
		final.Add(name, time.Unix(0, 0), 1)
	}
	line := NewChart(final, DefaultAssetsHost)
	require.Len(t, line.MultiSeries, 3)
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, want, line.MultiSeries[i].Name)
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, New("").Check())
	assert.Equal(t, DefaultAssetsHost, New("").AssetsHost)
	assert.Error(t, (&Renderer{}).Check())
}

func TestRenderInlinesEcharts(t *testing.T) {
	js := filepath.Join(t.TempDir(), "echarts.min.js")
	require.NoError(t, os.WriteFile(js, []byte("window.echarts={};</script>"), 0o644))
	final := benchtrend.Trends{}
	final.Add("Foo", time.Unix(0, 0), 1)

	r := New("https://assets.example.com/")
	r.EchartsJS = js
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, final))

	page := buf.String()
	assert.Contains(t, page, `<script>window.echarts={};<\/script></script>`)
	assert.NotContains(t, page, "https://assets.example.com/echarts.min.js")
	assert.Contains(t, page, `"name":"Foo"`)

	r.EchartsJS = filepath.Join(t.TempDir(), "missing.js")
	buf.Reset()
	assert.Error(t, r.Render(&buf, final))
	assert.Zero(t, buf.Len())
}

func TestInlineScriptNoTag(t *testing.T) {
	_, err := inlineScript([]byte("<html></html>"), "echarts.min.js", []byte("x"))
	assert.Error(t, err)
}
