package pngchart

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiancaiamao/benchtrend"
)

func TestRender(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	final := benchtrend.Trends{}
	final.Add("Foo", t1, 100)
	final.Add("Foo", t1.Add(24*time.Hour), 120)
	final.Add("Bar", t1.Add(12*time.Hour), 80)

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, final))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, widthPx, img.Bounds().Dx())
	assert.Equal(t, heightPx, img.Bounds().Dy())
}

func TestNewPlot(t *testing.T) {
	final := benchtrend.Trends{}
	final.Add("Single", time.Unix(1700000000, 0), 5)

	pl, err := (&Renderer{}).NewPlot(final)
	require.NoError(t, err)
	assert.Equal(t, "Benchmark Trends", pl.Title.Text)
	assert.Equal(t, "Run Date", pl.X.Label.Text)
	assert.Equal(t, "Mean Time (ns)", pl.Y.Label.Text)
}

func TestCheck(t *testing.T) {
	assert.NoError(t, New().Check())
}
