package main

import (
	"os"
	"path/filepath"

	"github.com/tiancaiamao/benchtrend/cli"
	"github.com/tiancaiamao/benchtrend/htmlchart"
)

func main() {
	r := htmlchart.New("")
	cmd := cli.NewCommand(cli.Variant{
		Use:         "trendhtml",
		Short:       "Plot BenchmarkDotNet mean timings over time as an interactive HTML chart",
		DefaultDir:  filepath.Join(cli.ExecutableDir(), "BenchmarkDotNet.Artifacts", "results"),
		InstallHint: "Install it via: go get github.com/go-echarts/go-echarts/v2@v2.7.0 && go install ./cmd/trendhtml",
		Status:      "Written interactive HTML → %s",
	}, r)
	cmd.Flags().StringVar(&r.AssetsHost, "assets-host", htmlchart.DefaultAssetsHost, "host serving echarts.min.js")
	cmd.Flags().StringVar(&r.EchartsJS, "echarts-js", "", "local echarts.min.js to inline, making the page self-contained")
	os.Exit(cli.Execute(cmd))
}
