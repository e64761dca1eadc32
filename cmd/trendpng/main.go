package main

import (
	"os"

	"github.com/tiancaiamao/benchtrend/cli"
	"github.com/tiancaiamao/benchtrend/pngchart"
)

func main() {
	cmd := cli.NewCommand(cli.Variant{
		Use:         "trendpng",
		Short:       "Plot BenchmarkDotNet mean timings over time as a PNG image",
		DefaultDir:  cli.ExecutableDir(),
		InstallHint: "Install it via: go get gonum.org/v1/plot@v0.14.0 && go install ./cmd/trendpng",
		Status:      "Chart saved to %s",
	}, pngchart.New())
	os.Exit(cli.Execute(cmd))
}
