package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/tiancaiamao/benchtrend"
	"github.com/tiancaiamao/benchtrend/cli"
)

// archive copies the result files of from into to, named after their title
// and run date. The modification time is kept so the copy charts at the same
// date. Files already archived are left alone.
func archive(from, to string, logger hclog.Logger) (copied, skipped int, err error) {
	files, err := benchtrend.ResultFiles(from)
	if err != nil {
		return 0, 0, err
	}
	if err := os.MkdirAll(to, 0o755); err != nil {
		return 0, 0, err
	}

	for _, path := range files {
		r, date, err := benchtrend.LoadResultFile(path)
		if err != nil {
			logger.Debug("skipping result file", "file", path, "error", err)
			continue
		}

		dst := filepath.Join(to, benchtrend.FileName(date, r.Title))
		if _, err := os.Stat(dst); err == nil {
			logger.Info("skip duplicated result", "file", path, "archived", dst)
			skipped++
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return copied, skipped, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return copied, skipped, err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return copied, skipped, err
		}
		if err := os.Chtimes(dst, date, date); err != nil {
			return copied, skipped, err
		}
		logger.Debug("archived result file", "file", path, "archived", dst)
		copied++
	}
	return copied, skipped, nil
}

func newCommand() *cobra.Command {
	var (
		from, to string
		verbose  bool
	)
	cmd := &cobra.Command{
		Use:          "trendarchive",
		Short:        "Keep a dated copy of the latest BenchmarkDotNet results for trend charts",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.NewLogger("trendarchive", cmd.ErrOrStderr(), verbose)
			copied, skipped, err := archive(from, to, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived %d result files into %s (%d already present)\n", copied, to, skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", filepath.Join("BenchmarkDotNet.Artifacts", "results"), "directory BenchmarkDotNet writes its JSON results to")
	cmd.Flags().StringVar(&to, "to", "data", "archive directory read by the trend charts")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every copied and skipped file")
	return cmd
}

func main() {
	os.Exit(cli.Execute(newCommand()))
}
