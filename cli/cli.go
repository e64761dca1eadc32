// Package cli holds the command shared by the trend chart binaries: check the
// charting backend, load a result directory, render one artifact.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/tiancaiamao/benchtrend"
)

var ErrBackendUnavailable = errors.New("charting backend unavailable")

// Renderer turns trends into a chart artifact.
type Renderer interface {
	// Check reports whether the charting backend can be used. It must not
	// touch the filesystem.
	Check() error
	Filename() string
	Kind() string
	Render(w io.Writer, final benchtrend.Trends) error
}

// Variant describes one chart binary.
type Variant struct {
	Use   string
	Short string
	// DefaultDir is the result directory used when --dir is not given.
	DefaultDir string
	// InstallHint is printed when the backend check fails.
	InstallHint string
	// Status formats the line printed once the chart is written; its only
	// verb is the chart path. Empty means "Written <kind> → <path>".
	Status string
}

type options struct {
	dir     string
	output  string
	open    bool
	verbose bool
}

var openFile = browser.OpenFile

func NewCommand(v Variant, r Renderer) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:          v.Use,
		Short:        v.Short,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, r, &o)
		},
	}
	cmd.Flags().StringVar(&o.dir, "dir", v.DefaultDir, "directory holding the *.json result files")
	cmd.Flags().StringVarP(&o.output, "output", "o", r.Filename(), "path of the chart to write")
	cmd.Flags().BoolVar(&o.open, "open", true, "open the chart once it is written")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "log skipped files and other details")
	return cmd
}

func run(cmd *cobra.Command, v Variant, r Renderer, o *options) error {
	if err := r.Check(); err != nil {
		return fmt.Errorf("%w: %v\n%s", ErrBackendUnavailable, err, v.InstallHint)
	}

	logger := NewLogger("benchtrend", cmd.ErrOrStderr(), o.verbose)
	out := cmd.OutOrStdout()

	final := benchtrend.LoadDataDir(o.dir, logger)
	if len(final) == 0 {
		fmt.Fprintln(out, "No JSON files found in", o.dir)
		return nil
	}
	logger.Debug("trends loaded", "benchmarks", len(final), "points", final.Points())

	if err := writeChart(o.output, r, final); err != nil {
		return err
	}
	status := v.Status
	if status == "" {
		status = "Written " + r.Kind() + " → %s"
	}
	fmt.Fprintf(out, status+"\n", o.output)

	if o.open {
		if err := openFile(o.output); err != nil {
			logger.Warn("cannot open chart", "path", o.output, "error", err)
		}
	}
	return nil
}

func writeChart(path string, r Renderer, final benchtrend.Trends) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Render(f, final); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

// NewLogger returns an hclog logger writing to w, at debug level when verbose.
func NewLogger(name string, w io.Writer, verbose bool) hclog.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  level,
		Output: w,
	})
}

// ExecutableDir is the directory of the running binary, or "." when it
// cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// Execute runs cmd and returns the process exit code.
func Execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
