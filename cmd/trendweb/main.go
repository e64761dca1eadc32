package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/tiancaiamao/benchtrend"
	"github.com/tiancaiamao/benchtrend/cli"
	"github.com/tiancaiamao/benchtrend/htmlchart"
)

const (
	maxUploadSize = 32 << 20

	installHint = "Install it via: go get github.com/go-echarts/go-echarts/v2@v2.7.0 && go install ./cmd/trendweb"
)

type server struct {
	dir       string
	chart     *htmlchart.Renderer
	logger    hclog.Logger
	now       func() time.Time
	maxUpload int64
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.mainHandle)
	mux.HandleFunc("/upload", s.uploadHandle)
	return mux
}

func (s *server) mainHandle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	final := benchtrend.LoadDataDir(s.dir, s.logger)
	if len(final) == 0 {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "No JSON files found in", s.dir)
		return
	}

	var page bytes.Buffer
	if err := s.chart.Render(&page, final); err != nil {
		s.logger.Error("render trends", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page.WriteTo(w)
}

func (s *server) uploadHandle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method should be POST", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxUpload))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, fmt.Sprintf("result file larger than %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	b, err := benchtrend.ParseReport(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	outfile := filepath.Join(s.dir, benchtrend.FileName(s.now(), b.Title))
	if err := os.WriteFile(outfile, body, 0o644); err != nil {
		s.logger.Error("store upload", "file", outfile, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.logger.Info("stored result file", "file", outfile, "benchmarks", len(b.Benchmarks))
	fmt.Fprintln(w, filepath.Base(outfile))
}

func newCommand() *cobra.Command {
	var (
		addr    string
		verbose bool
	)
	s := &server{chart: htmlchart.New(""), now: time.Now, maxUpload: maxUploadSize}
	cmd := &cobra.Command{
		Use:          "trendweb",
		Short:        "Serve the benchmark trend chart of a result directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.chart.Check(); err != nil {
				return fmt.Errorf("%w: %v\n%s", cli.ErrBackendUnavailable, err, installHint)
			}
			if err := os.MkdirAll(s.dir, 0o755); err != nil {
				return err
			}
			s.logger = cli.NewLogger("trendweb", cmd.ErrOrStderr(), verbose)
			s.logger.Info("listening", "addr", addr, "dir", s.dir)

			srv := &http.Server{
				Addr:              addr,
				Handler:           s.routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&s.dir, "dir", "data", "directory holding the *.json result files")
	cmd.Flags().StringVar(&addr, "addr", ":18081", "listen address")
	cmd.Flags().StringVar(&s.chart.AssetsHost, "assets-host", htmlchart.DefaultAssetsHost, "host serving echarts.min.js")
	cmd.Flags().StringVar(&s.chart.EchartsJS, "echarts-js", "", "local echarts.min.js to inline into the page")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log skipped files and other details")
	return cmd
}

func main() {
	os.Exit(cli.Execute(newCommand()))
}
