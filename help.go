package benchtrend

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// ResultFiles lists the *.json files of dir, hidden files excluded.
func ResultFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	res := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		res = append(res, filepath.Join(dir, name))
	}
	sort.Strings(res)
	return res, nil
}

// LoadResultFile decodes one result file. The returned time is the file
// modification time, which stands in for the run date.
func LoadResultFile(path string) (*Report, time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	if !fi.Mode().IsRegular() {
		return nil, time.Time{}, fmt.Errorf("%s: not a regular file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, time.Time{}, err
	}
	r, err := ParseReport(data)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return r, fi.ModTime(), nil
}

// LoadDataDir collects the trends of every result file in dir. Files that
// cannot be read or decoded are skipped.
func LoadDataDir(dir string, logger hclog.Logger) Trends {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	final := make(Trends)
	files, err := ResultFiles(dir)
	if err != nil {
		logger.Debug("cannot list result directory", "dir", dir, "error", err)
		return final
	}

	for _, path := range files {
		r, date, err := LoadResultFile(path)
		if err != nil {
			logger.Debug("skipping result file", "file", path, "error", err)
			continue
		}
		n := final.AddReport(date, r)
		logger.Debug("loaded result file", "file", path, "date", date, "points", n, "skipped", r.Skipped)
	}
	final.Sort()
	return final
}

// FileName names a stored result file after its report title and date.
func FileName(date time.Time, title string) string {
	title = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, title)
	title = strings.Trim(title, "._")
	if title == "" {
		title = "results"
	}
	return title + "_" + date.Format("20060102-150405") + ".json"
}
