package benchtrend

// UnknownName is used for benchmarks that carry none of the name fields.
const UnknownName = "<unknown>"

// Report is a BenchmarkDotNet JSON export.
type Report struct {
	Title      string
	Benchmarks []Benchmark

	// Skipped counts benchmark entries that could not be decoded.
	Skipped int `json:"-"`
}

type Benchmark struct {
	MethodTitle string
	DisplayInfo string
	FullName    string
	Statistics  *Statistics
}

type Statistics struct {
	Mean *float64
}

// Name returns the first non-empty label of the benchmark.
func (b *Benchmark) Name() string {
	for _, s := range []string{b.MethodTitle, b.DisplayInfo, b.FullName} {
		if s != "" {
			return s
		}
	}
	return UnknownName
}

func (b *Benchmark) Mean() (float64, bool) {
	if b.Statistics == nil || b.Statistics.Mean == nil {
		return 0, false
	}
	return *b.Statistics.Mean, true
}
