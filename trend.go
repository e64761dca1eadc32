package benchtrend

import (
	"sort"
	"time"
)

type Point struct {
	Date time.Time
	Mean float64
}

// Series holds the observations of one benchmark.
type Series []Point

func (s Series) Len() int {
	return len(s)
}

func (s Series) Less(i, j int) bool {
	return s[i].Date.Before(s[j].Date)
}

func (s Series) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Trends maps a benchmark name to its series. A name is only present once
// it has at least one point.
type Trends map[string]Series

func (t Trends) Add(name string, date time.Time, mean float64) {
	t[name] = append(t[name], Point{Date: date, Mean: mean})
}

// AddReport appends every benchmark of r that has a mean, dated at date.
// It returns the number of points added.
func (t Trends) AddReport(date time.Time, r *Report) int {
	added := 0
	for i := range r.Benchmarks {
		b := &r.Benchmarks[i]
		mean, ok := b.Mean()
		if !ok {
			continue
		}
		t.Add(b.Name(), date, mean)
		added++
	}
	return added
}

// Sort orders every series by date. Points with the same date keep their
// insertion order.
func (t Trends) Sort() {
	for _, s := range t {
		sort.Stable(s)
	}
}

func (t Trends) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Points is the total number of points over all series.
func (t Trends) Points() int {
	n := 0
	for _, s := range t {
		n += len(s)
	}
	return n
}
