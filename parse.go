package benchtrend

import (
	"bytes"
	"encoding/json"
)

type rawReport struct {
	Title      json.RawMessage
	Benchmarks json.RawMessage
}

// ParseReport decodes a result file leniently. Bare NaN and Infinity
// tokens, which BenchmarkDotNet writes for undefined statistics, read as
// null, and a benchmark entry that does not decode is dropped on its own
// instead of taking the whole file with it.
func ParseReport(data []byte) (*Report, error) {
	data = nullNonFinite(data)

	var raw rawReport
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	r := &Report{}
	if len(raw.Title) > 0 {
		// A title that is not a string only costs the title.
		_ = json.Unmarshal(raw.Title, &r.Title)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(orNull(raw.Benchmarks), &entries); err != nil {
		return nil, err
	}
	r.Benchmarks = make([]Benchmark, 0, len(entries))
	for _, e := range entries {
		var b Benchmark
		if err := json.Unmarshal(e, &b); err != nil {
			r.Skipped++
			continue
		}
		r.Benchmarks = append(r.Benchmarks, b)
	}
	return r, nil
}

func orNull(m json.RawMessage) json.RawMessage {
	if len(m) == 0 {
		return json.RawMessage("null")
	}
	return m
}

var nonFinite = [][]byte{[]byte("-Infinity"), []byte("Infinity"), []byte("NaN")}

// nullNonFinite rewrites NaN, Infinity and -Infinity outside of strings to
// null. data is returned untouched when it holds none of them.
func nullNonFinite(data []byte) []byte {
	if !bytes.Contains(data, []byte("NaN")) && !bytes.Contains(data, []byte("Infinity")) {
		return data
	}

	out := make([]byte, 0, len(data))
	inString, escaped := false, false
	for i := 0; i < len(data); {
		c := data[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			out = append(out, c)
			i++
			continue
		}
		if c == '"' {
			inString = true
			out = append(out, c)
			i++
			continue
		}
		if n := nonFiniteAt(data, i); n > 0 {
			out = append(out, "null"...)
			i += n
			continue
		}
		out = append(out, c)
		i++
	}
	return out
}

func nonFiniteAt(data []byte, i int) int {
	if i > 0 && isWordByte(data[i-1]) {
		return 0
	}
	for _, tok := range nonFinite {
		end := i + len(tok)
		if !bytes.HasPrefix(data[i:], tok) {
			continue
		}
		if end < len(data) && isWordByte(data[end]) {
			return 0
		}
		return len(tok)
	}
	return 0
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '.'
}
