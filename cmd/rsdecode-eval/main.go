// Command rsdecode-eval runs Monte Carlo trials of the reedsolomon decoder
// against synthetic codewords with randomly injected symbol errors, and
// reports the observed success rate per error count.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-fec/reedsolomon"
)

type fieldName string

const (
	fieldQR         fieldName = "qr"
	fieldDataMatrix fieldName = "datamatrix"
)

type trialKey struct {
	Field  fieldName
	Errors int
}

type agg struct {
	Runs      int
	Successes int
	DecTotal  time.Duration
}

type jsonRecord struct {
	Field     string  `json:"field"`
	Errors    int     `json:"errors"`
	Runs      int     `json:"runs"`
	Successes int     `json:"successes"`
	DecMS     int64   `json:"dec_ms_total"`
	SuccessPc float64 `json:"success_pct"`
}

func main() {
	var (
		runs      = flag.Int("runs", 10000, "trials per (field, error count)")
		n         = flag.Int("N", 255, "total codeword length (<=255)")
		twoS      = flag.Int("twoS", 32, "parity symbol count")
		errorsStr = flag.String("errors", "0,4,8,12,16,20", "comma-separated list of injected error counts")
		which     = flag.String("field", "all", "which field to run: qr|datamatrix|all")
		seed      = flag.Int64("seed", 42, "random seed")
		outPath   = flag.String("out", "docs/reports/rsdecode_eval_report.md", "output markdown report path")
	)
	flag.Parse()

	if *n <= 0 || *n > 255 {
		fatalf("invalid N=%d (must be in [1,255])", *n)
	}
	if *twoS < 0 || *twoS > *n {
		fatalf("invalid twoS=%d for N=%d", *twoS, *n)
	}
	errorCounts, err := parseInts(*errorsStr)
	if err != nil {
		fatalf("%v", err)
	}

	runQR := *which == "all" || *which == string(fieldQR)
	runDM := *which == "all" || *which == string(fieldDataMatrix)

	rng := rand.New(rand.NewSource(*seed))
	results := make(map[trialKey]*agg)

	fields := []struct {
		name  fieldName
		field *reedsolomon.Field
		run   bool
	}{
		{fieldQR, reedsolomon.QRCodeField, runQR},
		{fieldDataMatrix, reedsolomon.DataMatrixField, runDM},
	}

	for _, fl := range fields {
		if !fl.run {
			continue
		}
		dec := reedsolomon.NewDecoder(fl.field)
		for _, e := range errorCounts {
			key := trialKey{Field: fl.name, Errors: e}
			a := &agg{Runs: *runs}
			results[key] = a

			for run := 0; run < *runs; run++ {
				// Encoding is out of scope for this decoder: the all-zero
				// vector is always a valid codeword (every syndrome
				// vanishes), so it stands in for "some valid codeword" here.
				received := make([]byte, *n)
				injectErrors(rng, received, e)

				decStart := time.Now()
				_, decErr := dec.DecodeReport(received, *twoS)
				a.DecTotal += time.Since(decStart)
				if decErr == nil {
					a.Successes++
				}
			}
		}
	}

	if err := ensureDir(*outPath); err != nil {
		fatalf("%v", err)
	}
	ts := time.Now().Format("20060102_150405")
	jsonPath := strings.TrimSuffix(*outPath, ".md") + "_" + ts + ".json"
	mdPath := strings.TrimSuffix(*outPath, ".md") + "_" + ts + ".md"

	if err := writeJSON(jsonPath, results); err != nil {
		fatalf("write json: %v", err)
	}
	if err := writeMarkdown(mdPath, results); err != nil {
		fatalf("write md: %v", err)
	}
	fmt.Printf("Report written: %s\nJSON: %s\n", mdPath, jsonPath)
}

// injectErrors flips count distinct symbol positions in received to random
// non-original values.
func injectErrors(rng *rand.Rand, received []byte, count int) {
	if count <= 0 || count > len(received) {
		return
	}
	positions := rng.Perm(len(received))[:count]
	for _, p := range positions {
		orig := received[p]
		var v byte
		for {
			v = byte(rng.Intn(256))
			if v != orig {
				break
			}
		}
		received[p] = v
	}
}

func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		var v int
		if _, err := fmt.Sscanf(p, "%d", &v); err != nil {
			return nil, fmt.Errorf("bad error count %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}

func writeJSON(path string, res map[trialKey]*agg) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	jf, err := os.Create(path)
	if err != nil {
		return err
	}
	defer jf.Close()

	recs := make([]jsonRecord, 0, len(res))
	for k, v := range res {
		if v == nil || v.Runs == 0 {
			continue
		}
		recs = append(recs, jsonRecord{
			Field:     string(k.Field),
			Errors:    k.Errors,
			Runs:      v.Runs,
			Successes: v.Successes,
			DecMS:     v.DecTotal.Milliseconds(),
			SuccessPc: 100.0 * float64(v.Successes) / float64(v.Runs),
		})
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Field != recs[j].Field {
			return recs[i].Field < recs[j].Field
		}
		return recs[i].Errors < recs[j].Errors
	})

	enc := json.NewEncoder(jf)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Records []jsonRecord `json:"records"`
	}{Records: recs})
}

func writeMarkdown(path string, res map[trialKey]*agg) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fieldSet := map[fieldName]struct{}{}
	errorSet := map[int]struct{}{}
	for k := range res {
		fieldSet[k.Field] = struct{}{}
		errorSet[k.Errors] = struct{}{}
	}
	fields := make([]fieldName, 0, len(fieldSet))
	for fn := range fieldSet {
		fields = append(fields, fn)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	errs := make([]int, 0, len(errorSet))
	for e := range errorSet {
		errs = append(errs, e)
	}
	sort.Ints(errs)

	fmt.Fprintf(f, "# Reed-Solomon Decode Evaluation\n\n")
	fmt.Fprintf(f, "Generated: %s\n\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(f, "| Field | %s |\n", joinErrHeaders(errs))
	div := make([]string, 0, 1+len(errs))
	div = append(div, "---")
	for range errs {
		div = append(div, "---")
	}
	fmt.Fprintf(f, "|%s\n", strings.Join(div, "|"))
	for _, fn := range fields {
		fmt.Fprintf(f, "| %s ", strings.ToUpper(string(fn)))
		for _, e := range errs {
			a := res[trialKey{Field: fn, Errors: e}]
			if a == nil || a.Runs == 0 {
				fmt.Fprintf(f, "|  ")
				continue
			}
			fmt.Fprintf(f, "| %.2f ", 100.0*float64(a.Successes)/float64(a.Runs))
		}
		fmt.Fprintf(f, "|\n")
	}
	fmt.Fprintf(f, "\n---\n\nNotes:\n\n- Success is measured as Decode returning nil; beyond twoS/2 errors a nil return is not guaranteed to mean the original codeword was restored (see decoder_test.go for the exact property tested).\n")
	return nil
}

func joinErrHeaders(errs []int) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = fmt.Sprintf("e=%d", e)
	}
	return strings.Join(parts, " | ")
}
