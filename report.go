package reedsolomon

// DecodeReport summarizes one Decode call: the symbol counts involved, the
// outcome, and — on failure — the reason. It is produced by
// (*Decoder).DecodeReport and by the rsdecode-eval CLI; the core Decode
// path never builds one, so attaching a report never changes decode
// semantics.
type DecodeReport struct {
	SymbolCount     int
	ParitySymbols   int
	Success         bool
	FailureReason   string
	CorrectedCount  int
	CorrectedOffset []int
}

// WithMetrics returns a copy of d that records outcomes to m. Passing nil
// detaches metrics (equivalent to plain Decode/DecodeReport calls).
func (d *Decoder) WithMetrics(m *Metrics) *Decoder {
	return &Decoder{field: d.field, metrics: m}
}

// DecodeReport decodes received exactly as Decode does, additionally
// returning a DecodeReport describing the call and — if a Metrics is
// attached via WithMetrics — recording the outcome.
func (d *Decoder) DecodeReport(received []byte, twoS int) (DecodeReport, error) {
	report := DecodeReport{SymbolCount: len(received), ParitySymbols: twoS}

	before := make([]byte, len(received))
	copy(before, received)

	err := d.Decode(received, twoS)
	if err != nil {
		report.Success = false
		if df, ok := err.(*DecodeFailure); ok {
			report.FailureReason = df.Reason
			d.metrics.observeFailure(df.Reason)
		}
		return report, err
	}

	report.Success = true
	for i := range received {
		if received[i] != before[i] {
			report.CorrectedOffset = append(report.CorrectedOffset, i)
		}
	}
	report.CorrectedCount = len(report.CorrectedOffset)
	d.metrics.observeSuccess(report.CorrectedCount)
	return report, nil
}
