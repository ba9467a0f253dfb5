package reedsolomon

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestDecodeReportSuccessNoCorrection(t *testing.T) {
	dec := NewDecoder(QRCodeField)
	received := []byte{0, 0, 0, 0, 0}
	report, err := dec.DecodeReport(received, 4)
	require.NoError(t, err)
	require.True(t, report.Success)
	require.Equal(t, 0, report.CorrectedCount)
	require.Empty(t, report.FailureReason)
}

func TestDecodeReportSuccessWithCorrection(t *testing.T) {
	dec := NewDecoder(QRCodeField)
	received := []byte{0, 0, 0, 0x07, 0}
	report, err := dec.DecodeReport(received, 4)
	require.NoError(t, err)
	require.True(t, report.Success)
	require.Equal(t, 1, report.CorrectedCount)
	require.Equal(t, []int{3}, report.CorrectedOffset)
}

func TestDecodeReportFailure(t *testing.T) {
	dec := NewDecoder(QRCodeField)
	received := []byte{0x11, 0x22, 0x33, 0, 0}
	report, err := dec.DecodeReport(received, 4)
	if err == nil {
		return // RS cannot always detect beyond-capacity patterns; acceptable.
	}
	require.False(t, report.Success)
	require.NotEmpty(t, report.FailureReason)
}

func TestMetricsRecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	dec := NewDecoder(QRCodeField).WithMetrics(metrics)

	_, err := dec.DecodeReport([]byte{0, 0, 0, 0x07, 0}, 4)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	found := false
	for _, fam := range families {
		if fam.GetName() == "reedsolomon_decodes_total" {
			found = true
		}
	}
	require.True(t, found, "decodes_total counter must be registered and gathered")
}

func TestNilMetricsIsInert(t *testing.T) {
	dec := NewDecoder(QRCodeField)
	require.NotPanics(t, func() {
		dec.metrics.observeSuccess(2)
		dec.metrics.observeFailure(reasonRPrevZero)
	})
}
