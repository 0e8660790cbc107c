package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truelab-connectivity/internal/domain"
)

func TestSummarize_CountsBothPartitions(t *testing.T) {
	rows := []domain.ConnectivityRow{
		{State: "TX", CustomerType: "Clinic", Status: domain.StatusActive},
		{State: "TX", CustomerType: "Clinic", Status: domain.StatusInactive},
	}

	summary := Summarize(rows)
	require.Len(t, summary, 1)
	assert.Equal(t, domain.SummaryRow{
		State:         "TX",
		CustomerType:  "Clinic",
		ActiveCount:   1,
		InactiveCount: 1,
		TotalCount:    2,
	}, summary[0])
}

func TestSummarize_MissingPartitionFillsZero(t *testing.T) {
	rows := []domain.ConnectivityRow{
		{State: "TX", CustomerType: "Clinic", Status: domain.StatusActive},
		{State: "TX", CustomerType: "Clinic", Status: domain.StatusActive},
		{State: "KA", CustomerType: "Hospital", Status: domain.StatusInactive},
	}

	summary := Summarize(rows)
	require.Len(t, summary, 2)

	assert.Equal(t, 2, summary[0].ActiveCount)
	assert.Equal(t, 0, summary[0].InactiveCount)
	assert.Equal(t, 2, summary[0].TotalCount)

	assert.Equal(t, "KA", summary[1].State)
	assert.Equal(t, 0, summary[1].ActiveCount)
	assert.Equal(t, 1, summary[1].InactiveCount)
	assert.Equal(t, 1, summary[1].TotalCount)
}

func TestSummarize_BlankKeysGroupTogether(t *testing.T) {
	rows := []domain.ConnectivityRow{
		{State: "", CustomerType: "", Status: domain.StatusInactive},
		{State: "", CustomerType: "", Status: domain.StatusInactive},
	}

	summary := Summarize(rows)
	require.Len(t, summary, 1)
	assert.Equal(t, 2, summary[0].InactiveCount)
	assert.Equal(t, 2, summary[0].TotalCount)
}

func TestSummarize_TotalMatchesRowCountPerPair(t *testing.T) {
	rows := []domain.ConnectivityRow{
		{State: "TX", CustomerType: "Clinic", Status: domain.StatusActive},
		{State: "TX", CustomerType: "Clinic", Status: domain.StatusInactive},
		{State: "TX", CustomerType: "Hospital", Status: domain.StatusActive},
		{State: "KA", CustomerType: "Clinic", Status: domain.StatusInactive},
		{State: "TX", CustomerType: "Clinic", Status: domain.StatusActive},
	}

	want := map[[2]string]int{}
	for _, row := range rows {
		want[[2]string{row.State, row.CustomerType}]++
	}

	summary := Summarize(rows)
	require.Len(t, summary, len(want))
	for _, sr := range summary {
		assert.Equal(t, want[[2]string{sr.State, sr.CustomerType}], sr.TotalCount,
			"pair (%s, %s)", sr.State, sr.CustomerType)
		assert.Equal(t, sr.ActiveCount+sr.InactiveCount, sr.TotalCount)
	}
}
