package emissions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrectMatched(t *testing.T) {
	table, err := ReadTable(strings.NewReader(smallTable))
	require.NoError(t, err)
	require.NoError(t, table.CorrectMatched())

	// Matched columns become matched x aligned, row by row.
	assert.InDelta(t, 0.8*0.9, table.Data.At(0, 1), 1e-12)
	assert.InDelta(t, 0.1*0.2, table.Data.At(1, 1), 1e-12)
	assert.InDelta(t, 0.5*0.4, table.Data.At(0, 3), 1e-12)
	assert.InDelta(t, 0.6*0.3, table.Data.At(1, 3), 1e-12)

	// Aligned columns are untouched.
	assert.InDelta(t, 0.9, table.Data.At(0, 0), 1e-12)
	assert.InDelta(t, 0.3, table.Data.At(1, 2), 1e-12)
}

func TestCorrectMatchedMissingAligned(t *testing.T) {
	in := "state\thg38_aligned\tmm10_matched\n1\t0.5\t0.5\n"
	table, err := ReadTable(strings.NewReader(in))
	require.NoError(t, err)

	err = table.CorrectMatched()
	require.ErrorIs(t, err, ErrIncompletePair)
	assert.ErrorContains(t, err, "mm10_matched")
}

func TestCorrectMatchedAlignedOnlyGenome(t *testing.T) {
	// An aligned column without a matched counterpart passes through.
	in := "state\thg38_aligned\thg38_matched\tmm10_aligned\n1\t0.5\t0.5\t0.7\n"
	table, err := ReadTable(strings.NewReader(in))
	require.NoError(t, err)
	require.NoError(t, table.CorrectMatched())
	assert.InDelta(t, 0.7, table.Data.At(0, 2), 1e-12)
}
