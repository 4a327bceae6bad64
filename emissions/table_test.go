package emissions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallTable = "state\thg38_aligned\thg38_matched\tmm10_aligned\tmm10_matched\n" +
	"1\t0.9\t0.8\t0.4\t0.5\n" +
	"2\t0.2\t0.1\t0.3\t0.6\n"

func TestReadTable(t *testing.T) {
	table, err := ReadTable(strings.NewReader(smallTable))
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, table.States)
	assert.Equal(t, []Column{
		{"hg38", Aligned},
		{"hg38", Matched},
		{"mm10", Aligned},
		{"mm10", Matched},
	}, table.Columns)
	assert.Equal(t,
		[]string{"hg38_aligned", "hg38_matched", "mm10_aligned", "mm10_matched"},
		table.Names)

	assert.InDelta(t, 0.9, table.Data.At(0, 0), 1e-12)
	assert.InDelta(t, 0.6, table.Data.At(1, 3), 1e-12)

	assert.Equal(t, 2, table.SplitIndex())
	assert.Equal(t, []string{"hg38", "mm10"}, table.Genomes())
}

func TestReadTableMalformedColumn(t *testing.T) {
	for _, header := range []string{
		"state\thg38_aligned\thg38",
		"state\thg38_aligned\thg38_unaligned",
		"state\t_aligned",
		"state\tmatched",
	} {
		in := header + "\n1" + strings.Repeat("\t0.5", strings.Count(header, "\t")) + "\n"
		_, err := ReadTable(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrMalformedColumn, "header %q", header)
	}
}

func TestReadTableGenomeWithUnderscores(t *testing.T) {
	in := "state\tcanFam_3_aligned\tcanFam_3_matched\n1\t0.5\t0.5\n"
	table, err := ReadTable(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, Column{"canFam_3", Aligned}, table.Columns[0])
	assert.Equal(t, "canFam_3_matched", table.Columns[1].FullName())
}

func TestReadTableBadValues(t *testing.T) {
	_, err := ReadTable(strings.NewReader("state\thg38_aligned\n1\t1.5\n"))
	assert.ErrorContains(t, err, "out of [0,1]")

	_, err = ReadTable(strings.NewReader("state\thg38_aligned\n1\tzero\n"))
	assert.ErrorContains(t, err, "expected probability")
}

func TestReadTableDuplicateColumn(t *testing.T) {
	in := "state\thg38_aligned\thg38_aligned\n1\t0.5\t0.5\n"
	_, err := ReadTable(strings.NewReader(in))
	assert.ErrorContains(t, err, "appears twice")
}

func TestReadTableRaggedRow(t *testing.T) {
	in := "state\thg38_aligned\thg38_matched\n1\t0.5\n"
	_, err := ReadTable(strings.NewReader(in))
	assert.Error(t, err)
}

func TestWriteTSVRoundTrip(t *testing.T) {
	table, err := ReadTable(strings.NewReader(smallTable))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, table.WriteTSV(&buf))

	again, err := ReadTable(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, table.States, again.States)
	assert.Equal(t, table.Columns, again.Columns)
	assert.True(t, table.Data.RawMatrix().Cols == again.Data.RawMatrix().Cols)
}
