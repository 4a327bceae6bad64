package emissions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Columns arrive interleaved and unsorted; species ranks are deliberately
// non-contiguous.
const shuffledTable = "state\tmm10_matched\thg38_aligned\trheMac8_aligned\tmm10_aligned\thg38_matched\trheMac8_matched\n" +
	"1\t0.1\t0.2\t0.3\t0.4\t0.5\t0.6\n"

var threeSpecies = SpeciesMap{
	"hg38":    {CommonName: "Human", Group: "Primate", DistanceToHuman: 0},
	"rheMac8": {CommonName: "Rhesus", Group: "Primate", DistanceToHuman: 7},
	"mm10":    {CommonName: "Mouse", Group: "Rodent", DistanceToHuman: 60},
}

func TestReorder(t *testing.T) {
	table, err := ReadTable(strings.NewReader(shuffledTable))
	require.NoError(t, err)
	require.NoError(t, table.Reorder(threeSpecies))

	// Aligned block first, then matched, ascending rank within each.
	want := []Column{
		{"hg38", Aligned},
		{"rheMac8", Aligned},
		{"mm10", Aligned},
		{"hg38", Matched},
		{"rheMac8", Matched},
		{"mm10", Matched},
	}
	assert.Equal(t, want, table.Columns)

	// Headers become common names, and group annotations come along.
	assert.Equal(t,
		[]string{"Human", "Rhesus", "Mouse", "Human", "Rhesus", "Mouse"},
		table.Names)
	assert.Equal(t,
		[]string{"Primate", "Primate", "Rodent", "Primate", "Primate", "Rodent"},
		table.Groups)

	// Values moved with their columns.
	assert.InDelta(t, 0.2, table.Data.At(0, 0), 1e-12) // hg38_aligned
	assert.InDelta(t, 0.3, table.Data.At(0, 1), 1e-12) // rheMac8_aligned
	assert.InDelta(t, 0.4, table.Data.At(0, 2), 1e-12) // mm10_aligned
	assert.InDelta(t, 0.5, table.Data.At(0, 3), 1e-12) // hg38_matched
	assert.InDelta(t, 0.6, table.Data.At(0, 4), 1e-12) // rheMac8_matched
	assert.InDelta(t, 0.1, table.Data.At(0, 5), 1e-12) // mm10_matched
}

func TestReorderIsBijection(t *testing.T) {
	table, err := ReadTable(strings.NewReader(shuffledTable))
	require.NoError(t, err)
	before := append([]Column(nil), table.Columns...)

	require.NoError(t, table.Reorder(threeSpecies))

	assert.ElementsMatch(t, before, table.Columns)
}

func TestReorderMissingAnnotation(t *testing.T) {
	in := "state\tchimp_aligned\tchimp_matched\n1\t0.5\t0.5\n"
	table, err := ReadTable(strings.NewReader(in))
	require.NoError(t, err)

	err = table.Reorder(threeSpecies)
	require.ErrorIs(t, err, ErrMissingAnnotation)
	assert.ErrorContains(t, err, "chimp")
}

func TestReorderDuplicateRank(t *testing.T) {
	table, err := ReadTable(strings.NewReader(shuffledTable))
	require.NoError(t, err)

	sp := SpeciesMap{
		"hg38":    {CommonName: "Human", Group: "Primate", DistanceToHuman: 0},
		"rheMac8": {CommonName: "Rhesus", Group: "Primate", DistanceToHuman: 7},
		"mm10":    {CommonName: "Mouse", Group: "Rodent", DistanceToHuman: 7},
	}
	err = table.Reorder(sp)
	assert.ErrorIs(t, err, ErrDuplicateRank)
}

// The end-to-end contract on a 2-state, 2-genome table: genome A at rank 0
// with aligned 0.4 and matched 0.5, genome B at rank 1 with aligned 0.9 and
// matched 0.8.
func TestCorrectAndReorderScenario(t *testing.T) {
	in := "state\tB_matched\tA_aligned\tB_aligned\tA_matched\n" +
		"1\t0.8\t0.4\t0.9\t0.5\n" +
		"2\t0.8\t0.4\t0.9\t0.5\n"
	table, err := ReadTable(strings.NewReader(in))
	require.NoError(t, err)

	sp := SpeciesMap{
		"A": {CommonName: "A", Group: "G", DistanceToHuman: 0},
		"B": {CommonName: "B", Group: "G", DistanceToHuman: 1},
	}
	require.NoError(t, table.CorrectMatched())
	require.NoError(t, table.Reorder(sp))

	want := []Column{
		{"A", Aligned},
		{"B", Aligned},
		{"A", Matched},
		{"B", Matched},
	}
	assert.Equal(t, want, table.Columns)
	for row := 0; row < 2; row++ {
		assert.InDelta(t, 0.20, table.Data.At(row, 2), 1e-12)
		assert.InDelta(t, 0.72, table.Data.At(row, 3), 1e-12)
	}
}
