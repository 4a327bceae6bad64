package main

import (
	"github.com/chiennifer/ConsHMM/util"
)

func init() {
	util.FlagParse("emissions-tsv species-yaml out-tsv",
		"Apply the matched-probability correction and the phylogenetic "+
			"column ordering to an emissions table, writing the result as "+
			"TSV. The output is what emissions-heatmap renders, for "+
			"inspection or downstream use; do not feed it back in, the "+
			"correction must be applied exactly once.")
	util.AssertNArg(3)
}

func main() {
	table := util.EmissionsTable(util.Arg(0))
	species := util.SpeciesMap(util.Arg(1))

	util.Assert(table.CorrectMatched(), "Could not correct matched columns")
	util.Assert(table.Reorder(species), "Could not order columns")

	f := util.CreateFile(util.Arg(2))
	util.Assert(table.WriteTSV(f), "Could not write '%s'", util.Arg(2))
	util.Assert(f.Close())
}
