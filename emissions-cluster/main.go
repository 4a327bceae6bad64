package main

import (
	"encoding/csv"
	"flag"

	"github.com/chiennifer/ConsHMM/cluster"
	"github.com/chiennifer/ConsHMM/util"
)

var (
	flagClusters = 0
	flagLinkage  = "average"
	flagMetric   = "euclidean"
	flagGobIt    = ""
)

func init() {
	flag.IntVar(&flagClusters, "clusters", flagClusters,
		"The number of flat clusters to cut the dendrogram into. With 0, "+
			"the clusters file holds a single row listing every state in "+
			"optimal leaf order.")
	flag.StringVar(&flagLinkage, "linkage", flagLinkage,
		"The linkage used for row clustering: average, single or complete.")
	flag.StringVar(&flagMetric, "metric", flagMetric,
		"The distance between row vectors: euclidean or manhattan.")
	flag.StringVar(&flagGobIt, "gobit", flagGobIt,
		"If set, state distances will be cached to the file given, then "+
			"emissions-cluster will quit.")

	util.FlagUse("verbose", "quiet")
	util.FlagParse(
		"(emissions-tsv species-yaml | state-distances-gob) out-tree.nwk "+
			"out-clusters.csv",
		"Cluster the states of an emissions table, writing the dendrogram "+
			"as a newick tree and the flat clusters as CSV, one row per "+
			"cluster in optimal leaf order. A distance cache written with "+
			"-gobit may stand in for the emissions and species inputs.")
	if len(flagGobIt) > 0 {
		util.AssertNArg(2)
	} else if util.NArg() != 3 && util.NArg() != 4 {
		util.Usage()
	}
}

func main() {
	if len(flagGobIt) > 0 {
		dists := stateDists(util.Arg(0), util.Arg(1))
		f := util.CreateFile(flagGobIt)
		util.Assert(dists.WriteGob(f), "Could not cache distances")
		util.Assert(f.Close())
		return
	}

	var dists *cluster.Dists
	var treePath, csvPath string
	if util.NArg() == 3 {
		f := util.OpenFile(util.Arg(0))
		var err error
		dists, err = cluster.ReadDistsGob(f)
		util.Assert(err, "Could not decode distances '%s'", util.Arg(0))
		util.Assert(f.Close())
		treePath, csvPath = util.Arg(1), util.Arg(2)
	} else {
		dists = stateDists(util.Arg(0), util.Arg(1))
		treePath, csvPath = util.Arg(2), util.Arg(3)
	}

	link, err := cluster.ParseLinkage(flagLinkage)
	util.Assert(err)

	dg := cluster.Cluster(dists, link)
	order := dg.OptimalOrder(dists)

	tf := util.CreateFile(treePath)
	util.Assert(cluster.WriteNewick(tf, dg, dists.Labels),
		"Could not write tree '%s'", treePath)
	util.Assert(tf.Close())

	csvw := csv.NewWriter(util.CreateFile(csvPath))
	groups := cluster.Groups(dg.Cut(flagClusters), order, dists.Labels)
	util.Assert(csvw.WriteAll(groups))
}

// stateDists reads and validates an emissions table, applies the matched
// correction and computes pairwise distances between its state rows. The
// column ordering does not change the distances, so the species annotations
// only contribute validation here.
func stateDists(emissionsPath, speciesPath string) *cluster.Dists {
	table := util.EmissionsTable(emissionsPath)
	species := util.SpeciesMap(speciesPath)

	util.Assert(table.CorrectMatched(), "Could not correct matched columns")
	util.Assert(table.Reorder(species), "Could not order columns")

	metric, err := cluster.ParseMetric(flagMetric)
	util.Assert(err)

	util.Verbosef("Computing %s distances over %d states...\n",
		flagMetric, len(table.States))
	return cluster.RowDistances(table.Data, table.States, metric)
}
