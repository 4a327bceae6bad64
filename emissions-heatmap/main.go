package main

import (
	"flag"

	"github.com/chiennifer/ConsHMM/cluster"
	"github.com/chiennifer/ConsHMM/heatmap"
	"github.com/chiennifer/ConsHMM/util"
)

var (
	flagClusters  = 0
	flagNoCluster = false
	flagLinkage   = "average"
	flagMetric    = "euclidean"
	flagValues    = false
	flagTitle     = "Emission probabilities"
	flagHTML      = ""
	flagTree      = ""
	flagTreeOut   = ""
)

func init() {
	flag.IntVar(&flagClusters, "clusters", flagClusters,
		"The number of flat clusters to cut the dendrogram into. Cluster "+
			"boundaries are drawn as gaps between row blocks; 0 disables "+
			"cutting.")
	flag.BoolVar(&flagNoCluster, "nocluster", flagNoCluster,
		"When set, rows keep their input order and no dendrogram is drawn.")
	flag.StringVar(&flagLinkage, "linkage", flagLinkage,
		"The linkage used for row clustering: average, single or complete.")
	flag.StringVar(&flagMetric, "metric", flagMetric,
		"The distance between row vectors: euclidean or manhattan.")
	flag.BoolVar(&flagValues, "values", flagValues,
		"When set, each cell is overlaid with its probability.")
	flag.StringVar(&flagTitle, "title", flagTitle,
		"The title drawn above the heatmap.")
	flag.StringVar(&flagHTML, "html", flagHTML,
		"If set, an interactive HTML heatmap is also written to the file "+
			"given.")
	flag.StringVar(&flagTree, "tree", flagTree,
		"If set, the row dendrogram is read from the newick tree given "+
			"(e.g. one written by emissions-cluster) instead of clustering.")
	flag.StringVar(&flagTreeOut, "treeout", flagTreeOut,
		"If set, the row dendrogram is written to the file given in "+
			"newick format.")

	util.FlagUse("verbose", "quiet")
	util.FlagParse("emissions-tsv species-yaml out-image",
		"Where `emissions-tsv` is a tab-separated emissions table whose "+
			"columns follow the '<genome>_aligned'/'<genome>_matched' "+
			"naming convention, `species-yaml` maps each genome to its "+
			"annotation {commonName, group, distanceToHuman}, and "+
			"`out-image` names the rendered heatmap (format by extension: "+
			".png, .pdf, .svg).")
	util.AssertNArg(3)
}

func main() {
	table := util.EmissionsTable(util.Arg(0))
	species := util.SpeciesMap(util.Arg(1))
	outPath := util.Arg(2)

	util.Assert(table.CorrectMatched(), "Could not correct matched columns")
	util.Assert(table.Reorder(species), "Could not order columns")

	var (
		dg     *cluster.Dendrogram
		order  []int
		bounds []int
	)
	if !flagNoCluster {
		metric, err := cluster.ParseMetric(flagMetric)
		util.Assert(err)
		link, err := cluster.ParseLinkage(flagLinkage)
		util.Assert(err)

		util.Verbosef("Computing %s distances over %d states...\n",
			flagMetric, len(table.States))
		dists := cluster.RowDistances(table.Data, table.States, metric)

		if len(flagTree) > 0 {
			dg, err = cluster.FromNewick(util.NewickTree(flagTree), table.States)
			util.Assert(err, "Could not use tree '%s'", flagTree)
		} else {
			dg = cluster.Cluster(dists, link)
		}
		order = dg.OptimalOrder(dists)
		bounds = cluster.Boundaries(dg.Cut(flagClusters), order)

		if len(flagTreeOut) > 0 {
			f := util.CreateFile(flagTreeOut)
			util.Assert(cluster.WriteNewick(f, dg, table.States),
				"Could not write tree '%s'", flagTreeOut)
			util.Assert(f.Close())
		}
	}

	cfg := heatmap.Config{Title: flagTitle, ShowValues: flagValues}
	util.Assert(heatmap.Render(table, dg, order, bounds, cfg, outPath),
		"Could not render '%s'", outPath)

	if len(flagHTML) > 0 {
		f := util.CreateFile(flagHTML)
		util.Assert(heatmap.RenderHTML(table, order, bounds, flagTitle, f),
			"Could not render '%s'", flagHTML)
		util.Assert(f.Close())
	}
}
