/*
Package conshmm provides command line tools for inspecting the emission
probabilities learned by a ConsHMM conservation-state model: a table of
per-state aligned/matched probabilities across the genomes of a multiple
alignment.

The tools share a short pipeline. Matched probabilities are rescaled by
their aligned counterparts, columns are ordered by each genome's
phylogenetic distance to human, state rows are hierarchically clustered
with optimal leaf ordering, and the result is rendered as an annotated
heatmap. Every tool is a small interface over the emissions, cluster and
heatmap packages; none of them keep state between runs.
*/
package conshmm
