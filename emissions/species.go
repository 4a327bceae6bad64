package emissions

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Species annotates one genome of the alignment.
type Species struct {
	CommonName      string `yaml:"commonName"`
	Group           string `yaml:"group"`
	DistanceToHuman int    `yaml:"distanceToHuman"`
}

// SpeciesMap holds the annotation for every genome, keyed by the genome
// name used in the emissions table's column headers.
type SpeciesMap map[string]Species

// ReadSpecies decodes a YAML mapping of genome name to annotation and
// validates it: distanceToHuman ranks must be non-negative and unique
// across the map, since they place columns in the rendered heatmap.
func ReadSpecies(r io.Reader) (SpeciesMap, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sp SpeciesMap
	if err := dec.Decode(&sp); err != nil {
		return nil, fmt.Errorf("decoding species annotations: %w", err)
	}

	byRank := make(map[int]string, len(sp))
	for genome, s := range sp {
		if len(s.CommonName) == 0 {
			return nil, fmt.Errorf("genome '%s' has no commonName", genome)
		}
		if s.DistanceToHuman < 0 {
			return nil, fmt.Errorf(
				"genome '%s' has negative distanceToHuman %d",
				genome, s.DistanceToHuman)
		}
		if other, ok := byRank[s.DistanceToHuman]; ok {
			// Map iteration order is arbitrary; name both genomes
			// deterministically.
			a, b := genome, other
			if a > b {
				a, b = b, a
			}
			return nil, fmt.Errorf("%w: '%s' and '%s' both have rank %d",
				ErrDuplicateRank, a, b, s.DistanceToHuman)
		}
		byRank[s.DistanceToHuman] = genome
	}
	return sp, nil
}
