package emissions

import (
	"fmt"
	"strings"
)

// Kind distinguishes the two per-genome emission columns produced by the
// model learner.
type Kind uint8

const (
	// Aligned is the probability that a genome's sequence aligns at a
	// position.
	Aligned Kind = iota

	// Matched is the probability that aligned bases match. Raw matched
	// values are conditional on alignment; CorrectMatched rescales them.
	Matched
)

func (k Kind) String() string {
	switch k {
	case Aligned:
		return "aligned"
	case Matched:
		return "matched"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Column identifies one emissions column by the genome it belongs to and
// the kind of probability it carries.
type Column struct {
	Genome string
	Kind   Kind
}

// FullName reassembles the raw header name of the column.
func (c Column) FullName() string {
	return c.Genome + "_" + c.Kind.String()
}

// parseColumn validates a raw header name against the
// '<genome>_<aligned|matched>' convention. The genome part may itself
// contain underscores, so only the last segment selects the kind.
func parseColumn(name string) (Column, error) {
	i := strings.LastIndex(name, "_")
	if i <= 0 || i == len(name)-1 {
		return Column{}, fmt.Errorf("%w: '%s'", ErrMalformedColumn, name)
	}
	genome, suffix := name[:i], name[i+1:]
	switch suffix {
	case "aligned":
		return Column{genome, Aligned}, nil
	case "matched":
		return Column{genome, Matched}, nil
	}
	return Column{}, fmt.Errorf("%w: '%s' (expected suffix 'aligned' or 'matched')",
		ErrMalformedColumn, name)
}
