package emissions

import "errors"

// The validation failures a run can abort with. Each later transform depends
// on the previous one's output being well-formed, so none of these are
// recoverable; tools are expected to stop before writing any output.
var (
	// ErrMalformedColumn reports an emissions column header that does not
	// follow the '<genome>_aligned' / '<genome>_matched' convention.
	ErrMalformedColumn = errors.New("malformed emissions column name")

	// ErrMissingAnnotation reports a genome present in the emissions table
	// with no record in the species annotations.
	ErrMissingAnnotation = errors.New("genome missing from species annotations")

	// ErrDuplicateRank reports two genomes sharing a distanceToHuman rank,
	// which makes column placement ambiguous.
	ErrDuplicateRank = errors.New("duplicate distanceToHuman rank")

	// ErrIncompletePair reports a genome with a matched column but no
	// aligned counterpart, which blocks probability correction.
	ErrIncompletePair = errors.New("matched column has no aligned counterpart")
)
