package util

import (
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/TuftsBCB/io/newick"

	"github.com/chiennifer/ConsHMM/emissions"
)

// EmissionsTable reads a tab-separated emissions table, aborting the program
// with a descriptive message when the file cannot be opened or its header
// does not follow the '<genome>_aligned'/'<genome>_matched' convention.
func EmissionsTable(fpath string) *emissions.Table {
	r := OpenMaybeGzip(fpath)
	defer r.Close()

	table, err := emissions.ReadTable(r)
	Assert(err, "Could not read emissions table '%s'", fpath)
	return table
}

// SpeciesMap reads a YAML species annotation file keyed by genome name.
func SpeciesMap(fpath string) emissions.SpeciesMap {
	f := OpenFile(fpath)
	defer f.Close()

	sp, err := emissions.ReadSpecies(f)
	Assert(err, "Could not read species annotations '%s'", fpath)
	return sp
}

// NewickTree reads a dendrogram stored in Newick tree format.
func NewickTree(fpath string) *newick.Tree {
	f := OpenFile(fpath)
	defer f.Close()

	tree, err := newick.NewReader(f).ReadTree()
	Assert(err, "Could not read newick tree '%s'", fpath)
	return tree
}

func OpenFile(path string) *os.File {
	f, err := os.Open(path)
	Assert(err, "Could not open file '%s'", path)
	return f
}

func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}

// OpenMaybeGzip opens a file and transparently decompresses it when its name
// carries a '.gz' suffix.
func OpenMaybeGzip(fpath string) io.ReadCloser {
	f := OpenFile(fpath)
	if strings.HasSuffix(fpath, ".gz") {
		r, err := gzip.NewReader(f)
		Assert(err, "Could not open '%s'", fpath)
		return gzipReadCloser{r, f}
	}
	return f
}

type gzipReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (r gzipReadCloser) Close() error {
	if err := r.Reader.Close(); err != nil {
		r.f.Close()
		return err
	}
	return r.f.Close()
}

func ParseInt(str string) int {
	num, err := strconv.ParseInt(str, 10, 32)
	Assert(err, "Could not parse '%s' as an integer", str)
	return int(num)
}
