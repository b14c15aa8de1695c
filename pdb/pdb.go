// Package pdb reads the subset of a PDB file needed for torsion angle
// analysis: ATOM records with their coordinates, grouped by chain and by
// residue, along with the SEQRES amino acid sequence of each chain.
package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/TianyiShi2001/dihedral"
)

// AminoThreeToOne is a map from three letter amino acids to their
// corresponding single letter representation.
var AminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// AminoOneToThree is the reverse of AminoThreeToOne. It is created in
// this packages 'init' function.
var AminoOneToThree = map[byte]string{}

func init() {
	// Create a reverse map of AminoThreeToOne.
	for k, v := range AminoThreeToOne {
		AminoOneToThree[v] = k
	}
}

// Atom is a single ATOM record. Its coordinates are expressed as a
// dihedral.Point3 so that they can be handed to the torsion routines
// without conversion.
type Atom struct {
	// Name is the PDB atom name with surrounding space trimmed,
	// e.g. "N", "CA", "C" or "CD1".
	Name string

	// Residue is the three letter name of the residue this atom belongs
	// to, and ResidueInd its residue sequence number.
	Residue    string
	ResidueInd int

	Coords dihedral.Point3
}

// Atoms names a list of ATOM records.
type Atoms []Atom

// Entry represents all information known about a particular PDB file (that
// has been implemented in this package).
type Entry struct {
	Path   string
	Chains map[byte]*Chain
}

// New creates a new PDB Entry from a file. If the file cannot be read, or
// there is an error parsing the PDB file, an error is returned.
//
// If the file name ends with ".gz", gzip decompression will be used.
func New(fileName string) (*Entry, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f

	// If the file is gzipped, use the gzip decompressor.
	if path.Ext(fileName) == ".gz" {
		reader, err = gzip.NewReader(reader)
		if err != nil {
			return nil, err
		}
	}

	return Read(reader, fileName)
}

// Read creates a new PDB Entry by parsing PDB formatted text from the
// reader provided. The name is only used to identify the entry in error
// messages and in the String representation.
func Read(reader io.Reader, name string) (*Entry, error) {
	entry := &Entry{
		Path:   name,
		Chains: make(map[byte]*Chain, 0),
	}

	// Now traverse each line, and process it according to the record name.
	breader := bufio.NewReaderSize(reader, 1000)
	for {
		// We ignore 'isPrefix' here, since we never care about lines longer
		// than 1000 characters, which is the size of our buffer.
		line, _, err := breader.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if len(line) < 6 {
			continue
		}

		// The record name is always in the first six columns.
		switch strings.TrimSpace(string(line[0:6])) {
		case "SEQRES":
			entry.parseSeqres(line)
		case "ATOM":
			if err := entry.parseAtom(line); err != nil {
				return nil, err
			}
		}
	}

	return entry, nil
}

// Name returns the base name of this entry's path, without a '.pdb' or
// '.pdb.gz' extension.
func (e *Entry) Name() string {
	name := path.Base(e.Path)
	name = strings.TrimSuffix(name, ".gz")
	name = strings.TrimSuffix(name, ".pdb")
	return name
}

// String returns a sorted list of all chains, their residue start/stop
// indices, and the amino acid sequence.
func (e *Entry) String() string {
	lines := make([]string, 0)
	for _, chain := range e.Chains {
		lines = append(lines, chain.String())
	}
	sort.Sort(sort.StringSlice(lines))
	return strings.Join(lines, "\n")
}

// getOrMakeChain looks for a chain in the 'Chains' map corresponding to the
// chain identifier. If one exists, it is returned. If one doesn't exist,
// it is created, memory is allocated and it is returned.
func (e *Entry) getOrMakeChain(ident byte) *Chain {
	if chain, ok := e.Chains[ident]; ok {
		return chain
	}
	e.Chains[ident] = &Chain{
		Ident:    ident,
		Sequence: make([]byte, 0, 10),
		Residues: make([]*Residue, 0, 10),
	}
	return e.Chains[ident]
}

// parseSeqres loads all pertinent information from SEQRES records in a PDB
// file. In particular, amino acid residues are read and added to the
// chain's "Sequence" field. If a residue isn't a valid amino acid, it is
// simply ignored.
//
// N.B. This assumes that the SEQRES records are in order in the PDB file.
func (e *Entry) parseSeqres(line []byte) {
	if len(line) < 12 {
		return
	}
	chain := e.getOrMakeChain(line[11])

	// Residues are in columns 19-21, 23-25, 27-29, ..., 67-69
	for i := 19; i <= 67; i += 4 {
		end := i + 3

		// If we're passed the end of this line, quit. (SEQRES records
		// are not always padded out to 80 columns, so the final residue
		// may end exactly at the end of the line.)
		if end > len(line) {
			break
		}

		// Get the residue. If it's not in our sequence map, skip it.
		residue := strings.TrimSpace(string(line[i:end]))
		if single, ok := AminoThreeToOne[residue]; ok {
			chain.Sequence = append(chain.Sequence, single)
		}
	}
}

// parseAtom loads all pertinent information from ATOM records in a PDB
// file: the atom name, the residue it belongs to, its residue sequence
// number and its coordinates. Atoms are appended to the chain named in the
// record, and grouped into a new Residue whenever the residue sequence
// number changes.
//
// ATOM records without a valid amino acid residue in columns 18-20 are
// ignored, as are alternate locations other than the first.
func (e *Entry) parseAtom(line []byte) error {
	if len(line) < 54 {
		return fmt.Errorf("A short ATOM record was found in PDB file '%s': "+
			"'%s'.", e.Path, string(line))
	}
	chain := e.getOrMakeChain(line[21])

	// An ATOM record is only processed if it corresponds to an amino acid
	// residue. (Which is in columns 17-19.)
	residue := strings.TrimSpace(string(line[17:20]))
	if _, ok := AminoThreeToOne[residue]; !ok {
		return nil
	}

	// The alternate location indicator is in column 16. Keep the primary
	// location only.
	if altLoc := line[16]; altLoc != ' ' && altLoc != 'A' {
		return nil
	}

	// The residue sequence number is in columns 22-25.
	snum := strings.TrimSpace(string(line[22:26]))
	resInd, err := strconv.Atoi(snum)
	if err != nil {
		return fmt.Errorf("An ATOM record in PDB file '%s' has a residue "+
			"sequence number '%s' that is not an integer.", e.Path, snum)
	}

	atom := Atom{
		Name:       strings.TrimSpace(string(line[12:16])),
		Residue:    residue,
		ResidueInd: resInd,
	}
	for i, cols := range [3][2]int{{30, 38}, {38, 46}, {46, 54}} {
		scoord := strings.TrimSpace(string(line[cols[0]:cols[1]]))
		coord, err := strconv.ParseFloat(scoord, 64)
		if err != nil {
			return fmt.Errorf("An ATOM record in PDB file '%s' has a "+
				"coordinate '%s' that is not a number.", e.Path, scoord)
		}
		atom.Coords[i] = coord
	}

	chain.addAtom(atom)
	return nil
}

// Chain represents a protein chain or subunit in a PDB file. Each chain
// has its own identifier, amino acid sequence (if it's a protein sequence),
// and the residues read from ATOM records, in file order.
type Chain struct {
	Ident    byte
	Sequence []byte
	Residues []*Residue
}

// addAtom appends an atom to the chain, starting a new residue if the
// atom's residue sequence number differs from the last one seen.
func (c *Chain) addAtom(atom Atom) {
	n := len(c.Residues)
	if n == 0 || c.Residues[n-1].Ind != atom.ResidueInd {
		c.Residues = append(c.Residues, &Residue{
			Name:  atom.Residue,
			Ind:   atom.ResidueInd,
			Atoms: make(Atoms, 0, 8),
		})
		n++
	}
	res := c.Residues[n-1]
	res.Atoms = append(res.Atoms, atom)
}

// CaAtoms returns the carbon-alpha atom of each residue that has one, in
// chain order.
func (c *Chain) CaAtoms() Atoms {
	atoms := make(Atoms, 0, len(c.Residues))
	for _, res := range c.Residues {
		if ca, ok := res.Atom("CA"); ok {
			atoms = append(atoms, ca)
		}
	}
	return atoms
}

// String returns a FASTA-like formatted string of this chain and all of its
// related information.
func (c *Chain) String() string {
	start, end := 0, 0
	if len(c.Residues) > 0 {
		start = c.Residues[0].Ind
		end = c.Residues[len(c.Residues)-1].Ind
	}
	return fmt.Sprintf("> Chain %c (%d, %d) :: length %d\n%s",
		c.Ident, start, end, len(c.Sequence), string(c.Sequence))
}

// Residue is a group of consecutive ATOM records sharing a residue
// sequence number.
type Residue struct {
	Name  string
	Ind   int
	Atoms Atoms
}

// Atom returns the first atom in the residue with the given name, e.g.
// "N", "CA" or "C". The second return value is false if the residue has
// no such atom.
func (r *Residue) Atom(name string) (Atom, bool) {
	for _, atom := range r.Atoms {
		if atom.Name == name {
			return atom, true
		}
	}
	return Atom{}, false
}
