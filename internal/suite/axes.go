package suite

import "rzt/internal/transform"

// Pairing selects single-end or paired-end reads
type Pairing int

const (
	// SingleEnd maps the _1 reads alone
	SingleEnd Pairing = iota
	// PairedEnd maps the _1 and _2 reads as mate pairs
	PairedEnd
)

// String returns the file name prefix of the pairing
func (p Pairing) String() string {
	return pairings[p].prefix
}

// Axes are the configuration dimensions the builder enumerates
type Axes struct {
	ReadLengths []int
	Strands     []string
	Identities  []int
	Formats     []string
	SortOrders  []int
	Pairings    []Pairing
}

// DefaultAxes returns the axes of the razers3 golden corpus
func DefaultAxes() Axes {
	identities := make([]int, 0, 11)
	for i := 90; i <= 100; i++ {
		identities = append(identities, i)
	}
	return Axes{
		ReadLengths: []int{36, 100},
		Strands:     []string{"-r", "-f"},
		Identities:  identities,
		Formats:     []string{"razers", "fa", "eland", "gff", "sam", "afg"},
		SortOrders:  []int{0, 1},
		Pairings:    []Pairing{SingleEnd, PairedEnd},
	}
}

// CasesPerReadLength is the number of cases generated for one pairing and read length:
// the default run, the indel run, then one case per strand, identity, format and sort order.
func (a Axes) CasesPerReadLength() int {
	return 2 + len(a.Strands) + len(a.Identities) + len(a.Formats) + len(a.SortOrders)
}

// Total is the number of cases Build produces for these axes
func (a Axes) Total() int {
	return len(a.Pairings) * len(a.ReadLengths) * a.CasesPerReadLength()
}

// FormatTransforms maps an output format to the normalization it needs on
// top of path stripping. Formats absent from the table need none.
var FormatTransforms = map[string]transform.List{
	// Paired-end records carry a volatile pair id column.
	"razers": {transform.RemovePairID()},
	// The @PG header embeds the program version.
	"sam": {transform.SAMVersion()},
}

// pairingProfile captures what differs between single- and paired-end cases
type pairingProfile struct {
	prefix    string         // Output name prefix
	suffix    string         // Suffix after the read length in output names
	readFiles []string       // Read fixture patterns, formatted with the read length
	base      transform.List // Transforms on the main output of non-format cases
}

var pairings = map[Pairing]pairingProfile{
	SingleEnd: {
		prefix:    "se",
		suffix:    "_1",
		readFiles: []string{"adeno-reads%d_1.fa"},
	},
	PairedEnd: {
		prefix:    "pe",
		suffix:    "_2",
		readFiles: []string{"adeno-reads%d_1.fa", "adeno-reads%d_2.fa"},
		base:      transform.List{transform.RemovePairID()},
	},
}
