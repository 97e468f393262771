package suite

import (
	"fmt"
	"strconv"

	"rzt/internal/domain"
	"rzt/internal/transform"
)

// GenomeFixture is the reference every case maps against
const GenomeFixture = "adeno-genome.fa"

// Paths resolves fixture and output locations for the builder
type Paths interface {
	InFile(name string) string
	OutFile(name string) (string, error)
	StripTransforms() transform.List
}

// Builder enumerates the cross product of Axes into test cases. It never
// looks at execution results.
type Builder struct {
	paths   Paths
	program string
	axes    Axes
}

// NewBuilder creates a Builder for program
func NewBuilder(paths Paths, program string, axes Axes) *Builder {
	return &Builder{paths: paths, program: program, axes: axes}
}

// Build returns every case, grouped by pairing then read length
func (b *Builder) Build() (domain.Suite, error) {
	suite := make(domain.Suite, 0, b.axes.Total())
	for _, p := range b.axes.Pairings {
		for _, rl := range b.axes.ReadLengths {
			cases, err := b.buildReadLength(p, rl)
			if err != nil {
				return nil, err
			}
			suite = append(suite, cases...)
		}
	}
	return suite, nil
}

// variant is one option combination, before paths are resolved
type variant struct {
	tag        string         // Appended to the output stem, e.g. "-i95"
	flags      []string       // Options placed before the positional arguments
	ext        string         // Output file extension
	transforms transform.List // For the main output
	stdout     transform.List // For the captured stdout
}

func (b *Builder) variants(p Pairing) []variant {
	profile := pairings[p]
	strip := b.paths.StripTransforms()

	vs := []variant{
		{tag: "", ext: "razers", transforms: profile.base},
		{tag: "-ng", flags: []string{"-ng"}, ext: "razers", transforms: profile.base},
	}
	for _, s := range b.axes.Strands {
		vs = append(vs, variant{tag: s, flags: []string{s}, ext: "razers", transforms: profile.base})
	}
	for _, i := range b.axes.Identities {
		vs = append(vs, variant{
			tag:        fmt.Sprintf("-i%d", i),
			flags:      []string{"-i", strconv.Itoa(i)},
			ext:        "razers",
			transforms: profile.base,
		})
	}
	for of, format := range b.axes.Formats {
		vs = append(vs, variant{
			tag:        fmt.Sprintf("-of%d", of),
			ext:        format,
			transforms: transform.Concat(strip, FormatTransforms[format]),
			stdout:     strip,
		})
	}
	for _, so := range b.axes.SortOrders {
		vs = append(vs, variant{
			tag:        fmt.Sprintf("-so%d", so),
			flags:      []string{"-so", strconv.Itoa(so)},
			ext:        "razers",
			transforms: profile.base,
		})
	}
	return vs
}

func (b *Builder) buildReadLength(p Pairing, rl int) ([]domain.TestCase, error) {
	profile := pairings[p]
	positional := []string{b.paths.InFile(GenomeFixture)}
	for _, rf := range profile.readFiles {
		positional = append(positional, b.paths.InFile(fmt.Sprintf(rf, rl)))
	}

	vs := b.variants(p)
	cases := make([]domain.TestCase, 0, len(vs))
	for _, v := range vs {
		stem := fmt.Sprintf("%s-adeno-reads%d%s%s", profile.prefix, rl, profile.suffix, v.tag)
		tc, err := b.newCase(stem, v, positional)
		if err != nil {
			return nil, err
		}
		cases = append(cases, tc)
	}
	return cases, nil
}

func (b *Builder) newCase(stem string, v variant, positional []string) (domain.TestCase, error) {
	outName := stem + "." + v.ext
	stdoutName := stem + ".stdout"

	out, err := b.paths.OutFile(outName)
	if err != nil {
		return domain.TestCase{}, fmt.Errorf("output path for %s: %w", stem, err)
	}
	stdout, err := b.paths.OutFile(stdoutName)
	if err != nil {
		return domain.TestCase{}, fmt.Errorf("stdout path for %s: %w", stem, err)
	}

	args := make([]string, 0, len(v.flags)+len(positional)+2)
	args = append(args, v.flags...)
	args = append(args, positional...)
	args = append(args, "-o", out)

	return domain.TestCase{
		Name:        stem,
		Program:     b.program,
		Args:        args,
		RedirStdout: stdout,
		Diffs: []domain.DiffPair{
			{Expected: b.paths.InFile(outName), Actual: out, Transforms: v.transforms},
			{Expected: b.paths.InFile(stdoutName), Actual: stdout, Transforms: v.stdout},
		},
	}, nil
}
