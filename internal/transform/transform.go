package transform

// Side tells a transform which file of a comparison it is looking at.
type Side int

const (
	// Left is the golden (expected) file.
	Left Side = iota
	// Right is the file produced by the program under test.
	Right
)

// String returns the side name
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Transform rewrites the text of one side of a comparison.
// Implementations must be pure.
type Transform interface {
	Apply(text string, side Side) string
}

// List is an ordered sequence of transforms
type List []Transform

// Apply runs every transform in declaration order, feeding each the output of the previous one.
// An empty list returns text unchanged.
func (l List) Apply(text string, side Side) string {
	for _, t := range l {
		text = t.Apply(text, side)
	}
	return text
}

// Concat returns a new list holding l followed by others.
// Neither input is modified.
func Concat(l List, others ...List) List {
	n := len(l)
	for _, o := range others {
		n += len(o)
	}
	out := make(List, 0, n)
	out = append(out, l...)
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

func applies(left, right bool, side Side) bool {
	if side == Left {
		return left
	}
	return right
}
