package navps

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/navps-cli/internal/model"
)

// TypeRange is the half-open cell index interval [Begin, End) belonging to a
// fund-type section.
type TypeRange struct {
	Label string
	Begin int
	End   int
}

// Contains reports whether pos lies strictly inside the range. The label's
// own cell at Begin is not part of its section.
func (r TypeRange) Contains(pos int) bool {
	return r.Begin < pos && pos < r.End
}

// Sections classifies fund names by their position in the page's cell stream.
// It is built once per report and is read-only afterwards.
type Sections struct {
	ranges []TypeRange
	first  map[string]int // cell text -> first index
}

// BuildSections computes one TypeRange per label. Each range starts at the
// label's first occurrence and ends where the next label starts; the last
// range runs to the end of cells. A label that never occurs is a
// KindClassification error.
func BuildSections(cells []string, labels []string) (*Sections, error) {
	first := make(map[string]int, len(cells))
	for i, c := range cells {
		if _, ok := first[c]; !ok {
			first[c] = i
		}
	}

	begins := make([]int, len(labels))
	for i, label := range labels {
		pos, ok := first[label]
		if !ok {
			return nil, &Error{Kind: KindClassification, Err: eris.Errorf("fund type %q not found in report", label)}
		}
		begins[i] = pos
	}

	ranges := make([]TypeRange, len(labels))
	for i, label := range labels {
		end := len(cells)
		if i+1 < len(begins) {
			end = begins[i+1]
		}
		ranges[i] = TypeRange{Label: label, Begin: begins[i], End: end}
	}

	return &Sections{ranges: ranges, first: first}, nil
}

// Ranges returns a copy of the section ranges in label order.
func (s *Sections) Ranges() []TypeRange {
	out := make([]TypeRange, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Classify returns the label of the section containing the first occurrence
// of name, or model.TypeUnknown. Names are matched exactly, so two funds
// sharing a name both resolve to the first one's section.
func (s *Sections) Classify(name string) string {
	pos, ok := s.first[name]
	if !ok {
		return model.TypeUnknown
	}
	// Linear scan over a handful of ranges. When labels appear out of order
	// the ranges can overlap; the later range wins.
	label := model.TypeUnknown
	for _, r := range s.ranges {
		if r.Contains(pos) {
			label = r.Label
		}
	}
	return label
}
