package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/vagabond-api/internal/errors"
)

// Parser bounds
const (
	MaxDiceCount = 100
	MaxDieSize   = 1000
)

var (
	// One signed term: "+2d6", "-1d6", "d20", "3"
	termRegex = regexp.MustCompile(`^([+-])?(?:(\d*)d(\d+)|(\d+))`)
)

// Term is one additive piece of an expression. Constants have Count 0.
type Term struct {
	Sign  int32 `json:"sign"`
	Count int32 `json:"count,omitempty"`
	Size  int32 `json:"size,omitempty"`
	// Faces holds one result per die, in roll order
	Faces []int32 `json:"faces,omitempty"`
	// Value is the signed contribution to the total
	Value int32 `json:"value"`
}

// IsDice reports whether the term rolls dice
func (t Term) IsDice() bool {
	return t.Count > 0
}

// Parse splits an expression into unrolled terms
func Parse(expression string) ([]Term, error) {
	s := strings.ToLower(strings.Join(strings.Fields(expression), ""))
	if s == "" {
		return nil, errors.InvalidArgument("dice expression is required")
	}

	var terms []Term
	for s != "" {
		m := termRegex.FindStringSubmatch(s)
		if m == nil {
			return nil, errors.InvalidArgumentf("invalid dice expression %q near %q", expression, s)
		}
		if m[1] == "" && len(terms) > 0 {
			return nil, errors.InvalidArgumentf("invalid dice expression %q: missing operator before %q", expression, m[0])
		}

		term := Term{Sign: 1}
		if m[1] == "-" {
			term.Sign = -1
		}

		if m[3] != "" {
			count := 1
			if m[2] != "" {
				n, err := strconv.Atoi(m[2])
				if err != nil {
					return nil, errors.InvalidArgumentf("invalid dice count in %q", expression)
				}
				count = n
			}
			size, err := strconv.Atoi(m[3])
			if err != nil {
				return nil, errors.InvalidArgumentf("invalid die size in %q", expression)
			}
			if count < 1 || count > MaxDiceCount {
				return nil, errors.InvalidArgumentf("dice count must be between 1 and %d in %q", MaxDiceCount, expression)
			}
			if size < 1 || size > MaxDieSize {
				return nil, errors.InvalidArgumentf("die size must be between 1 and %d in %q", MaxDieSize, expression)
			}
			term.Count = int32(count)
			term.Size = int32(size)
		} else {
			n, err := strconv.Atoi(m[4])
			if err != nil || n > MaxDieSize*MaxDiceCount {
				return nil, errors.InvalidArgumentf("invalid constant in %q", expression)
			}
			term.Value = term.Sign * int32(n)
		}

		terms = append(terms, term)
		s = s[len(m[0]):]
	}

	return terms, nil
}

// FormatTerms renders terms back into an expression, e.g. "2d6 - 1d4 + 3"
func FormatTerms(terms ...Term) string {
	var b strings.Builder
	for i, t := range terms {
		negative := t.Sign < 0 || (!t.IsDice() && t.Value < 0)
		switch {
		case i == 0 && negative:
			b.WriteString("-")
		case i > 0 && negative:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}

		if t.IsDice() {
			fmt.Fprintf(&b, "%dd%d", t.Count, t.Size)
			continue
		}
		v := t.Value
		if v < 0 {
			v = -v
		}
		fmt.Fprintf(&b, "%d", v)
	}
	return b.String()
}
