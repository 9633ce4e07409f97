// Package expr parses and formats split expressions.
//
// An expression references one or more named splits joined by "+", each with
// an optional half-open window:
//
//	train                 full split
//	train[4:8]            absolute example offsets
//	train[:75%]           percentage of the split size
//	train[-1000:]         offsets counted back from the end
//	train[:800]+test      concatenation, read in order
//
// Both boundaries of a window must use the same unit. Percent boundaries must
// be within [-100, 100]. The parser produces types.NamedRange descriptors;
// converting them to absolute offsets requires split sizes and is handled by
// the partition package.
package expr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yukimasano/datasets/types"
)

// addendRe matches a single addend: a split name with an optional
// "[from:to]" window where each boundary is an optional integer with an
// optional "%" suffix.
var addendRe = regexp.MustCompile(`^(\w[\w.-]*)(?:\[(-?\d+%?)?:(-?\d+%?)?\])?$`)

// Parse converts a textual split expression into its ordered list of named
// ranges, one per "+"-separated addend.
//
// Parameters:
//   - spec: Split expression (e.g. "train[:800]+validation")
//
// Returns:
//   - []types.NamedRange: Parsed addends in expression order
//   - error: ErrInvalidExpression if the syntax is malformed
func Parse(spec string) ([]types.NamedRange, error) {
	addends := strings.Split(spec, "+")
	ranges := make([]types.NamedRange, 0, len(addends))
	for _, addend := range addends {
		r, err := parseAddend(strings.TrimSpace(addend))
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}

	return ranges, nil
}

// IsComposed reports whether the expression already contains a window or a
// concatenation. Composed expressions cannot be split in legacy percent mode.
func IsComposed(spec string) bool {
	return strings.ContainsAny(spec, "[+")
}

// FormatPercentWindow renders a percentage-bounded window in re-parseable
// split-spec syntax (e.g. "train[33%:67%]").
func FormatPercentWindow(split string, lo, hi int64) string {
	return fmt.Sprintf("%s[%d%%:%d%%]", split, lo, hi)
}

func parseAddend(addend string) (types.NamedRange, error) {
	m := addendRe.FindStringSubmatch(addend)
	if m == nil {
		return types.NamedRange{}, fmt.Errorf("%w: %q", types.ErrInvalidExpression, addend)
	}

	r := types.NamedRange{Split: m[1], Unit: types.UnitAbs}

	fromPct := strings.HasSuffix(m[2], "%")
	toPct := strings.HasSuffix(m[3], "%")
	if fromPct || toPct {
		// Mixed units within one window are ambiguous.
		if (m[2] != "" && !fromPct) || (m[3] != "" && !toPct) {
			return types.NamedRange{}, fmt.Errorf("%w: mixed units in %q", types.ErrInvalidExpression, addend)
		}
		r.Unit = types.UnitPercent
	}

	var err error
	if r.From, err = parseBoundary(m[2], r.Unit, addend); err != nil {
		return types.NamedRange{}, err
	}
	if r.To, err = parseBoundary(m[3], r.Unit, addend); err != nil {
		return types.NamedRange{}, err
	}

	return r, nil
}

func parseBoundary(s string, unit types.Unit, addend string) (*int64, error) {
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(strings.TrimSuffix(s, "%"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: boundary %q in %q", types.ErrInvalidExpression, s, addend)
	}
	if unit == types.UnitPercent && (v < -100 || v > 100) {
		return nil, fmt.Errorf("%w: percent boundary %d%% out of [-100, 100] in %q",
			types.ErrInvalidExpression, v, addend)
	}

	return &v, nil
}
