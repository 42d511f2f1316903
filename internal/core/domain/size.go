package domain

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Dims is the ordered tuple of numeric dimensions parsed from a size
// token such as "2.5x3.5". A malformed token yields a tuple that sorts
// after every well-formed one, so bad data never aborts a listing.
type Dims []float64

// ParseSize canonicalizes a raw size token. Unit suffixes and quote
// marks are stripped before splitting on the x separator.
func ParseSize(token string) Dims {
	s := strings.ToLower(strings.TrimSpace(token))
	s = strings.ReplaceAll(s, "inch", "")
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.TrimSpace(s)

	parts := strings.Split(s, "x")
	dims := make(Dims, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Dims{math.Inf(1)}
		}
		dims = append(dims, f)
	}
	if len(dims) == 0 {
		return Dims{math.Inf(1)}
	}
	return dims
}

// Less orders tuples element-wise, width before height.
func (d Dims) Less(other Dims) bool {
	n := min(len(d), len(other))
	for i := range n {
		if d[i] != other[i] {
			return d[i] < other[i]
		}
	}
	return len(d) < len(other)
}

// SortSizeTokens sorts size tokens numerically by their dimensions,
// not lexically: "2x2" < "2.5x2.5" < "10x10".
func SortSizeTokens(sizes []string) {
	sort.SliceStable(sizes, func(i, j int) bool {
		return ParseSize(sizes[i]).Less(ParseSize(sizes[j]))
	})
}

var sizeInNameRe = regexp.MustCompile(`(?i)(\d+\.?\d*)"?\s*x\s*(\d+\.?\d*)"?`)

// SizeFromName extracts a WxH size token embedded in a product name,
// e.g. `Fridge Magnet 2.5x3.5 inch` -> "2.5x3.5". Returns "" when the
// name carries no size.
func SizeFromName(name string) string {
	m := sizeInNameRe.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	return m[1] + "x" + m[2]
}
