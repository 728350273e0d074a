package querybuilder

import "strings"

// moneyMarker identifies the generic money value-object builders, which are
// reused for several distinctly named fields (price, compareAtPrice, ...).
const moneyMarker = "Money"

// Kind tags a concrete builder variant. Builders of equal kind select the same
// GraphQL type and are candidates for deduplication.
type Kind string

// IsMoney reports whether k belongs to the money value-object category.
func (k Kind) IsMoney() bool {
	return strings.Contains(string(k), moneyMarker)
}

func (k Kind) String() string {
	return string(k)
}
