package ledger

// SortOrder selects one of the four canned presentations of a bucket.
type SortOrder int

const (
	SortDateAscending SortOrder = iota
	SortDateDescending
	SortAmountDescending
	SortAmountAscending
)

var sortOrderLabels = map[SortOrder]string{
	SortDateAscending:    "Date (Older to Newer)",
	SortDateDescending:   "Date (Newer to Older)",
	SortAmountDescending: "Amount (High to Low)",
	SortAmountAscending:  "Amount (Low to High)",
}

// Label returns the human-readable description of the order.
func (o SortOrder) Label() string {
	if label, ok := sortOrderLabels[o]; ok {
		return label
	}
	return sortOrderLabels[SortDateAscending]
}

// ParseSortOrder maps a menu selector ("1".."4") to a SortOrder. An
// unrecognized selector returns the date-ascending default and false so the
// caller can warn instead of failing.
func ParseSortOrder(selector string) (SortOrder, bool) {
	switch selector {
	case "1":
		return SortDateAscending, true
	case "2":
		return SortDateDescending, true
	case "3":
		return SortAmountDescending, true
	case "4":
		return SortAmountAscending, true
	}
	return SortDateAscending, false
}
