package kinds

// Selection entry kinds of an unfinalized selection set.
const (
	RawField = "RawField"
	Nested   = "Nested"
	Resolved = "Resolved"
)
