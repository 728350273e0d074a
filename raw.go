package gqlquery

// RawObject is an argument value written into the query text as is, without
// quoting or escaping. Use it for enum values, variable references ("$id") or
// pre-rendered input objects.
type RawObject struct {
	raw string
}

func NewRawObject(raw string) RawObject {
	return RawObject{raw: raw}
}

func (r RawObject) String() string {
	return r.raw
}
