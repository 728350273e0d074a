// Package gqlquery holds finalized GraphQL query nodes and renders them as
// query text.
package gqlquery

import "github.com/shyptr/gqlquery/errors"

// Selection is one entry of a finalized selection set: either a Field or a
// nested *Query.
type Selection interface {
	// non-op interface, just to identify the types that implement Selection
	isSelection()
}

var _ Selection = Field("")
var _ Selection = (*Query)(nil)

// Field is a leaf selection, e.g. "id" in
//
//     product { id }
type Field string

func (Field) isSelection() {}

// Query is a finalized GraphQL field selection: an object name, its arguments
// and its sub-selections. Query nodes are produced by builders and handed to
// Format; callers should treat them as read-only.
type Query struct {
	name         string
	alias        string
	arguments    *Arguments
	selectionSet []Selection
}

func (*Query) isSelection() {}

func NewQuery(name string) *Query {
	return &Query{
		name:      name,
		arguments: NewArguments(),
	}
}

func (q *Query) GetFieldName() string {
	return q.name
}

func (q *Query) Alias() string {
	return q.alias
}

// SetAlias makes the field render as "alias: name". An empty alias clears it.
func (q *Query) SetAlias(alias string) error {
	if alias != "" && !IsName(alias) {
		return errors.New("invalid alias %q for %s", alias, q.name)
	}
	q.alias = alias
	return nil
}

func (q *Query) SetArguments(arguments *Arguments) {
	if arguments == nil {
		q.arguments = NewArguments()
		return
	}
	q.arguments = arguments.Clone()
}

func (q *Query) SetSelectionSet(selectionSet []Selection) {
	q.selectionSet = append([]Selection(nil), selectionSet...)
}

func (q *Query) Arguments() *Arguments {
	return q.arguments.Clone()
}

func (q *Query) SelectionSet() []Selection {
	return append([]Selection(nil), q.selectionSet...)
}

// String renders q as an anonymous query operation. See Format.
func (q *Query) String() string {
	s, err := Format(q)
	if err != nil {
		return ""
	}
	return s
}
