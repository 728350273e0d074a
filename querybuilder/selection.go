package querybuilder

import (
	"github.com/shyptr/gqlquery"
	"github.com/shyptr/gqlquery/internal/kinds"
)

// Selection is an entry of a builder's selection set: a RawField, a Nested
// builder that has not been finalized yet, or a Resolved query node.
type Selection interface {
	SelectionKind() string
	isSelection()
}

var _ Selection = RawField("")
var _ Selection = Nested{}
var _ Selection = Resolved{}

type RawField string

func (RawField) SelectionKind() string { return kinds.RawField }
func (RawField) isSelection()          {}

type Nested struct {
	Builder QueryBuilder
}

func (Nested) SelectionKind() string { return kinds.Nested }
func (Nested) isSelection()          {}

type Resolved struct {
	Query *gqlquery.Query
}

func (Resolved) SelectionKind() string { return kinds.Resolved }
func (Resolved) isSelection()          {}
