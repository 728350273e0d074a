// Package querybuilder assembles GraphQL selection sets and arguments into
// finalized gqlquery.Query nodes.
//
// Concrete field builders embed *Builder and expose one method per field:
//
//     type ProductBuilder struct{ *querybuilder.Builder }
//
//     func NewProduct() *ProductBuilder {
//         return &ProductBuilder{querybuilder.New("Product", "product")}
//     }
//
//     func (p *ProductBuilder) Title() *ProductBuilder {
//         p.SelectField("title")
//         return p
//     }
//
// GetQuery resolves nested builders depth first and returns the root node.
package querybuilder

import (
	"fmt"
	"reflect"

	"github.com/shyptr/gqlquery"
	"github.com/shyptr/gqlquery/errors"
)

// QueryBuilder is implemented by *Builder and by every type embedding it.
type QueryBuilder interface {
	GetQuery() (*gqlquery.Query, error)
	GetObjectName() string
	Kind() Kind
}

var _ QueryBuilder = (*Builder)(nil)

// Builder accumulates the selection set and arguments of one query object.
// It is not safe for concurrent use.
type Builder struct {
	kind         Kind
	query        *gqlquery.Query
	selectionSet []Selection
	arguments    *gqlquery.Arguments
}

func New(kind Kind, objectName string) *Builder {
	return &Builder{
		kind:      kind,
		query:     gqlquery.NewQuery(objectName),
		arguments: gqlquery.NewArguments(),
	}
}

func (b *Builder) Kind() Kind {
	return b.kind
}

func (b *Builder) GetObjectName() string {
	return b.query.GetFieldName()
}

// SelectField appends a field name, a nested QueryBuilder or a finalized
// *gqlquery.Query to the selection set. Any other value, including nil
// builders, is ignored.
//
// Selections must form a tree: a builder that selects itself, directly or
// through a nested builder, makes GetQuery recurse without end.
func (b *Builder) SelectField(field interface{}) *Builder {
	switch f := field.(type) {
	case string:
		b.selectionSet = append(b.selectionSet, RawField(f))
		return b
	case *gqlquery.Query:
		if f != nil {
			b.selectionSet = append(b.selectionSet, Resolved{Query: f})
			return b
		}
	case QueryBuilder:
		if !isNil(f) {
			b.selectionSet = append(b.selectionSet, Nested{Builder: f})
			return b
		}
	}
	log().Debug().
		Str("builder", b.kind.String()).
		Str("type", fmt.Sprintf("%T", field)).
		Msg("ignored unsupported selection")
	return b
}

// SetArgument sets the argument name to value, replacing any previous value.
// Invalid names and values that are not argument values (see
// gqlquery.IsArgumentValue) are ignored.
func (b *Builder) SetArgument(name string, value interface{}) *Builder {
	if !gqlquery.IsName(name) || !gqlquery.IsArgumentValue(value) {
		log().Debug().
			Str("builder", b.kind.String()).
			Str("argument", name).
			Str("type", fmt.Sprintf("%T", value)).
			Msg("ignored unsupported argument")
		return b
	}
	b.arguments.Set(name, value)
	return b
}

func (b *Builder) GetSelectionSet() []Selection {
	return append([]Selection(nil), b.selectionSet...)
}

// SelectionObjectExists reports whether candidate duplicates the most recent
// selection. See GetSelectionObjectIfExists.
func (b *Builder) SelectionObjectExists(candidate QueryBuilder) bool {
	_, ok := b.lastDuplicate(candidate)
	return ok
}

// GetSelectionObjectIfExists returns the most recent selection when it
// duplicates candidate, so that further fields can be merged into it, and
// candidate otherwise.
//
// Only the last entry of the selection set is inspected. It is a duplicate
// when it is a nested builder of the same Kind, unless both are money builders
// bound to different object names.
func (b *Builder) GetSelectionObjectIfExists(candidate QueryBuilder) QueryBuilder {
	if existing, ok := b.lastDuplicate(candidate); ok {
		return existing
	}
	return candidate
}

func (b *Builder) lastDuplicate(candidate QueryBuilder) (QueryBuilder, bool) {
	if len(b.selectionSet) == 0 || isNil(candidate) {
		return nil, false
	}
	// TODO: decide whether the whole selection set should be scanned; only the
	// last entry is compared today and earlier duplicates are not collapsed.
	last, ok := b.selectionSet[len(b.selectionSet)-1].(Nested)
	if !ok || last.Builder.Kind() != candidate.Kind() {
		return nil, false
	}
	if candidate.Kind().IsMoney() && candidate.GetObjectName() != last.Builder.GetObjectName() {
		return nil, false
	}
	return last.Builder, true
}

// GetQuery finalizes the builder. Nested builders are resolved depth first and
// replaced in place by their query nodes, so calling GetQuery again returns the
// same node. It fails with *errors.EmptySelectionSetError when nothing was
// selected.
func (b *Builder) GetQuery() (*gqlquery.Query, error) {
	if len(b.selectionSet) == 0 {
		log().Debug().Str("builder", b.kind.String()).Msg("empty selection set")
		return nil, &errors.EmptySelectionSetError{Builder: b.kind.String()}
	}

	selectionSet := make([]gqlquery.Selection, 0, len(b.selectionSet))
	for i, selection := range b.selectionSet {
		switch s := selection.(type) {
		case RawField:
			selectionSet = append(selectionSet, gqlquery.Field(s))
		case Resolved:
			selectionSet = append(selectionSet, s.Query)
		case Nested:
			query, err := s.Builder.GetQuery()
			if err != nil {
				return nil, err
			}
			b.selectionSet[i] = Resolved{Query: query}
			selectionSet = append(selectionSet, query)
		}
	}

	b.query.SetArguments(b.arguments)
	b.query.SetSelectionSet(selectionSet)
	log().Debug().
		Str("builder", b.kind.String()).
		Str("object", b.GetObjectName()).
		Int("selections", len(selectionSet)).
		Int("arguments", b.arguments.Len()).
		Msg("resolved query")
	return b.query, nil
}

func isNil(qb QueryBuilder) bool {
	if qb == nil {
		return true
	}
	rv := reflect.ValueOf(qb)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
