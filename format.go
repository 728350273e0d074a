package gqlquery

import (
	"bytes"
	"reflect"
	"sort"
	"strconv"

	"github.com/shyptr/gqlquery/errors"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// Format renders q as the single root field of a GraphQL operation. Argument
// values that are not argument values (see IsArgumentValue) are an error.
func Format(q *Query, opts ...FormatOption) (string, error) {
	doc, err := Document(q, opts...)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(doc)
	return buf.String(), nil
}

// Document converts q into a gqlparser query document holding one operation.
func Document(q *Query, opts ...FormatOption) (*ast.QueryDocument, error) {
	if q == nil {
		return nil, errors.New("cannot format a nil query")
	}
	o := defaultFormatOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := NewValidate().Struct(o); err != nil {
		return nil, errors.New("invalid format options: %s", err)
	}

	root, err := fieldNode(q)
	if err != nil {
		return nil, err
	}
	op := &ast.OperationDefinition{
		Operation:    ast.Operation(o.Operation),
		Name:         o.Name,
		SelectionSet: ast.SelectionSet{root},
	}
	for _, v := range o.Variables {
		def := &ast.VariableDefinition{
			Variable: v.Name,
			Type:     &ast.Type{NamedType: v.Type, NonNull: v.Required},
		}
		if v.Default != nil {
			if !IsArgumentValue(v.Default) {
				return nil, errors.New("unsupported default value %T for variable %s", v.Default, v.Name)
			}
			def.DefaultValue = valueNode(reflect.ValueOf(v.Default))
		}
		op.VariableDefinitions = append(op.VariableDefinitions, def)
	}
	return &ast.QueryDocument{Operations: ast.OperationList{op}}, nil
}

func fieldNode(q *Query) (*ast.Field, error) {
	field := &ast.Field{
		Alias: q.alias,
		Name:  q.name,
	}
	for _, name := range q.arguments.Names() {
		value, _ := q.arguments.Get(name)
		if !IsName(name) || !IsArgumentValue(value) {
			return nil, errors.New("unsupported argument %s: %T on %s", name, value, q.name)
		}
		field.Arguments = append(field.Arguments, &ast.Argument{
			Name:  name,
			Value: valueNode(reflect.ValueOf(value)),
		})
	}
	for _, selection := range q.selectionSet {
		switch s := selection.(type) {
		case Field:
			field.SelectionSet = append(field.SelectionSet, &ast.Field{Name: string(s)})
		case *Query:
			child, err := fieldNode(s)
			if err != nil {
				return nil, err
			}
			field.SelectionSet = append(field.SelectionSet, child)
		}
	}
	return field, nil
}

func valueNode(rv reflect.Value) *ast.Value {
	if !rv.IsValid() {
		return &ast.Value{Kind: ast.NullValue, Raw: "null"}
	}
	if raw, ok := rv.Interface().(RawObject); ok {
		// EnumValue is printed verbatim by the formatter.
		return &ast.Value{Kind: ast.EnumValue, Raw: raw.raw}
	}
	switch rv.Kind() {
	case reflect.Bool:
		return &ast.Value{Kind: ast.BooleanValue, Raw: strconv.FormatBool(rv.Bool())}
	case reflect.String:
		return &ast.Value{Kind: ast.StringValue, Raw: rv.String()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatInt(rv.Int(), 10)}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatUint(rv.Uint(), 10)}
	case reflect.Float32, reflect.Float64:
		return &ast.Value{Kind: ast.FloatValue, Raw: strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())}
	case reflect.Slice, reflect.Array:
		list := &ast.Value{Kind: ast.ListValue}
		for i := 0; i < rv.Len(); i++ {
			list.Children = append(list.Children, &ast.ChildValue{Value: valueNode(rv.Index(i))})
		}
		return list
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		// map iteration order is random; sort for stable output
		sort.Strings(keys)
		object := &ast.Value{Kind: ast.ObjectValue}
		for _, k := range keys {
			object.Children = append(object.Children, &ast.ChildValue{
				Name:  k,
				Value: valueNode(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))),
			})
		}
		return object
	case reflect.Interface:
		return valueNode(rv.Elem())
	}
	return &ast.Value{Kind: ast.NullValue, Raw: "null"}
}
