package gqlquery

import "github.com/vektah/gqlparser/v2/ast"

type FormatOption func(*FormatOptions)

// FormatOptions controls the operation wrapped around the rendered root field.
type FormatOptions struct {
	Operation string     `validate:"oneof=query mutation subscription"`
	Name      string     `validate:"omitempty,graphqlname"`
	Variables []Variable `validate:"dive"`
}

// Variable is a variable definition of the rendered operation, e.g.
//
//     $id: ID! = "gid://1"
//
// Arguments refer to it with NewRawObject("$id").
type Variable struct {
	Name     string `validate:"required,graphqlname"`
	Type     string `validate:"required,graphqlname"`
	Required bool
	Default  interface{}
}

func defaultFormatOptions() FormatOptions {
	return FormatOptions{Operation: string(ast.Query)}
}

func Operation(operation ast.Operation) FormatOption {
	return func(o *FormatOptions) {
		o.Operation = string(operation)
	}
}

func Mutation() FormatOption {
	return Operation(ast.Mutation)
}

func OperationName(name string) FormatOption {
	return func(o *FormatOptions) {
		o.Name = name
	}
}

func WithVariables(variables ...Variable) FormatOption {
	return func(o *FormatOptions) {
		o.Variables = append(o.Variables, variables...)
	}
}
