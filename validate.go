package gqlquery

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once

	nameRegexp = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)
)

// NewValidate returns the process-wide validator. Besides the stock tags it
// knows "graphqlname", which accepts strings matching the GraphQL Name grammar.
func NewValidate() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("graphqlname", func(fl validator.FieldLevel) bool {
			return nameRegexp.MatchString(fl.Field().String())
		})
	})
	return validate
}

// IsName reports whether name is a valid GraphQL name.
func IsName(name string) bool {
	return NewValidate().Var(name, "graphqlname") == nil
}
