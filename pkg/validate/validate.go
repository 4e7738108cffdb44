// Package validate checks request values against declarative constraint lists.
//
// Each request shape declares its rules as a []Constraint. Check is a pure
// function: it never touches application state and returns every violation at
// once, keyed by field name.
package validate

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// General is the Errors key for problems not tied to a single field.
const General = "general"

// Constraint describes the rules for one field.
type Constraint struct {
	// Field is the external (JSON) name of the field.
	Field string
	// RequiredMessage is reported when the field is absent. An empty value
	// makes the field optional.
	RequiredMessage string
	// Rule is a validator tag applied to present values, e.g. "min=1,max=50".
	Rule string
	// Message is reported when Rule fails.
	Message string
}

// Errors maps a field name to its human readable error messages.
type Errors map[string][]string

// Add appends msg to the messages for field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Empty reports whether no errors were recorded.
func (e Errors) Empty() bool {
	return len(e) == 0
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], "; "))
	}
	return strings.Join(parts, ", ")
}

var v = validator.New()

// Check validates values against constraints. A missing key or a nil value
// counts as absent. The returned map is empty when everything passes.
func Check(constraints []Constraint, values map[string]any) Errors {
	errs := Errors{}
	for _, c := range constraints {
		val, ok := values[c.Field]
		if !ok || val == nil {
			if c.RequiredMessage != "" {
				errs.Add(c.Field, c.RequiredMessage)
			}
			continue
		}
		if c.Rule == "" {
			continue
		}
		if err := v.Var(val, c.Rule); err != nil {
			errs.Add(c.Field, c.Message)
		}
	}
	return errs
}
