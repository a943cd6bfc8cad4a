// Package validate checks decoded JSON payloads against declarative field
// rules before they are turned into domain values.
//
// Evaluation order is fixed: the document must be an object, then every
// declared property that is present is type-checked in declaration order,
// then every required property is checked for presence in declaration
// order. The first violation found is the one reported.
package validate

import (
	"fmt"
)

// Rule declares one property of an object payload.
type Rule struct {
	Name     string
	Type     Kind
	Required bool
}

// Schema is an ordered list of property rules. Properties without a rule
// are accepted and ignored.
type Schema struct {
	Rules []Rule
}

// PostSchema is applied to create-post payloads.
var PostSchema = Schema{
	Rules: []Rule{
		{Name: "title", Type: String, Required: true},
		{Name: "body", Type: String, Required: true},
	},
}

// ViolationKind tags a ValidationError.
type ViolationKind int

const (
	WrongType ViolationKind = iota
	MissingProperty
)

// ValidationError describes the first rule a payload broke.
type ValidationError struct {
	Kind     ViolationKind
	Field    string // property name; empty when the document itself is wrong
	Value    Value  // offending value for WrongType
	Expected Kind
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingProperty:
		return fmt.Sprintf("'%s' is a required property", e.Field)
	default:
		return fmt.Sprintf("%s is not of type '%s'", Repr(e.Value), e.Expected)
	}
}

// Validate returns nil when doc satisfies s, otherwise a *ValidationError.
func (s Schema) Validate(doc Value) error {
	if doc.Kind != Object {
		return &ValidationError{Kind: WrongType, Value: doc, Expected: Object}
	}

	for _, rule := range s.Rules {
		v, ok := doc.Lookup(rule.Name)
		if ok && !matches(v, rule.Type) {
			return &ValidationError{Kind: WrongType, Field: rule.Name, Value: v, Expected: rule.Type}
		}
	}

	for _, rule := range s.Rules {
		if !rule.Required {
			continue
		}
		if _, ok := doc.Lookup(rule.Name); !ok {
			return &ValidationError{Kind: MissingProperty, Field: rule.Name}
		}
	}

	return nil
}

func matches(v Value, want Kind) bool {
	return v.Kind == want
}
