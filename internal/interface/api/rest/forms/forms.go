// Package forms is a declarative form-validation engine: a schema maps
// field names to an ordered list of rules, and validating a candidate
// value set yields the first failing rule's message per field. Validation
// is a pure function of the values, so callers can re-run it on every
// field change as well as on submit.
package forms

import (
	"net/mail"
	"regexp"
	"strings"
)

type (
	Rule struct {
		Check   func(value string) bool
		Message string
	}

	Field struct {
		Name  string
		Rules []Rule
	}

	Schema []Field
)

func Required(message string) Rule {
	return Rule{
		Check:   func(value string) bool { return strings.TrimSpace(value) != "" },
		Message: message,
	}
}

func MinLen(n int, message string) Rule {
	return Rule{
		Check:   func(value string) bool { return len([]rune(value)) >= n },
		Message: message,
	}
}

func Email(message string) Rule {
	return Rule{
		Check: func(value string) bool {
			_, err := mail.ParseAddress(strings.TrimSpace(value))
			return err == nil
		},
		Message: message,
	}
}

func Match(re *regexp.Regexp, message string) Rule {
	return Rule{
		Check:   func(value string) bool { return re.MatchString(value) },
		Message: message,
	}
}

// Validate checks every schema field against values and returns the first
// failing rule's message keyed by field name. A nil map means the form
// passes and may be submitted.
func (s Schema) Validate(values map[string]string) map[string]string {
	errs := make(map[string]string)

	for _, f := range s {
		value := values[f.Name]
		for _, r := range f.Rules {
			if !r.Check(value) {
				errs[f.Name] = r.Message
				break
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateField re-validates a single field, for live per-change checks.
// The second return reports whether the schema knows the field at all.
func (s Schema) ValidateField(name, value string) (string, bool) {
	for _, f := range s {
		if f.Name != name {
			continue
		}
		for _, r := range f.Rules {
			if !r.Check(value) {
				return r.Message, true
			}
		}
		return "", true
	}

	return "", false
}
