// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package steps

import "fmt"

// Count is the number of form steps in the application flow.
const Count = 7

// Definition describes one step of the application form.
type Definition struct {
	Step     int
	Name     string
	Required []string
}

// definitions is the fixed step flow. Steps are identified by number on the
// wire; Required lists the payload fields a write must carry.
var definitions = map[int]Definition{
	1: {Step: 1, Name: "loan", Required: []string{"loanAmount", "loanPeriod"}},
	2: {Step: 2, Name: "identity", Required: []string{"idNumber", "realName"}},
	3: {Step: 3, Name: "profile", Required: []string{"education", "maritalStatus", "address"}},
	4: {Step: 4, Name: "employment", Required: []string{"employer", "monthlyIncome"}},
	5: {Step: 5, Name: "contacts", Required: []string{"contact1Name", "contact1Phone", "contact2Name", "contact2Phone"}},
	6: {Step: 6, Name: "verification", Required: []string{"smsCode"}},
	7: {Step: 7, Name: "bank", Required: []string{"bankCardNumber"}},
}

// ValidationError reports a rejected step payload. Field names the missing
// field, or is empty when the step number itself is unrecognized.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Name returns the step's name, or "" for unknown step numbers.
func Name(step int) string {
	return definitions[step].Name
}

// Lookup returns the definition for a step number.
func Lookup(step int) (Definition, bool) {
	def, ok := definitions[step]
	return def, ok
}

// Validate checks a raw step payload against the step's required field set.
// Unknown extra fields are ignored. A field is present when its value is
// non-nil and, for strings, non-empty.
func Validate(step int, data map[string]any) *ValidationError {
	def, ok := definitions[step]
	if !ok {
		return &ValidationError{Message: fmt.Sprintf("unknown step %d (valid steps are 1-%d)", step, Count)}
	}

	for _, field := range def.Required {
		v, exists := data[field]
		if !exists || v == nil {
			return &ValidationError{Field: field, Message: "required field missing"}
		}
		if s, isStr := v.(string); isStr && s == "" {
			return &ValidationError{Field: field, Message: "required field missing"}
		}
	}

	return nil
}
