package base

import (
	"strings"

	"github.com/google/uuid"
)

// Variable names the JavaScript variable an object is rendered as.
// It is embedded by every object of the map model.
//
// The name is the prefix followed by a random hexadecimal suffix, generated the
// first time it is needed. Generation is not synchronized; callers that share a
// graph across goroutines should read the names once before fanning out.
type Variable struct {
	prefix string
	name   string
}

// NewVariable returns a Variable with the given prefix and a generated name.
func NewVariable(prefix string) Variable {
	return Variable{prefix: prefix, name: prefix + uniqueSuffix()}
}

// JavascriptVariable returns the variable name, generating it if needed.
func (v *Variable) JavascriptVariable() string {
	if v.name == "" {
		v.name = v.prefix + uniqueSuffix()
	}
	return v.name
}

// SetJavascriptVariable overrides the generated variable name.
func (v *Variable) SetJavascriptVariable(name string) {
	v.name = name
}

// PrefixJavascriptVariable returns the prefix used for generated names.
func (v *Variable) PrefixJavascriptVariable() string {
	return v.prefix
}

// SetPrefixJavascriptVariable changes the prefix and regenerates the name.
func (v *Variable) SetPrefixJavascriptVariable(prefix string) {
	v.prefix = prefix
	v.name = prefix + uniqueSuffix()
}

func uniqueSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
