package analyzer

import (
	"strconv"
	"strings"

	"github.com/viant/daocheck/analyzer/decl"
)

// BuildKey returns an overload safe method key: "name/0" or "name/arity[type1,type2]".
// Parameter types are used exactly as given.
func BuildKey(name string, parameters []decl.TypeRef) string {
	builder := strings.Builder{}
	builder.WriteString(name)
	builder.WriteString("/")
	builder.WriteString(strconv.Itoa(len(parameters)))
	if len(parameters) == 0 {
		return builder.String()
	}
	builder.WriteString("[")
	for i, parameter := range parameters {
		if i > 0 {
			builder.WriteString(",")
		}
		builder.WriteString(string(parameter))
	}
	builder.WriteString("]")
	return builder.String()
}
