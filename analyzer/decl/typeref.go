package decl

import "strings"

// Void is the return type of methods that return nothing
const Void TypeRef = "void"

// TypeRef is a type reference as written in source, e.g. "Invoice", "List<Invoice>", "T"
type TypeRef string

// String returns the reference text
func (r TypeRef) String() string {
	return string(r)
}

// IsVoid reports whether the reference denotes no value
func (r TypeRef) IsVoid() bool {
	return r == "" || r == Void
}

// IsGeneric reports whether the reference carries type arguments
func (r TypeRef) IsGeneric() bool {
	return strings.Contains(string(r), "<")
}

// SimpleName strips package qualifier, type arguments and array/varargs suffixes,
// e.g. "java.util.List<Invoice>" -> "List", "Invoice[]" -> "Invoice"
func (r TypeRef) SimpleName() string {
	name := string(r)
	if index := strings.Index(name, "<"); index != -1 {
		name = name[:index]
	}
	name = strings.TrimSuffix(name, "...")
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSuffix(name, "[]")
	}
	if index := strings.LastIndex(name, "."); index != -1 {
		name = name[index+1:]
	}
	return name
}
