package java

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/daocheck/analyzer/decl"
)

// typeText returns the source text of a type node without annotations and with
// whitespace dropped between tokens, e.g. "Map<A, B>" -> "Map<A,B>"
func typeText(node *sitter.Node, source []byte) decl.TypeRef {
	builder := &strings.Builder{}
	writeTypeTokens(builder, node, source)
	return decl.TypeRef(builder.String())
}

func writeTypeTokens(builder *strings.Builder, node *sitter.Node, source []byte) {
	switch node.Type() {
	case "annotation", "marker_annotation", "comment":
		return
	}
	if node.ChildCount() == 0 {
		token := node.Content(source)
		if token == "" {
			return
		}
		if builder.Len() > 0 {
			text := builder.String()
			if needsSpace(text[len(text)-1], token[0]) {
				builder.WriteByte(' ')
			}
		}
		builder.WriteString(token)
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		writeTypeTokens(builder, node.Child(i), source)
	}
}

// needsSpace keeps keywords of wildcard bounds apart, e.g. "? extends Invoice"
func needsSpace(prev, next byte) bool {
	if !isWordByte(next) {
		return false
	}
	return isWordByte(prev) || prev == '?'
}

func isWordByte(b byte) bool {
	return b == '_' || b == '$' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

// isTypeNode reports whether node is one of the grammar's type nodes
func isTypeNode(node *sitter.Node) bool {
	switch node.Type() {
	case "type_identifier", "scoped_type_identifier", "generic_type", "array_type",
		"integral_type", "floating_point_type", "boolean_type", "void_type", "annotated_type":
		return true
	}
	return false
}

// extractTypeParameters returns the first declared bound of each type parameter,
// e.g. <T extends Invoice & Serializable> -> T: Invoice
func extractTypeParameters(node *sitter.Node, source []byte) map[string]decl.TypeRef {
	var typeParamNode *sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "type_parameters" {
			typeParamNode = child
			break
		}
	}
	if typeParamNode == nil {
		return nil
	}

	var bounds map[string]decl.TypeRef
	for i := 0; i < int(typeParamNode.NamedChildCount()); i++ {
		paramNode := typeParamNode.NamedChild(i)
		if paramNode.Type() != "type_parameter" {
			continue
		}
		var name string
		var bound decl.TypeRef
		for j := 0; j < int(paramNode.NamedChildCount()); j++ {
			child := paramNode.NamedChild(j)
			switch child.Type() {
			case "type_identifier", "identifier":
				if name == "" {
					name = child.Content(source)
				}
			case "type_bound":
				if child.NamedChildCount() > 0 {
					bound = typeText(child.NamedChild(0), source)
				}
			}
		}
		if name == "" || bound == "" {
			continue
		}
		if bounds == nil {
			bounds = map[string]decl.TypeRef{}
		}
		bounds[name] = bound
	}
	return bounds
}

// collectTypes returns the type nodes of a superclass, super_interfaces or extends_interfaces clause
func collectTypes(node *sitter.Node) []*sitter.Node {
	var result []*sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "type_list" {
			result = append(result, collectTypes(child)...)
			continue
		}
		if isTypeNode(child) {
			result = append(result, child)
		}
	}
	return result
}
