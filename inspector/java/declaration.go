package java

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/daocheck/analyzer/decl"
)

// typeDeclarations lists node types that open a class scope
var typeDeclarations = map[string]bool{
	"class_declaration":           true,
	"interface_declaration":       true,
	"enum_declaration":            true,
	"record_declaration":          true,
	"annotation_type_declaration": true,
}

// parseModifiers returns modifier keywords of a declaration, annotations excluded
func parseModifiers(node *sitter.Node) []string {
	var modifiersNode *sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == "modifiers" {
			modifiersNode = child
			break
		}
	}
	if modifiersNode == nil {
		return nil
	}
	var modifiers []string
	for i := 0; i < int(modifiersNode.ChildCount()); i++ {
		modifier := modifiersNode.Child(i)
		if modifier.IsNamed() {
			continue
		}
		modifiers = append(modifiers, modifier.Type())
	}
	return modifiers
}

// parseMethodDeclaration converts a method or constructor node into a declaration.
// Constructors carry a void return type.
func parseMethodDeclaration(node *sitter.Node, source []byte, defaultPublic bool) *decl.Method {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	modifiers := parseModifiers(node)
	method := &decl.Method{
		Name:       nameNode.Content(source),
		Visibility: decl.VisibilityOf(modifiers),
		ReturnType: decl.Void,
		Bounds:     extractTypeParameters(node, source),
		Line:       int(node.StartPoint().Row) + 1,
	}
	if method.Visibility == decl.Package && defaultPublic {
		method.Visibility = decl.Public
	}
	if node.Type() == "method_declaration" {
		if typeNode := node.ChildByFieldName("type"); typeNode != nil {
			method.ReturnType = typeText(typeNode, source)
		}
		if dimensions := node.ChildByFieldName("dimensions"); dimensions != nil && !method.ReturnType.IsVoid() {
			method.ReturnType += typeText(dimensions, source)
		}
	}
	if parametersNode := node.ChildByFieldName("parameters"); parametersNode != nil {
		method.Parameters = parseParameters(parametersNode, source)
	}
	return method
}

// parseParameters returns parameter types in declaration order; receiver parameters are skipped
func parseParameters(node *sitter.Node, source []byte) []decl.TypeRef {
	var parameters []decl.TypeRef
	for i := 0; i < int(node.NamedChildCount()); i++ {
		paramNode := node.NamedChild(i)
		switch paramNode.Type() {
		case "formal_parameter":
			typeNode := paramNode.ChildByFieldName("type")
			if typeNode == nil {
				continue
			}
			paramType := typeText(typeNode, source)
			if dimensions := paramNode.ChildByFieldName("dimensions"); dimensions != nil {
				paramType += typeText(dimensions, source)
			}
			parameters = append(parameters, paramType)
		case "spread_parameter":
			for j := 0; j < int(paramNode.NamedChildCount()); j++ {
				if child := paramNode.NamedChild(j); isTypeNode(child) {
					parameters = append(parameters, typeText(child, source)+"...")
					break
				}
			}
		}
	}
	return parameters
}

// declarationName returns the declared name of a type declaration node
func declarationName(node *sitter.Node, source []byte) string {
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		return nameNode.Content(source)
	}
	return ""
}
