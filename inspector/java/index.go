package java

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/daocheck/analyzer/kb"
)

// Index records enumerations and declared supertypes of every type in src and
// returns the name of the first top-level type, if any
func (i *Inspector) Index(ctx context.Context, src []byte, builder *kb.Builder) (string, error) {
	tree, err := i.parse(ctx, src)
	if err != nil {
		return "", err
	}
	defer tree.Close()
	root := tree.RootNode()
	indexTypes(root, src, builder)
	return topLevelType(root, src), nil
}

// IndexFile downloads and indexes a Java source file
func (i *Inspector) IndexFile(ctx context.Context, URL string, builder *kb.Builder) (string, error) {
	src, err := i.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", URL, err)
	}
	name, err := i.Index(ctx, src, builder)
	if err != nil {
		return "", fmt.Errorf("failed to index %s: %w", URL, err)
	}
	return name, nil
}

func indexTypes(node *sitter.Node, source []byte, builder *kb.Builder) {
	nodeType := node.Type()
	if typeDeclarations[nodeType] {
		name := declarationName(node, source)
		if nodeType == "enum_declaration" {
			builder.AddEnumerator(name)
		}
		if supertypes := declaredSupertypes(node, source); len(supertypes) > 0 {
			builder.AddSupertype(name, supertypes...)
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		indexTypes(node.NamedChild(i), source, builder)
	}
}

// declaredSupertypes returns simple names from extends/implements clauses
func declaredSupertypes(node *sitter.Node, source []byte) []string {
	var result []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "superclass", "super_interfaces", "extends_interfaces":
			for _, typeNode := range collectTypes(child) {
				result = append(result, typeText(typeNode, source).SimpleName())
			}
		}
	}
	return result
}

func topLevelType(root *sitter.Node, source []byte) string {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if typeDeclarations[child.Type()] {
			return declarationName(child, source)
		}
	}
	return ""
}
