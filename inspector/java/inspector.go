package java

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/viant/afs"
	"github.com/viant/daocheck/analyzer/decl"
)

// ErrSyntax reports source that tree-sitter could not recover into a valid tree
var ErrSyntax = errors.New("java syntax error")

// Inspector parses Java source and emits structural declaration events
type Inspector struct {
	fs afs.Service
}

// NewInspector creates a new Java Inspector; fs defaults to afs.New()
func NewInspector(fs afs.Service) *Inspector {
	if fs == nil {
		fs = afs.New()
	}
	return &Inspector{fs: fs}
}

// InspectSource parses Java source code and emits class and method events to listener in source order
func (i *Inspector) InspectSource(ctx context.Context, src []byte, listener decl.Listener) error {
	tree, err := i.parse(ctx, src)
	if err != nil {
		return err
	}
	defer tree.Close()
	emitter := &emitter{source: src, listener: listener}
	emitter.walk(tree.RootNode(), "")
	return nil
}

// InspectFile downloads a Java source file and emits its declaration events
func (i *Inspector) InspectFile(ctx context.Context, URL string, listener decl.Listener) error {
	src, err := i.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", URL, err)
	}
	if err = i.InspectSource(ctx, src, listener); err != nil {
		return fmt.Errorf("failed to inspect %s: %w", URL, err)
	}
	return nil
}

// Events parses Java source code and returns its declaration events
func (i *Inspector) Events(ctx context.Context, src []byte) ([]*decl.Event, error) {
	collector := &decl.Collector{}
	if err := i.InspectSource(ctx, src, collector); err != nil {
		return nil, err
	}
	return collector.Events, nil
}

func (i *Inspector) parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	if node := findErrorNode(tree.RootNode()); node != nil {
		tree.Close()
		return nil, fmt.Errorf("%w at line %d", ErrSyntax, node.StartPoint().Row+1)
	}
	return tree, nil
}

// findErrorNode returns the first ERROR node; recovered MISSING tokens are tolerated
func findErrorNode(node *sitter.Node) *sitter.Node {
	if node == nil || !node.HasError() {
		return nil
	}
	if node.Type() == "ERROR" {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := findErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

// emitter walks a syntax tree and forwards declaration events
type emitter struct {
	source   []byte
	listener decl.Listener
	types    []string // enclosing type declaration node types
}

func (e *emitter) walk(node *sitter.Node, parentType string) {
	nodeType := node.Type()
	switch {
	case typeDeclarations[nodeType]:
		e.listener.Handle(decl.NewClassOpen(declarationName(node, e.source), false, len(e.types) > 0))
		e.types = append(e.types, nodeType)
		e.walkChildren(node)
		e.types = e.types[:len(e.types)-1]
		e.listener.Handle(decl.NewClassClose())
		return
	case nodeType == "class_body" && (parentType == "object_creation_expression" || parentType == "enum_constant"):
		e.listener.Handle(decl.NewClassOpen("", true, len(e.types) > 0))
		e.types = append(e.types, "class_body")
		e.walkChildren(node)
		e.types = e.types[:len(e.types)-1]
		e.listener.Handle(decl.NewClassClose())
		return
	case nodeType == "method_declaration" || nodeType == "constructor_declaration":
		if method := parseMethodDeclaration(node, e.source, e.inInterface()); method != nil {
			e.listener.Handle(decl.NewMethod(method))
		}
	}
	e.walkChildren(node)
}

func (e *emitter) walkChildren(node *sitter.Node) {
	nodeType := node.Type()
	for i := 0; i < int(node.NamedChildCount()); i++ {
		e.walk(node.NamedChild(i), nodeType)
	}
}

// inInterface reports whether the innermost enclosing type makes members implicitly public
func (e *emitter) inInterface() bool {
	if len(e.types) == 0 {
		return false
	}
	switch e.types[len(e.types)-1] {
	case "interface_declaration", "annotation_type_declaration":
		return true
	}
	return false
}
