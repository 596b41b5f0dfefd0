package analyzer

import "github.com/viant/daocheck/analyzer/decl"

// Walker consumes the declaration events of one source file and classifies the
// public methods of its DAO class. A Walker is not safe for concurrent use.
type Walker struct {
	checker   *Checker
	scopes    []*scope
	opened    bool
	className string
	oracle    *Oracle
	result    *Result
}

// Handle processes a single declaration event
func (w *Walker) Handle(event *decl.Event) {
	if event == nil {
		return
	}
	switch event.Kind {
	case decl.ClassOpen:
		w.openClass(event.Class)
	case decl.ClassClose:
		if len(w.scopes) > 0 {
			w.scopes = w.scopes[:len(w.scopes)-1]
		}
	case decl.MethodDeclared:
		w.declareMethod(event.Method)
	}
}

// Walk processes events in order and returns the result
func (w *Walker) Walk(events []*decl.Event) *Result {
	for _, event := range events {
		w.Handle(event)
	}
	return w.result
}

// Result returns the result accumulated so far
func (w *Walker) Result() *Result {
	return w.result
}

// ClassName returns the DAO class name, empty until the first class opens
func (w *Walker) ClassName() string {
	return w.className
}

// Entity returns the entity name derived from the DAO class name
func (w *Walker) Entity() string {
	if w.oracle == nil {
		return ""
	}
	return w.oracle.entity
}

func (w *Walker) openClass(class *decl.Class) {
	if class == nil {
		class = &decl.Class{}
	}
	if w.opened {
		w.scopes = append(w.scopes, &scope{opaque: true})
		return
	}
	w.opened = true
	w.className = class.Name
	w.oracle = w.checker.Oracle(w.checker.EntityName(class.Name))
	w.scopes = append(w.scopes, &scope{})
}

func (w *Walker) declareMethod(method *decl.Method) {
	if method == nil || len(w.scopes) == 0 {
		return
	}
	if w.scopes[len(w.scopes)-1].opaque {
		return
	}
	if method.Visibility != decl.Public || method.Name == w.className {
		return
	}
	w.result.Record(BuildKey(method.Name, method.Parameters), w.oracle.Judge(method), method.Line)
}
