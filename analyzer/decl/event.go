package decl

// Kind identifies a structural declaration event
type Kind int

const (
	ClassOpen Kind = iota + 1
	ClassClose
	MethodDeclared
)

func (k Kind) String() string {
	switch k {
	case ClassOpen:
		return "classOpen"
	case ClassClose:
		return "classClose"
	case MethodDeclared:
		return "method"
	}
	return "unknown"
}

// Class describes a class body being opened
type Class struct {
	Name      string // Simple name, empty for anonymous bodies
	Anonymous bool   // Anonymous class body, e.g. new Querier() {...}
	Nested    bool   // Declared inside another type body
}

// Method describes a method or constructor declaration
type Method struct {
	Name       string
	Visibility Visibility
	ReturnType TypeRef            // Void for void methods and constructors
	Parameters []TypeRef          // Parameter types in declaration order
	Bounds     map[string]TypeRef // Method type variable -> declared upper bound
	Line       int                // 1-based line of the declaration, 0 if unknown
}

// Event is a single structural declaration emitted by a parsing front-end
type Event struct {
	Kind   Kind
	Class  *Class  // set for ClassOpen
	Method *Method // set for MethodDeclared
}

// Listener consumes declaration events in source order
type Listener interface {
	Handle(event *Event)
}

// ListenerFunc adapts a function to a Listener
type ListenerFunc func(event *Event)

// Handle calls fn(event)
func (fn ListenerFunc) Handle(event *Event) {
	fn(event)
}

// Collector records every event it receives
type Collector struct {
	Events []*Event
}

// Handle appends an event
func (c *Collector) Handle(event *Event) {
	c.Events = append(c.Events, event)
}

// NewClassOpen creates a class open event
func NewClassOpen(name string, anonymous, nested bool) *Event {
	return &Event{Kind: ClassOpen, Class: &Class{Name: name, Anonymous: anonymous, Nested: nested}}
}

// NewClassClose creates a class close event
func NewClassClose() *Event {
	return &Event{Kind: ClassClose}
}

// NewMethod creates a method declaration event
func NewMethod(method *Method) *Event {
	return &Event{Kind: MethodDeclared, Method: method}
}
