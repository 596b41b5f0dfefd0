package analyzer

// scope is a class body frame; methods declared in an opaque frame are not classified
type scope struct {
	opaque bool
}
