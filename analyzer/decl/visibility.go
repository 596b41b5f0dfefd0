package decl

// Visibility represents a declared access level
type Visibility int

const (
	Package Visibility = iota // no access modifier
	Private
	Protected
	Public
)

// VisibilityOf returns the access level implied by a list of modifiers
func VisibilityOf(modifiers []string) Visibility {
	for _, modifier := range modifiers {
		switch modifier {
		case "public":
			return Public
		case "protected":
			return Protected
		case "private":
			return Private
		}
	}
	return Package
}

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Private:
		return "private"
	}
	return "package"
}
