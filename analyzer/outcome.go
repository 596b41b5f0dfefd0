package analyzer

// Outcome is the result of matching one type reference against an entity
type Outcome int

const (
	Mismatch Outcome = iota // unrelated to the entity and not exempt
	Trivial                 // whitelisted primitive/value type
	Match                   // tied to the entity
)

func (o Outcome) String() string {
	switch o {
	case Match:
		return "match"
	case Trivial:
		return "trivial"
	}
	return "mismatch"
}

// Verdict is the classification of a method
type Verdict int

const (
	NonConforming Verdict = iota
	Conforming
)

func (v Verdict) String() string {
	if v == Conforming {
		return "conforming"
	}
	return "nonConforming"
}
