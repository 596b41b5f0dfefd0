package analyzer

// DefaultTrivialTypes lists primitive and value types exempt from entity validation
var DefaultTrivialTypes = []string{
	"boolean", "Boolean",
	"byte", "Byte",
	"short", "Short",
	"int", "Integer",
	"long", "Long",
	"float", "Float",
	"double", "Double",
	"char", "Character",
	"String",
	"BigDecimal", "BigInteger", "Number",
	"Calendar", "Date", "Timestamp",
	"LocalDate", "LocalDateTime", "LocalTime", "Instant",
}

func newTypeSet(names []string) map[string]bool {
	result := make(map[string]bool, len(names))
	for _, name := range names {
		if name != "" {
			result[name] = true
		}
	}
	return result
}
