package token

type Type int

const (
	WORD Type = iota
	NUMBER
)

func (t Type) String() string {
	switch t {
	case WORD:
		return "WORD"
	case NUMBER:
		return "NUMBER"
	default:
		return "UNKNOWN"
	}
}

// Token represents a single search term with its type and literal value.
type Token struct {
	Type  Type
	Value string
}
