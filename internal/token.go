package internal

// tokenType holds the lexical class of a token
type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Keywords.
	// int, print
	tkKwInt
	tkKwPrint

	// Literals.
	// *variable*, 123
	tkIdentifier
	tkNumber

	// Operators.
	// +, -, *, /, =
	tkPlus
	tkMinus
	tkStar
	tkSlash
	tkAssign

	// Symbols.
	// ;, (, )
	tkSemicolon
	tkLeftParen
	tkRightParen
)

type token struct {
	token  tokenType
	lexeme string
	line   int
	column int
}

// category returns the class name a token is reported under
func (t token) category() string {
	switch t.token {
	case tkKwInt, tkKwPrint:
		return "KEYWORD"
	case tkIdentifier:
		return "IDENTIFIER"
	case tkNumber:
		return "NUMBER"
	case tkPlus, tkMinus, tkStar, tkSlash, tkAssign:
		return "OPERATOR"
	case tkSemicolon, tkLeftParen, tkRightParen:
		return "SYMBOL"
	}
	return "EOF"
}
