// Package token defines the closed set of lexical token kinds the
// lexer/parser front end uses to drive the analyzer from source text
// (SPEC_FULL.md §A). None of this package's shapes are depended on by
// internal/sema; it only has to be rich enough to produce internal/ast.
package token

// Kind categorizes a single source token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	Ident

	// Keywords.
	KwArray
	KwBreak
	KwDo
	KwElse
	KwEnd
	KwFor
	KwFunction
	KwIf
	KwIn
	KwLet
	KwNil
	KwOf
	KwThen
	KwTo
	KwType
	KwVar
	KwWhile

	// Literals.
	IntLit
	StringLit

	// Punctuation and operators.
	Comma     // ,
	Colon     // :
	Semicolon // ;
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Dot       // .
	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Eq        // =
	Neq       // <>
	Lt        // <
	Le        // <=
	Gt        // >
	Ge        // >=
	And       // &
	Or        // |
	ColonEq   // :=
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "eof"
	case Ident:
		return "identifier"
	case IntLit:
		return "integer literal"
	case StringLit:
		return "string literal"
	case KwArray, KwBreak, KwDo, KwElse, KwEnd, KwFor, KwFunction, KwIf, KwIn,
		KwLet, KwNil, KwOf, KwThen, KwTo, KwType, KwVar, KwWhile:
		name, _ := keywordText(k)
		return name
	default:
		if text, ok := punctText(k); ok {
			return text
		}
		return "invalid"
	}
}

func punctText(k Kind) (string, bool) {
	switch k {
	case Comma:
		return ",", true
	case Colon:
		return ":", true
	case Semicolon:
		return ";", true
	case LParen:
		return "(", true
	case RParen:
		return ")", true
	case LBracket:
		return "[", true
	case RBracket:
		return "]", true
	case LBrace:
		return "{", true
	case RBrace:
		return "}", true
	case Dot:
		return ".", true
	case Plus:
		return "+", true
	case Minus:
		return "-", true
	case Star:
		return "*", true
	case Slash:
		return "/", true
	case Eq:
		return "=", true
	case Neq:
		return "<>", true
	case Lt:
		return "<", true
	case Le:
		return "<=", true
	case Gt:
		return ">", true
	case Ge:
		return ">=", true
	case And:
		return "&", true
	case Or:
		return "|", true
	case ColonEq:
		return ":=", true
	default:
		return "", false
	}
}
