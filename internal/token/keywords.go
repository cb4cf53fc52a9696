package token

var keywords = map[string]Kind{
	"array":    KwArray,
	"break":    KwBreak,
	"do":       KwDo,
	"else":     KwElse,
	"end":      KwEnd,
	"for":      KwFor,
	"function": KwFunction,
	"if":       KwIf,
	"in":       KwIn,
	"let":      KwLet,
	"nil":      KwNil,
	"of":       KwOf,
	"then":     KwThen,
	"to":       KwTo,
	"type":     KwType,
	"var":      KwVar,
	"while":    KwWhile,
}

var keywordNames = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords))
	for text, k := range keywords {
		m[k] = text
	}
	return m
}()

// LookupKeyword reports the keyword Kind for ident, if any. Tiger
// keywords are lowercase-only; an identifier that merely matches one
// case-insensitively is still an ordinary Ident.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

func keywordText(k Kind) (string, bool) {
	name, ok := keywordNames[k]
	return name, ok
}
