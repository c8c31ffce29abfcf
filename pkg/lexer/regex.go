package lexer

import (
	"regexp"
)

type tokenRegex struct {
	Pattern *regexp.Regexp
	Raw     string
}

// Word classification patterns, applied to whole whitespace-delimited words
var tokenRegexes = map[TokenType]tokenRegex{
	NUM:    {regexp.MustCompile(`^-?\d+$`), `^-?\d+$`},
	STRING: {regexp.MustCompile(`^"[^"]*"$`), `^"[^"]*"$`},
	PARAM:  {regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*:[A-Za-z]*$`), `^[A-Za-z_][A-Za-z0-9_]*:[A-Za-z]*$`},
	ID:     {regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`), `^[A-Za-z_][A-Za-z0-9_]*$`},
}

// Classification order for words that are neither keywords nor operators
var tokenPrecedenceOrder = []TokenType{
	NUM, STRING, PARAM, ID,
}

// Get the regex pattern for a token type
func (t TokenType) Regex() *regexp.Regexp {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Pattern
	}

	return nil
}

// Get the raw regex string for a token type
func (t TokenType) RawRegex() string {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Raw
	}

	return ""
}

// MatchToken classifies a single word. Keywords and operators win over the
// regex classes; anything unmatched is ILLEGAL.
func MatchToken(word string) (TokenType, bool) {
	if word == "" {
		return ILLEGAL, false
	}
	if t, ok := Operators[word]; ok {
		return t, true
	}
	if t, ok := Keywords[word]; ok {
		return t, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if regex, ok := tokenRegexes[tokenType]; ok {
			if regex.Pattern.MatchString(word) {
				return tokenType, true
			}
		}
	}

	return ILLEGAL, false
}
