package command

import "strings"

// Tokenize splits a raw input line into tokens.
//
// A double quote toggles quoting and is dropped; a space outside quotes ends
// the current token. An unterminated quote runs to the end of the line.
// Only the ASCII space separates tokens, tabs are kept as part of a token.
func Tokenize(input string) []string {
	var (
		tokens   []string
		current  strings.Builder
		inQuotes bool
	)

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

// unquote strips leading and trailing double quotes from a positional
// argument. Tokenize already removes every quote, so this only changes
// arguments handed to Execute directly; it is kept for compatibility.
func unquote(arg string) string {
	return strings.Trim(arg, `"`)
}
