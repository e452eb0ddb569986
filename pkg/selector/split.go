package selector

// Split decomposes a selector into its ordered match tokens: one optional
// leading identifier, then class and attribute tokens in source order.
//
// The scan is total and never fails. At the first position where no token
// can start (whitespace, a dot with no name behind it, an unterminated
// bracket, any stray character) it stops and returns whatever it has
// recognized so far; an empty or unrecognizable selector yields no tokens.
func Split(s string) []Token {
	var tokens []Token

	i := 0
	if n := scanIdent(s); n > 0 {
		tokens = append(tokens, Token{Kind: KindIdent, Raw: s[:n]})
		i = n
	}

	for i < len(s) {
		switch s[i] {
		case '.':
			n := scanClass(s[i:])
			if n <= 1 {
				return tokens
			}
			tokens = append(tokens, Token{Kind: KindClass, Raw: s[i : i+n]})
			i += n
		case '[':
			n := scanAttr(s[i:])
			if n == 0 {
				return tokens
			}
			tokens = append(tokens, Token{Kind: KindAttr, Raw: s[i : i+n]})
			i += n
		default:
			return tokens
		}
	}
	return tokens
}

// scanIdent returns the length of the maximal identifier run at the start
// of s. Identifiers are letters and digits only.
func scanIdent(s string) int {
	i := 0
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	return i
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// scanClass returns the length of the class token at the start of s, dot
// included. The name runs to the next dot or bracket; a dot with no name
// behind it yields length 1, which the caller treats as no token.
func scanClass(s string) int {
	i := 1
	for i < len(s) && s[i] != '.' && s[i] != '[' {
		i++
	}
	return i
}

// scanAttr returns the length of the bracketed attribute token at the
// start of s, brackets included, or 0 when the bracket never closes.
// Brackets inside single or double quotes do not close the token.
func scanAttr(s string) int {
	var quote byte
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == ']':
			return i + 1
		}
	}
	return 0
}
