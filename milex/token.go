/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package milex

// Kind identifies the lexical category of a Token.
type Kind uint8

const (
	Caret     Kind = iota // ^
	Comma                 // ,
	Plus                  // +
	Star                  // *
	Equals                // =
	Tilde                 // ~
	At                    // @
	Amp                   // &
	LBracket              // [
	RBracket              // ]
	LBrace                // {
	RBrace                // }
	LParen                // (
	RParen                // )
	Newline               // \n, \r, or \r\n
	Integer               // one or more decimal digits
	String                // [A-Za-z_][A-Za-z0-9_-]*
	CString               // "..." with escapes, unprocessed
	EOF                   // sentinel fed after the last real token of a line
)

// String names the Kind, for diagnostics and test failure messages.
func (k Kind) String() string {
	switch k {
	case Caret:
		return "^"
	case Comma:
		return ","
	case Plus:
		return "+"
	case Star:
		return "*"
	case Equals:
		return "="
	case Tilde:
		return "~"
	case At:
		return "@"
	case Amp:
		return "&"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LParen:
		return "("
	case RParen:
		return ")"
	case Newline:
		return "NEWLINE"
	case Integer:
		return "INTEGER-LITERAL"
	case String:
		return "STRING-LITERAL"
	case CString:
		return "CSTRING"
	case EOF:
		return "EOF"
	default:
		return "?"
	}
}

var punctuation = map[byte]Kind{
	'^': Caret,
	',': Comma,
	'+': Plus,
	'*': Star,
	'=': Equals,
	'~': Tilde,
	'@': At,
	'&': Amp,
	'[': LBracket,
	']': RBracket,
	'{': LBrace,
	'}': RBrace,
	'(': LParen,
	')': RParen,
}

// Token is one lexical unit, with its 1-based, inclusive column span.
// For CString, Text is the content between the quotes, unprocessed
// (escape sequences are not translated by the lexer; see miparse's
// unescape step). For every other kind, Text is the raw source text.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}
