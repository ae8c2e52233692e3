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

import (
	"errors"
)

// ErrUnterminatedString is returned by Next when a c-string literal is not
// closed by an unescaped quote before the line ends.
var ErrUnterminatedString = errors.New("milex: unterminated c-string")

// ErrUnexpectedChar is returned by Next when a byte does not begin any
// recognized token.
var ErrUnexpectedChar = errors.New("milex: unexpected character")

// Lexer scans one already-isolated line of MI text. A Lexer is re-entrant:
// it holds no state beyond the line it was constructed with, and column
// numbering always starts at 1.
type Lexer struct {
	line []byte
	pos  int // 0-based byte offset into line
}

// New returns a Lexer over line. The line is not copied; callers must not
// mutate it while the Lexer is in use.
func New(line []byte) *Lexer {
	return &Lexer{line: line}
}

func (l *Lexer) col() int {
	return l.pos + 1
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentCont(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-'
}

// Next returns the next Token. Once the line is exhausted it returns an
// EOF token repeatedly; it never panics or blocks.
func (l *Lexer) Next() (Token, error) {
	l.skipSpaces()

	if l.pos >= len(l.line) {
		return Token{Kind: EOF, Start: l.col(), End: l.col()}, nil
	}

	start := l.col()
	c := l.line[l.pos]

	switch {
	case c == '\r':
		if l.pos+1 < len(l.line) && l.line[l.pos+1] == '\n' {
			l.pos += 2
			return Token{Kind: Newline, Text: "\r\n", Start: start, End: start + 1}, nil
		}
		l.pos++
		return Token{Kind: Newline, Text: "\r", Start: start, End: start}, nil

	case c == '\n':
		l.pos++
		return Token{Kind: Newline, Text: "\n", Start: start, End: start}, nil

	case c == '"':
		return l.lexCString(start)

	case isDigit(c):
		return l.lexInteger(start), nil

	case isLetter(c):
		return l.lexString(start), nil
	}

	if kind, ok := punctuation[c]; ok {
		l.pos++
		return Token{Kind: kind, Text: string(c), Start: start, End: start}, nil
	}

	l.pos++
	return Token{Kind: EOF, Text: string(c), Start: start, End: start}, ErrUnexpectedChar
}

func (l *Lexer) skipSpaces() {
	for l.pos < len(l.line) && l.line[l.pos] == ' ' {
		l.pos++
	}
}

func (l *Lexer) lexInteger(start int) Token {
	s := l.pos
	for l.pos < len(l.line) && isDigit(l.line[l.pos]) {
		l.pos++
	}
	text := string(l.line[s:l.pos])
	return Token{Kind: Integer, Text: text, Start: start, End: l.col() - 1}
}

func (l *Lexer) lexString(start int) Token {
	s := l.pos
	l.pos++ // first char already validated as a letter/underscore
	for l.pos < len(l.line) && isIdentCont(l.line[l.pos]) {
		l.pos++
	}
	text := string(l.line[s:l.pos])
	return Token{Kind: String, Text: text, Start: start, End: l.col() - 1}
}

// lexCString consumes a quoted c-string, leaving escape sequences intact
// in Text for miparse to unescape. The opening and closing quotes are not
// included in Text but are included in the reported column span.
func (l *Lexer) lexCString(start int) (Token, error) {
	l.pos++ // consume opening quote
	s := l.pos

	for l.pos < len(l.line) {
		c := l.line[l.pos]
		if c == '\\' && l.pos+1 < len(l.line) {
			l.pos += 2
			continue
		}
		if c == '"' {
			text := string(l.line[s:l.pos])
			l.pos++ // consume closing quote
			return Token{Kind: CString, Text: text, Start: start, End: l.col() - 1}, nil
		}
		l.pos++
	}

	text := string(l.line[s:l.pos])
	return Token{Kind: CString, Text: text, Start: start, End: l.col() - 1}, ErrUnterminatedString
}
