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

package miparse

import "github.com/nabbar/gdbwire/milex"

// parseErr carries the offending token and its column span out of the
// recursive-descent helpers; it never escapes this package; ParseLine
// converts it into a ParseErrorOutput.
type parseErr struct {
	token string
	start int
	end   int
}

func (e *parseErr) Error() string {
	return "miparse: unexpected token " + e.token
}

func tokenErr(t milex.Token) *parseErr {
	text := t.Text
	if t.Kind != milex.EOF && text == "" {
		text = t.Kind.String()
	}
	return &parseErr{token: text, start: t.Start, end: t.End}
}

// parser is a push parser with a two-token peek buffer over one line's
// token stream, per spec.md §9's recommendation. It holds no state beyond
// the line it was built for.
type parser struct {
	lx            *milex.Lexer
	cur, peek     milex.Token
	curErr, peekErr error
}

func newParser(line []byte) *parser {
	p := &parser{lx: milex.New(line)}
	p.cur, p.curErr = p.lx.Next()
	p.peek, p.peekErr = p.lx.Next()
	return p
}

func (p *parser) advance() {
	p.cur, p.curErr = p.peek, p.peekErr
	p.peek, p.peekErr = p.lx.Next()
}

// ParseLine parses exactly one line of MI text (terminator included) into
// one Output. Malformed input never returns a nil Output: it instead
// returns a ParseErrorOutput identifying the offending token and its
// 1-based column span.
func ParseLine(line []byte) *Output {
	p := newParser(line)

	out, err := p.parseRecord()
	if err != nil {
		return errorOutput(line, err)
	}
	if p.curErr != nil {
		return errorOutput(line, tokenErr(p.cur))
	}

	if p.cur.Kind != milex.Newline {
		return errorOutput(line, tokenErr(p.cur))
	}
	p.advance()

	if p.cur.Kind != milex.EOF {
		return errorOutput(line, tokenErr(p.cur))
	}

	out.Line = line
	return out
}

func errorOutput(line []byte, err error) *Output {
	pe, ok := err.(*parseErr)
	if !ok {
		pe = &parseErr{token: err.Error()}
	}
	return &Output{
		Line:       line,
		Kind:       ParseErrorOutput,
		ErrorToken: pe.token,
		ErrorStart: pe.start,
		ErrorEnd:   pe.end,
	}
}

func (p *parser) parseRecord() (*Output, error) {
	if p.curErr != nil {
		return nil, tokenErr(p.cur)
	}

	if p.cur.Kind == milex.LParen {
		return p.parsePrompt()
	}

	token := ""
	if p.cur.Kind == milex.Integer {
		token = p.cur.Text
		p.advance()
		if p.curErr != nil {
			return nil, tokenErr(p.cur)
		}
	}

	switch p.cur.Kind {
	case milex.Caret:
		return p.parseResultRecord(token)
	case milex.Star, milex.Plus, milex.Equals:
		return p.parseAsyncRecord(token)
	case milex.Tilde, milex.At, milex.Amp:
		return p.parseStreamRecord()
	default:
		return nil, tokenErr(p.cur)
	}
}

func (p *parser) parsePrompt() (*Output, error) {
	p.advance() // consume '('
	if p.curErr != nil || p.cur.Kind != milex.String || p.cur.Text != "gdb" {
		return nil, tokenErr(p.cur)
	}
	p.advance()
	if p.curErr != nil || p.cur.Kind != milex.RParen {
		return nil, tokenErr(p.cur)
	}
	p.advance()
	return &Output{Kind: PromptOutput}, nil
}

func (p *parser) parseResultRecord(token string) (*Output, error) {
	p.advance() // consume '^'
	if p.curErr != nil || p.cur.Kind != milex.String {
		return nil, tokenErr(p.cur)
	}
	class := mapResultClass(p.cur.Text)
	p.advance()

	results, err := p.parseOptResultList()
	if err != nil {
		return nil, err
	}

	return &Output{
		Kind: ResultOutput,
		Result: &ResultRecord{
			Token:   token,
			Class:   class,
			Results: results,
		},
	}, nil
}

func (p *parser) parseAsyncRecord(token string) (*Output, error) {
	var kind AsyncKind
	switch p.cur.Kind {
	case milex.Star:
		kind = AsyncExec
	case milex.Plus:
		kind = AsyncStatus
	default:
		kind = AsyncNotify
	}
	p.advance()

	if p.curErr != nil || p.cur.Kind != milex.String {
		return nil, tokenErr(p.cur)
	}
	literal := p.cur.Text
	class := mapAsyncClass(literal)
	p.advance()

	results, err := p.parseOptResultList()
	if err != nil {
		return nil, err
	}

	return &Output{
		Kind: OutOfBand,
		OOB: &OOBRecord{
			Kind: AsyncRecordKind,
			Async: &AsyncRecord{
				Token:        token,
				Kind:         kind,
				Class:        class,
				ClassLiteral: literal,
				Results:      results,
			},
		},
	}, nil
}

func (p *parser) parseStreamRecord() (*Output, error) {
	var kind StreamKind
	switch p.cur.Kind {
	case milex.Tilde:
		kind = StreamConsole
	case milex.At:
		kind = StreamTarget
	default:
		kind = StreamLog
	}
	p.advance()

	if p.curErr != nil || p.cur.Kind != milex.CString {
		return nil, tokenErr(p.cur)
	}
	text := unescape(p.cur.Text)
	p.advance()

	return &Output{
		Kind: OutOfBand,
		OOB: &OOBRecord{
			Kind:   StreamRecordKind,
			Stream: &StreamRecord{Kind: kind, Text: text},
		},
	}, nil
}

// parseOptResultList parses an optional `,` result-list tail.
func (p *parser) parseOptResultList() ([]*Result, error) {
	if p.curErr != nil {
		return nil, tokenErr(p.cur)
	}
	if p.cur.Kind != milex.Comma {
		return nil, nil
	}
	p.advance()
	return p.parseResultList()
}

func (p *parser) parseResultList() ([]*Result, error) {
	var results []*Result

	for {
		r, err := p.parseResult()
		if err != nil {
			return nil, err
		}
		results = append(results, r)

		if p.curErr != nil {
			return nil, tokenErr(p.cur)
		}
		if p.cur.Kind != milex.Comma {
			return results, nil
		}
		p.advance()
	}
}

// parseResult parses `opt-variable ( CSTRING | tuple | list )`. Relaxation
// R1 (keyless tuple members) falls out of this being the single shared
// entry point for both tuple and list members: a key is only consumed
// when a STRING-LITERAL is immediately followed by `=`.
func (p *parser) parseResult() (*Result, error) {
	if p.curErr != nil {
		return nil, tokenErr(p.cur)
	}

	key := ""
	if p.cur.Kind == milex.String && p.peekErr == nil && p.peek.Kind == milex.Equals {
		key = p.cur.Text
		p.advance() // consume STRING-LITERAL
		p.advance() // consume '='
	}

	if p.curErr != nil {
		return nil, tokenErr(p.cur)
	}

	switch p.cur.Kind {
	case milex.CString:
		text := unescape(p.cur.Text)
		p.advance()
		return &Result{Key: key, Kind: CStringKind, Str: text}, nil

	case milex.LBrace:
		return p.parseTuple(key)

	case milex.LBracket:
		return p.parseList(key)

	default:
		return nil, tokenErr(p.cur)
	}
}

func (p *parser) parseTuple(key string) (*Result, error) {
	p.advance() // consume '{'

	if p.curErr != nil {
		return nil, tokenErr(p.cur)
	}
	if p.cur.Kind == milex.RBrace {
		p.advance()
		return &Result{Key: key, Kind: TupleKind}, nil
	}

	children, err := p.parseResultList()
	if err != nil {
		return nil, err
	}
	if p.curErr != nil || p.cur.Kind != milex.RBrace {
		return nil, tokenErr(p.cur)
	}
	p.advance()

	return &Result{Key: key, Kind: TupleKind, Children: children}, nil
}

func (p *parser) parseList(key string) (*Result, error) {
	p.advance() // consume '['

	if p.curErr != nil {
		return nil, tokenErr(p.cur)
	}
	if p.cur.Kind == milex.RBracket {
		p.advance()
		return &Result{Key: key, Kind: ListKind}, nil
	}

	children, err := p.parseResultList()
	if err != nil {
		return nil, err
	}
	if p.curErr != nil || p.cur.Kind != milex.RBracket {
		return nil, tokenErr(p.cur)
	}
	p.advance()

	return &Result{Key: key, Kind: ListKind, Children: children}, nil
}
