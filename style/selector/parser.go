package selector

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Parse parses a comma separated list of selectors, e.g.
//
//	button.primary:hover, #sidebar > label
func Parse(text string) (List, error) {
	p := &parser{
		lexer: css.NewLexer(parse.NewInput(strings.NewReader(text))),
		text:  text,
	}
	list, err := p.parseList()
	if err != nil {
		tracer().Debugf("cannot parse selector '%s': %v", text, err)
		return nil, err
	}
	return list, nil
}

// MustParse is like Parse, but panics on error. Intended for tests and for
// selectors known at compile time.
func MustParse(text string) List {
	list, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return list
}

type token struct {
	tt   css.TokenType
	data string
}

type parser struct {
	lexer  *css.Lexer
	text   string
	peeked *token
}

func (p *parser) next() token {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t
	}
	for {
		tt, data := p.lexer.Next()
		if tt == css.CommentToken {
			continue
		}
		return token{tt: tt, data: string(data)}
	}
}

func (p *parser) peek() token {
	if p.peeked == nil {
		t := p.next()
		p.peeked = &t
	}
	return *p.peeked
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w in '%s': %s", ErrSyntax, p.text, fmt.Sprintf(format, args...))
}

func (p *parser) atEnd(t token) (bool, error) {
	if t.tt != css.ErrorToken {
		return false, nil
	}
	if err := p.lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
		return true, p.errorf("%v", err)
	}
	return true, nil
}

func (p *parser) skipWhitespace() {
	for p.peek().tt == css.WhitespaceToken {
		p.next()
	}
}

func (p *parser) parseList() (List, error) {
	var list List
	for {
		sel, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		list = append(list, sel)
		t := p.next()
		if end, err := p.atEnd(t); end {
			if err != nil {
				return nil, err
			}
			return list, nil
		}
		if t.tt != css.CommaToken {
			return nil, p.errorf("unexpected '%s'", t.data)
		}
	}
}

// parseSelector parses a complex selector, stopping before a comma or the
// end of input.
func (p *parser) parseSelector() (*Selector, error) {
	sel := &Selector{}
	p.skipWhitespace()
	for {
		part, err := p.parseCompound()
		if err != nil {
			return nil, err
		}
		if part.isEmpty() {
			return nil, p.errorf("missing selector")
		}
		sel.Parts = append(sel.Parts, part)
		comb, more, err := p.parseCombinator()
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		sel.Combinators = append(sel.Combinators, comb)
	}
	sel.computeSpecificity()
	return sel, nil
}

// parseCombinator consumes whitespace and an optional explicit combinator.
// It returns false if the selector ends here.
func (p *parser) parseCombinator() (Combinator, bool, error) {
	sawSpace := false
	for p.peek().tt == css.WhitespaceToken {
		p.next()
		sawSpace = true
	}
	t := p.peek()
	switch {
	case t.tt == css.ErrorToken || t.tt == css.CommaToken:
		return Descendant, false, nil
	case t.tt == css.DelimToken && (t.data == ">" || t.data == "+" || t.data == "~"):
		p.next()
		p.skipWhitespace()
		switch t.data {
		case ">":
			return Child, true, nil
		case "+":
			return NextSibling, true, nil
		}
		return SubsequentSibling, true, nil
	case sawSpace:
		return Descendant, true, nil
	}
	return Descendant, false, p.errorf("unexpected '%s'", t.data)
}

func (p *parser) parseCompound() (Compound, error) {
	var c Compound
	first := true
	for {
		t := p.peek()
		switch {
		case t.tt == css.IdentToken && first:
			p.next()
			c.Element = strings.ToLower(t.data)
		case t.tt == css.DelimToken && t.data == "*" && first:
			p.next()
			c.Element = "*"
		case t.tt == css.HashToken:
			p.next()
			if c.ID != "" && c.ID != t.data[1:] {
				return c, p.errorf("conflicting ids #%s and %s", c.ID, t.data)
			}
			c.ID = t.data[1:]
		case t.tt == css.DelimToken && t.data == ".":
			p.next()
			cl := p.next()
			if cl.tt != css.IdentToken {
				return c, p.errorf("expected class name after '.'")
			}
			c.Classes = append(c.Classes, cl.data)
		case t.tt == css.ColonToken:
			p.next()
			pseudo, err := p.parsePseudo()
			if err != nil {
				return c, err
			}
			c.Pseudo = append(c.Pseudo, pseudo)
		case t.tt == css.LeftBracketToken:
			return c, p.errorf("attribute selectors are not supported")
		default:
			return c, nil
		}
		first = false
	}
}

func (p *parser) parsePseudo() (Pseudo, error) {
	t := p.next()
	switch t.tt {
	case css.IdentToken:
		return newPseudo(t.data), nil
	case css.FunctionToken:
		name := strings.TrimSuffix(t.data, "(")
		arg, err := p.parseArgument()
		if err != nil {
			return Pseudo{}, err
		}
		pseudo, err := newFunctionalPseudo(name, arg)
		if err != nil {
			return Pseudo{}, p.errorf("%v", err)
		}
		return pseudo, nil
	case css.ColonToken: // pseudo-element
		el := p.next()
		if el.tt != css.IdentToken && el.tt != css.FunctionToken {
			return Pseudo{}, p.errorf("expected pseudo-element name")
		}
		if el.tt == css.FunctionToken {
			if _, err := p.parseArgument(); err != nil {
				return Pseudo{}, err
			}
		}
		return Pseudo{Name: ":" + strings.TrimSuffix(el.data, "("), kind: pseudoUnsupported}, nil
	}
	return Pseudo{}, p.errorf("expected pseudo-class name after ':'")
}

// parseArgument collects the verbatim text of a function argument, up to the
// matching closing parenthesis.
func (p *parser) parseArgument() (string, error) {
	var b strings.Builder
	depth := 1
	for {
		t := p.next()
		switch t.tt {
		case css.ErrorToken:
			return "", p.errorf("unterminated argument")
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return strings.TrimSpace(b.String()), nil
			}
		}
		b.WriteString(t.data)
	}
}
