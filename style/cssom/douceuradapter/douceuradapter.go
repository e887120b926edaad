/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet,
backed by the CSS parser of github.com/aymerick/douceur.

Only qualified rules are taken over; at-rules (@media, @font-face, …) are
skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/restyle/style"
	"github.com/npillmayer/restyle/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'restyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(c *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{}
	for _, r := range c.Rules {
		if r.Kind == css.QualifiedRule {
			sheet.css.Rules = append(sheet.css.Rules, r)
		} else {
			tracer().Debugf("skipping at-rule %s", r.Name)
		}
	}
	return sheet
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// ParseDeclarations parses the content of an inline style attribute, e.g.
//
//	color: red; font-size: 12pt
//
// The final declaration does not need a terminating semicolon. Declarations
// without a value are skipped.
func ParseDeclarations(text string) ([]style.KeyValue, error) {
	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ";") {
		text += ";" // douceur loses the value of an unterminated declaration
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse style declarations: %w", err)
	}
	kvs := make([]style.KeyValue, 0, len(decls))
	for _, d := range decls {
		v := style.Normalize(d.Value)
		if v.IsEmpty() {
			tracer().Debugf("skipping declaration of '%s' without value", d.Property)
			continue
		}
		kvs = append(kvs, style.KeyValue{
			Key:   strings.ToLower(d.Property),
			Value: v,
		})
	}
	return kvs, nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	for _, r := range other.Rules() {
		if dr, ok := r.(Rule); ok {
			rule := css.Rule(dr)
			sheet.css.Rules = append(sheet.css.Rules, &rule)
		}
	}
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i, r := range sheet.css.Rules {
		rules[i] = Rule(*r)
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule, e.g. "border-width", in
// source order.
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g.
// "15px". If a key is declared more than once, the last declaration counts.
func (r Rule) Value(key string) style.Property {
	v := style.NullStyle
	for _, d := range r.Declarations {
		if strings.EqualFold(d.Property, key) {
			v = style.Property(d.Value)
		}
	}
	return v
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	imp := false
	for _, d := range r.Declarations {
		if strings.EqualFold(d.Property, key) {
			imp = d.Important
		}
	}
	return imp
}

var _ cssom.Rule = Rule{}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node) ([]*CSSStyles, error) {
	var sheets []*CSSStyles
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		h := findElement(a, htmldoc)
		if h == nil {
			continue
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.DataAtom != atom.Style || ch.FirstChild == nil {
				continue
			}
			c, err := Parse(ch.FirstChild.Data)
			if err != nil {
				return sheets, err
			}
			sheets = append(sheets, c)
		}
	}
	return sheets, nil
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
