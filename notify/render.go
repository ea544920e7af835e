package notify

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Title is the heading of the message body and the default subject.
const Title = "Tagnyilvántartás - Nevek lista"

const footer = "Automatikus üzenet - kérjük ne válaszoljon rá."

const (
	bodyStyle   = "font-family:system-ui,-apple-system,Segoe UI,Roboto,sans-serif;line-height:1.5"
	titleStyle  = "margin:0 0 .5rem"
	countStyle  = "margin:.25rem 0"
	listStyle   = "margin:.5rem 0 0 1.25rem; padding:0"
	ruleStyle   = "border:none;border-top:1px solid #e5e7eb;margin:1rem 0"
	footerStyle = "font-size:12px;color:#6b7280;margin:0"
)

func element(a atom.Atom, style string, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if style != "" {
		n.Attr = []html.Attribute{{Key: "style", Val: style}}
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Body builds the HTML tree of a message listing names in the given order.
func Body(names []string) *html.Node {
	list := element(atom.Ul, listStyle)
	for _, name := range names {
		list.AppendChild(element(atom.Li, "", text(name)))
	}
	return element(atom.Div, bodyStyle,
		element(atom.H2, titleStyle, text(Title)),
		element(atom.P, countStyle,
			text("Összesen "),
			element(atom.B, "", text(fmt.Sprint(len(names)))),
			text(" név szerepel a listában."),
		),
		list,
		element(atom.Hr, ruleStyle),
		element(atom.P, footerStyle, text(footer)),
	)
}

// RenderHTML renders the message body for names. Names are HTML-escaped.
func RenderHTML(names []string) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, Body(names)); err != nil {
		return "", fmt.Errorf("render message body: %w", err)
	}
	return b.String(), nil
}
