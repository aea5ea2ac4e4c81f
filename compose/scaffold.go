package compose

import (
	"strings"
	"unicode"

	"github.com/beevik/etree"

	"cssel/selector"
)

// renderXHTML emits a skeleton XHTML document with one markup scaffold per
// selector. The scaffold mirrors the shape a selector would match, it is a
// generator and not a matcher.
func renderXHTML(title string, built []Built) ([]byte, error) {
	doc, body := createXHTMLScaffold(title)

	for _, b := range built {
		body.CreateComment(" " + b.Name + " ")
		scaffoldInto(body, b.Selector)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func createXHTMLScaffold(title string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	html := doc.CreateElement("html")
	html.CreateAttr("xmlns", "http://www.w3.org/1999/xhtml")

	head := html.CreateElement("head")

	meta := head.CreateElement("meta")
	meta.CreateAttr("http-equiv", "Content-Type")
	meta.CreateAttr("content", "text/html; charset=utf-8")

	titleElem := head.CreateElement("title")
	titleElem.SetText(title)

	body := html.CreateElement("body")

	return doc, body
}

// scaffoldInto appends markup for sel under parent and returns the element
// later parts of the tree hang off. Child and descendant combinators nest,
// everything else lands side by side.
func scaffoldInto(parent *etree.Element, sel selector.Selector) *etree.Element {
	switch s := sel.(type) {
	case *selector.Combined:
		left := scaffoldInto(parent, s.Left())
		switch s.Combinator() {
		case selector.CombinatorChild, selector.CombinatorDescendant:
			return scaffoldInto(left, s.Right())
		default:
			return scaffoldInto(left.Parent(), s.Right())
		}
	case *selector.Simple:
		return scaffoldElement(parent, s.Parts())
	default:
		return scaffoldElement(parent, nil)
	}
}

func scaffoldElement(parent *etree.Element, parts []selector.Part) *etree.Element {
	tag := "div"
	var id string
	var classes []string

	for _, p := range parts {
		switch p.Kind {
		case selector.KindElement:
			if isXMLName(p.Text) {
				tag = p.Text
			}
		case selector.KindID:
			id = p.Text
		case selector.KindClass:
			classes = append(classes, p.Text)
		}
	}

	el := parent.CreateElement(tag)
	if len(id) > 0 {
		el.CreateAttr("id", id)
	}
	if len(classes) > 0 {
		el.CreateAttr("class", strings.Join(classes, " "))
	}

	// pseudo classes and pseudo elements have no markup shape and are skipped
	for _, p := range parts {
		if p.Kind != selector.KindAttribute {
			continue
		}
		name, value, _ := splitAttr(p.Text)
		if !isXMLName(name) {
			continue
		}
		el.CreateAttr(name, value)
	}
	return el
}

// splitAttr breaks attribute selector text into name and value on the first
// CSS attribute operator, dropping quotes around the value. Text without an
// operator becomes a bare attribute. Best effort formatting, the text itself
// is never validated.
func splitAttr(text string) (string, string, bool) {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '~', '^', '$', '*', '|':
			if i+1 < len(text) && text[i+1] == '=' {
				return text[:i], unquote(text[i+2:]), true
			}
		case '=':
			return text[:i], unquote(text[i+1:]), true
		}
	}
	return text, "", false
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func isXMLName(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, r := range s {
		if r == '_' || r == ':' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
