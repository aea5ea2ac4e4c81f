package selector

// Selector is the capability shared by simple and combined selectors.
type Selector interface {
	String() string
}

var (
	_ Selector = (*Simple)(nil)
	_ Selector = (*Combined)(nil)
)

// Package level constructors mirror the chainable methods, each seeding a
// fresh Simple with a single part. The seed part needs no checking, nothing
// precedes it.

// Element starts a selector with a tag name part.
func Element(text string) *Simple { return seed(KindElement, text) }

// ID starts a selector with an id part.
func ID(text string) *Simple { return seed(KindID, text) }

// Class starts a selector with a class part.
func Class(text string) *Simple { return seed(KindClass, text) }

// Attr starts a selector with an attribute part.
func Attr(text string) *Simple { return seed(KindAttribute, text) }

// PseudoClass starts a selector with a pseudo-class part.
func PseudoClass(text string) *Simple { return seed(KindPseudoClass, text) }

// PseudoElement starts a selector with a pseudo-element part.
func PseudoElement(text string) *Simple { return seed(KindPseudoElement, text) }

func seed(kind Kind, text string) *Simple {
	return &Simple{parts: []Part{{Kind: kind, Text: text}}}
}
