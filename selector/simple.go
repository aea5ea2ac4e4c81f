package selector

import (
	"slices"
	"strings"
)

// Simple is a single non-combined selector under construction, an ordered
// sequence of parts built up through the chainable methods. The zero value
// is an empty selector ready for use.
//
// Appends validate before mutating. On a violation the offending part is
// discarded, the error is recorded and all later appends become no-ops.
// A Simple is used by one caller at a time, it is not safe for concurrent
// use.
type Simple struct {
	parts []Part
	err   error
}

// Element appends a tag name part.
func (s *Simple) Element(text string) *Simple { return s.append(KindElement, text) }

// ID appends an id part.
func (s *Simple) ID(text string) *Simple { return s.append(KindID, text) }

// Class appends a class part.
func (s *Simple) Class(text string) *Simple { return s.append(KindClass, text) }

// Attr appends an attribute part.
func (s *Simple) Attr(text string) *Simple { return s.append(KindAttribute, text) }

// PseudoClass appends a pseudo-class part.
func (s *Simple) PseudoClass(text string) *Simple { return s.append(KindPseudoClass, text) }

// PseudoElement appends a pseudo-element part.
func (s *Simple) PseudoElement(text string) *Simple { return s.append(KindPseudoElement, text) }

func (s *Simple) append(kind Kind, text string) *Simple {
	if s.err != nil {
		return s
	}
	if err := s.check(kind); err != nil {
		s.err = err
		return s
	}
	s.parts = append(s.parts, Part{Kind: kind, Text: text})
	return s
}

// check enforces the append rules for a part of the given kind: element, id
// and pseudo-element may occur once, and kinds must not decrease along the
// sequence. Uniqueness is checked first, a duplicate wins over misorder when
// both apply.
func (s *Simple) check(kind Kind) error {
	switch kind {
	case KindElement, KindID, KindPseudoElement:
		for _, p := range s.parts {
			if p.Kind == kind {
				return ErrDuplicatePart
			}
		}
	}
	if len(s.parts) > 0 && kind < s.parts[len(s.parts)-1].Kind {
		return ErrPartOrder
	}
	return nil
}

// Err returns the first violation recorded by the chain, if any.
func (s *Simple) Err() error {
	return s.err
}

// Parts returns a copy of the appended parts in order.
func (s *Simple) Parts() []Part {
	return slices.Clone(s.parts)
}

// String renders the selector by concatenating every part with its prefix.
// It is read-only and may be called repeatedly.
func (s *Simple) String() string {
	var b strings.Builder
	for _, p := range s.parts {
		b.WriteString(p.String())
	}
	return b.String()
}

// Build returns the rendered selector, or the recorded violation with an
// empty string.
func (s *Simple) Build() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.String(), nil
}
