// Package compose assembles named CSS selectors from declarative documents.
package compose

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssel/selector"
)

// Document is a parsed selector assembly document.
type Document struct {
	Version   int     `yaml:"version"`
	ID        string  `yaml:"id,omitempty"`
	Selectors []Entry `yaml:"selectors"`
}

// Entry is a single named selector definition.
type Entry struct {
	Name string `yaml:"name"`
	Node `yaml:",inline"`
}

// Node describes how to assemble one selector. Exactly one of Parts, Combine
// or Ref must be set.
type Node struct {
	Parts   []Step       `yaml:"parts,omitempty"`
	Combine *CombineSpec `yaml:"combine,omitempty"`
	Ref     string       `yaml:"ref,omitempty"`
}

// CombineSpec joins two nodes with a combinator.
type CombineSpec struct {
	Left       Node   `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      Node   `yaml:"right"`
}

// Step is one chainable append, written in documents as a single key mapping,
// for example "- class: active".
type Step struct {
	Kind selector.Kind
	Text string
}

func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: selector step must be a single \"kind: text\" mapping", value.Line)
	}

	var kind, text string
	if err := value.Content[0].Decode(&kind); err != nil {
		return err
	}
	if err := value.Content[1].Decode(&text); err != nil {
		return err
	}

	k, err := selector.ParseKind(kind)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Content[0].Line, err)
	}
	s.Kind, s.Text = k, text
	return nil
}

func (s Step) MarshalYAML() (any, error) {
	return map[string]string{s.Kind.String(): s.Text}, nil
}

// parseCombinator resolves both the word and the symbol form. The selector
// package itself stores combinators verbatim, documents get diagnostics.
func parseCombinator(s string) (string, error) {
	switch s {
	case "descendant", selector.CombinatorDescendant:
		return selector.CombinatorDescendant, nil
	case "child", selector.CombinatorChild:
		return selector.CombinatorChild, nil
	case "adjacent", selector.CombinatorAdjacent:
		return selector.CombinatorAdjacent, nil
	case "sibling", selector.CombinatorSibling:
		return selector.CombinatorSibling, nil
	}
	return "", fmt.Errorf("%q is not a valid combinator, try [descendant, child, adjacent, sibling] or [\" \", >, +, ~]", s)
}

// Load reads and validates an assembly document. Both YAML and JSON sources
// are accepted, JSON being a subset of YAML.
func Load(path string, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read document: %w", err)
	}
	return parseDocument(data, log)
}

func parseDocument(data []byte, log *zap.Logger) (*Document, error) {
	doc := &Document{}

	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("unable to decode document: %w", err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}
	if err := doc.ensureID(log); err != nil {
		return nil, err
	}
	return doc, nil
}

// ensureID makes sure document ID is not empty and is valid UUID.
func (doc *Document) ensureID(log *zap.Logger) error {
	if _, err := uuid.Parse(doc.ID); err == nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("unable to generate new document UUID: %w", err)
	}
	if len(doc.ID) > 0 {
		log.Warn("Document has invalid ID, correcting", zap.String("old_id", doc.ID), zap.Stringer("new_id", id))
	}
	doc.ID = id.String()
	return nil
}

// index maps entry names to entries. With duplicate names first definition
// wins, the duplicate is already reported by validate.
func (doc *Document) index() map[string]*Entry {
	index := make(map[string]*Entry, len(doc.Selectors))
	for i := range doc.Selectors {
		e := &doc.Selectors[i]
		if _, exists := index[e.Name]; !exists {
			index[e.Name] = e
		}
	}
	return index
}

func (doc *Document) validate() (errs error) {
	if doc.Version != 1 {
		errs = multierr.Append(errs, fmt.Errorf("unsupported document version %d", doc.Version))
	}
	if len(doc.Selectors) == 0 {
		errs = multierr.Append(errs, errors.New("document defines no selectors"))
	}

	seen := make(map[string]struct{}, len(doc.Selectors))
	for i := range doc.Selectors {
		e := &doc.Selectors[i]
		if len(e.Name) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("selector #%d has no name", i+1))
		} else if _, dup := seen[e.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("duplicate selector name %q", e.Name))
		}
		seen[e.Name] = struct{}{}

		if err := e.Node.validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("selector %q: %w", e.Name, err))
		}
	}

	errs = multierr.Append(errs, doc.validateRefs())
	return
}

func (n *Node) validate() error {
	set := 0
	if len(n.Parts) > 0 {
		set++
	}
	if n.Combine != nil {
		set++
	}
	if len(n.Ref) > 0 {
		set++
	}
	if set != 1 {
		return errors.New("exactly one of parts, combine or ref is required")
	}

	if n.Combine != nil {
		var errs error
		if _, err := parseCombinator(n.Combine.Combinator); err != nil {
			errs = multierr.Append(errs, err)
		}
		if err := n.Combine.Left.validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("left: %w", err))
		}
		if err := n.Combine.Right.validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("right: %w", err))
		}
		return errs
	}
	return nil
}

// refs lists names this node depends on, recursively.
func (n *Node) refs() []string {
	switch {
	case len(n.Ref) > 0:
		return []string{n.Ref}
	case n.Combine != nil:
		return append(n.Combine.Left.refs(), n.Combine.Right.refs()...)
	}
	return nil
}

// validateRefs checks that every reference points to an existing entry and
// that following references never loops back.
func (doc *Document) validateRefs() error {
	const (
		unvisited = iota
		visiting
		done
	)

	index := doc.index()
	state := make(map[string]int, len(doc.Selectors))

	var visit func(e *Entry) error
	visit = func(e *Entry) error {
		switch state[e.Name] {
		case visiting:
			return fmt.Errorf("reference cycle through %q", e.Name)
		case done:
			return nil
		}
		state[e.Name] = visiting

		var errs error
		for _, name := range e.Node.refs() {
			target, exists := index[name]
			if !exists {
				errs = multierr.Append(errs, fmt.Errorf("selector %q references unknown selector %q", e.Name, name))
				continue
			}
			errs = multierr.Append(errs, visit(target))
		}

		state[e.Name] = done
		return errs
	}

	var errs error
	for i := range doc.Selectors {
		errs = multierr.Append(errs, visit(&doc.Selectors[i]))
	}
	return errs
}
