package compose

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"cssel/selector"
)

// Built pairs an entry name with its assembled selector.
type Built struct {
	Name     string
	Selector selector.Selector
}

// Build assembles every document entry, in document order. Selector level
// violations (duplicate or misordered parts) are collected per entry, one
// broken entry does not stop the others.
func Build(doc *Document) ([]Built, error) {
	index := doc.index()

	var errs error
	built := make([]Built, 0, len(doc.Selectors))
	for i := range doc.Selectors {
		e := &doc.Selectors[i]
		sel, err := buildNode(&e.Node, index)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("selector %q: %w", e.Name, err))
			continue
		}
		built = append(built, Built{Name: e.Name, Selector: sel})
	}
	return built, errs
}

// buildNode assembles a single node. References rebuild the target definition
// from scratch, entries never share builder state.
func buildNode(n *Node, index map[string]*Entry) (selector.Selector, error) {
	switch {
	case len(n.Ref) > 0:
		target, exists := index[n.Ref]
		if !exists {
			return nil, fmt.Errorf("unknown selector %q", n.Ref)
		}
		return buildNode(&target.Node, index)
	case n.Combine != nil:
		comb, err := parseCombinator(n.Combine.Combinator)
		if err != nil {
			return nil, err
		}
		left, err := buildNode(&n.Combine.Left, index)
		if err != nil {
			return nil, err
		}
		right, err := buildNode(&n.Combine.Right, index)
		if err != nil {
			return nil, err
		}
		return selector.Combine(left, comb, right), nil
	default:
		return buildSimple(n.Parts)
	}
}

// buildSimple replays steps through the chainable appenders.
func buildSimple(steps []Step) (selector.Selector, error) {
	if len(steps) == 0 {
		return nil, errors.New("parts list is empty")
	}

	s := new(selector.Simple)
	for _, st := range steps {
		switch st.Kind {
		case selector.KindElement:
			s = s.Element(st.Text)
		case selector.KindID:
			s = s.ID(st.Text)
		case selector.KindClass:
			s = s.Class(st.Text)
		case selector.KindAttribute:
			s = s.Attr(st.Text)
		case selector.KindPseudoClass:
			s = s.PseudoClass(st.Text)
		case selector.KindPseudoElement:
			s = s.PseudoElement(st.Text)
		default:
			return nil, fmt.Errorf("unknown selector part kind %d", st.Kind)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
