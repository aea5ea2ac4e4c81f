package compose

import (
	"cssel/selector"
	"cssel/utils/debug"
)

// String returns a readable tree of the parsed document. It exists solely for
// manual inspection during debugging.
func (doc *Document) String() string {
	if doc == nil {
		return "<nil Document>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Document[%s] version %d, selectors: %d", doc.ID, doc.Version, len(doc.Selectors))
	for i := range doc.Selectors {
		e := &doc.Selectors[i]
		tw.Line(1, "Selector[%q]", e.Name)
		dumpNode(tw, 2, &e.Node)
	}
	return tw.String()
}

func dumpNode(tw *debug.TreeWriter, depth int, n *Node) {
	switch {
	case len(n.Ref) > 0:
		tw.Line(depth, "Ref[%q]", n.Ref)
	case n.Combine != nil:
		tw.Line(depth, "Combine[%q]", n.Combine.Combinator)
		tw.Line(depth+1, "Left")
		dumpNode(tw, depth+2, &n.Combine.Left)
		tw.Line(depth+1, "Right")
		dumpNode(tw, depth+2, &n.Combine.Right)
	default:
		tw.Line(depth, "Parts: %d", len(n.Parts))
		for _, st := range n.Parts {
			tw.Line(depth+1, "%s[%q]", st.Kind, st.Text)
		}
	}
}

// dumpBuilt renders assembled selectors for the debug report.
func dumpBuilt(built []Built) string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "Built selectors: %d", len(built))
	for _, b := range built {
		tw.Line(1, "Selector[%q]", b.Name)
		tw.TextBlock(2, "Rendered", b.Selector.String())
		dumpSelector(tw, 2, b.Selector)
	}
	return tw.String()
}

func dumpSelector(tw *debug.TreeWriter, depth int, sel selector.Selector) {
	switch s := sel.(type) {
	case *selector.Combined:
		tw.Line(depth, "Combined[%q]", s.Combinator())
		dumpSelector(tw, depth+1, s.Left())
		dumpSelector(tw, depth+1, s.Right())
	case *selector.Simple:
		parts := s.Parts()
		tw.Line(depth, "Simple, parts: %d", len(parts))
		for _, p := range parts {
			tw.Line(depth+1, "%s[%q]", p.Kind, p.Text)
		}
	default:
		tw.TextBlock(depth, "Opaque", sel.String())
	}
}
