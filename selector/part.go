package selector

// Part is one tagged token of a simple selector. Text is kept raw, including
// attribute expressions like `href$=".png"`.
type Part struct {
	Kind Kind
	Text string
}

// String renders the part with its CSS prefix.
func (p Part) String() string {
	switch p.Kind {
	case KindID:
		return "#" + p.Text
	case KindClass:
		return "." + p.Text
	case KindAttribute:
		return "[" + p.Text + "]"
	case KindPseudoClass:
		return ":" + p.Text
	case KindPseudoElement:
		return "::" + p.Text
	default:
		return p.Text
	}
}
