package selector

import "go.uber.org/multierr"

// Combinator symbols commonly passed to Combine. Combine stores whatever
// string it is given, the names exist mostly so the space combinator does
// not have to be spelled out at call sites.
const (
	CombinatorDescendant = " "
	CombinatorChild      = ">"
	CombinatorAdjacent   = "+"
	CombinatorSibling    = "~"
)

// Combined is a binary node joining two selectors with a combinator. It is
// created by Combine and never mutated afterwards. Either side may itself be
// a Combined, forming a tree.
type Combined struct {
	left       Selector
	combinator string
	right      Selector
}

// Combine joins two selectors with the given combinator. All three values
// are stored verbatim, the combinator is not validated.
func Combine(left Selector, combinator string, right Selector) *Combined {
	return &Combined{left: left, combinator: combinator, right: right}
}

// Left returns the left side of the node.
func (c *Combined) Left() Selector { return c.left }

// Combinator returns the combinator as given to Combine.
func (c *Combined) Combinator() string { return c.combinator }

// Right returns the right side of the node.
func (c *Combined) Right() Selector { return c.right }

// String renders both sides with the combinator between them. The combinator
// always gets one space on each side, even when it is itself a space, so
// nested descendant combinators render with three spaces. That spacing is
// load bearing for existing consumers and must not change.
func (c *Combined) String() string {
	return c.left.String() + " " + c.combinator + " " + c.right.String()
}

// Err returns violations recorded anywhere in the tree.
func (c *Combined) Err() error {
	return multierr.Append(sideErr(c.left), sideErr(c.right))
}

// Build returns the rendered tree, or the violations found in it with an
// empty string.
func (c *Combined) Build() (string, error) {
	if err := c.Err(); err != nil {
		return "", err
	}
	return c.String(), nil
}

func sideErr(s Selector) error {
	if e, ok := s.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}
