package selector

import "errors"

// Violation messages are part of the public contract and are kept byte for
// byte, original spelling included.
var (
	// ErrDuplicatePart reports a second element, id or pseudo-element part
	// appended to the same selector.
	ErrDuplicatePart = errors.New("Element, id and pseudo-element should not occur more then one time inside the selector")

	// ErrPartOrder reports a part appended after a part of a higher ranked
	// kind.
	ErrPartOrder = errors.New("Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
)
