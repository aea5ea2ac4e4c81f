package selector

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies the syntactic role of a single selector part. Declaration
// order follows the CSS3 simple selector grammar, so comparing two kinds
// numerically gives their required order inside one selector.
type Kind int

const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

var kindNames = [...]string{
	KindElement:       "element",
	KindID:            "id",
	KindClass:         "class",
	KindAttribute:     "attribute",
	KindPseudoClass:   "pseudo-class",
	KindPseudoElement: "pseudo-element",
}

func (k Kind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k >= KindElement && k <= KindPseudoElement
}

// KindNames returns names of all part kinds in grammar order.
func KindNames() []string {
	return slices.Clone(kindNames[:])
}

// ParseKind converts a textual name to a Kind. Matching is case insensitive.
func ParseKind(name string) (Kind, error) {
	want := strings.ToLower(name)
	for k, n := range kindNames {
		if n == want {
			return Kind(k), nil
		}
	}
	return Kind(0), fmt.Errorf("%s is not a valid Kind, try [%s]", name, strings.Join(kindNames[:], ", "))
}

// MustParseKind is like ParseKind but panics on unknown names.
func MustParseKind(name string) Kind {
	k, err := ParseKind(name)
	if err != nil {
		panic(err)
	}
	return k
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%d is not a valid Kind", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
