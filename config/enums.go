package config

import (
	"fmt"
	"slices"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Specification of requested emit format.
type EmitFmt int

const (
	EmitFmtText EmitFmt = iota
	EmitFmtJSON
	EmitFmtYAML
	EmitFmtXHTML
)

var emitFmtNames = [...]string{
	EmitFmtText:  "text",
	EmitFmtJSON:  "json",
	EmitFmtYAML:  "yaml",
	EmitFmtXHTML: "xhtml",
}

func (f EmitFmt) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("EmitFmt(%d)", int(f))
	}
	return emitFmtNames[f]
}

func (f EmitFmt) IsValid() bool {
	return f >= EmitFmtText && f <= EmitFmtXHTML
}

func (f EmitFmt) Ext() string {
	switch f {
	case EmitFmtText:
		return ".txt"
	case EmitFmtJSON:
		return ".json"
	case EmitFmtYAML:
		return ".yaml"
	case EmitFmtXHTML:
		return ".xhtml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

func EmitFmtNames() []string {
	return slices.Clone(emitFmtNames[:])
}

// ParseEmitFmt converts a textual name to an EmitFmt. Matching is case
// insensitive.
func ParseEmitFmt(name string) (EmitFmt, error) {
	want := strings.ToLower(name)
	for f, n := range emitFmtNames {
		if n == want {
			return EmitFmt(f), nil
		}
	}
	return EmitFmt(0), fmt.Errorf("%s is not a valid EmitFmt, try [%s]", name, strings.Join(emitFmtNames[:], ", "))
}

func MustParseEmitFmt(name string) EmitFmt {
	f, err := ParseEmitFmt(name)
	if err != nil {
		panic(err)
	}
	return f
}

func (f EmitFmt) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%d is not a valid EmitFmt", int(f))
	}
	return []byte(f.String()), nil
}

func (f *EmitFmt) UnmarshalText(text []byte) error {
	v, err := ParseEmitFmt(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// yaml.v3 does not consult encoding.TextUnmarshaler on decode.
func (f *EmitFmt) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return f.UnmarshalText([]byte(name))
}

// Specification of emitted selector ordering.
type SortMode int

const (
	SortModeDocument SortMode = iota
	SortModeNatural
	SortModeLexical
)

var sortModeNames = [...]string{
	SortModeDocument: "document",
	SortModeNatural:  "natural",
	SortModeLexical:  "lexical",
}

func (m SortMode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("SortMode(%d)", int(m))
	}
	return sortModeNames[m]
}

func (m SortMode) IsValid() bool {
	return m >= SortModeDocument && m <= SortModeLexical
}

func SortModeNames() []string {
	return slices.Clone(sortModeNames[:])
}

// ParseSortMode converts a textual name to a SortMode. Matching is case
// insensitive.
func ParseSortMode(name string) (SortMode, error) {
	want := strings.ToLower(name)
	for m, n := range sortModeNames {
		if n == want {
			return SortMode(m), nil
		}
	}
	return SortMode(0), fmt.Errorf("%s is not a valid SortMode, try [%s]", name, strings.Join(sortModeNames[:], ", "))
}

func MustParseSortMode(name string) SortMode {
	m, err := ParseSortMode(name)
	if err != nil {
		panic(err)
	}
	return m
}

func (m SortMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%d is not a valid SortMode", int(m))
	}
	return []byte(m.String()), nil
}

func (m *SortMode) UnmarshalText(text []byte) error {
	v, err := ParseSortMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// yaml.v3 does not consult encoding.TextUnmarshaler on decode.
func (m *SortMode) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(name))
}
