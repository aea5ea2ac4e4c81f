package compose

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
	yaml "gopkg.in/yaml.v3"

	"cssel/config"
	"cssel/utils/jsonutil"
)

type renderedEntry struct {
	Name     string `json:"name" yaml:"name"`
	Selector string `json:"selector" yaml:"selector"`
}

// renderedDoc is the envelope for json and yaml output.
type renderedDoc struct {
	ID        string          `json:"id" yaml:"id"`
	Selectors []renderedEntry `json:"selectors" yaml:"selectors"`
}

// Render serializes built selectors in the requested format and order.
func Render(id string, built []Built, format config.EmitFmt, annotate bool, order config.SortMode) ([]byte, error) {
	built = sortBuilt(built, order)

	switch format {
	case config.EmitFmtText:
		return renderText(built, annotate), nil
	case config.EmitFmtJSON:
		return jsonutil.ToJSON(envelope(id, built))
	case config.EmitFmtYAML:
		data, err := yaml.Marshal(envelope(id, built))
		if err != nil {
			return nil, fmt.Errorf("unable to serialize selectors to YAML: %w", err)
		}
		return data, nil
	case config.EmitFmtXHTML:
		return renderXHTML(id, built)
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// sortBuilt reorders entries by name when asked to, leaving the argument
// slice alone.
func sortBuilt(built []Built, order config.SortMode) []Built {
	if order == config.SortModeDocument {
		return built
	}

	sorted := make([]Built, len(built))
	copy(sorted, built)
	switch order {
	case config.SortModeNatural:
		sort.SliceStable(sorted, func(i, j int) bool { return natural.Less(sorted[i].Name, sorted[j].Name) })
	case config.SortModeLexical:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	}
	return sorted
}

func envelope(id string, built []Built) renderedDoc {
	entries := make([]renderedEntry, 0, len(built))
	for _, b := range built {
		entries = append(entries, renderedEntry{Name: b.Name, Selector: b.Selector.String()})
	}
	return renderedDoc{ID: id, Selectors: entries}
}

func renderText(built []Built, annotate bool) []byte {
	var sb strings.Builder
	for _, b := range built {
		if annotate {
			sb.WriteString("/* ")
			sb.WriteString(b.Name)
			sb.WriteString(" */\n")
		}
		sb.WriteString(b.Selector.String())
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
