package compose

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	yaml "gopkg.in/yaml.v3"

	"cssel/config"
	"cssel/selector"
)

func sampleBuilt() []Built {
	return []Built{
		{Name: "item10", Selector: selector.Element("div").ID("main")},
		{Name: "item2", Selector: selector.Element("span").Class("note")},
		{Name: "alpha", Selector: selector.Combine(selector.Element("ul"), selector.CombinatorChild, selector.Element("li"))},
	}
}

func TestRenderText(t *testing.T) {
	data, err := Render("doc-1", sampleBuilt(), config.EmitFmtText, false, config.SortModeDocument)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "div#main\nspan.note\nul > li\n"
	if string(data) != want {
		t.Errorf("text output = %q, want %q", data, want)
	}
}

func TestRenderText_Annotated(t *testing.T) {
	data, err := Render("doc-1", sampleBuilt(), config.EmitFmtText, true, config.SortModeDocument)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "/* item10 */\ndiv#main\n/* item2 */\nspan.note\n/* alpha */\nul > li\n"
	if string(data) != want {
		t.Errorf("annotated output = %q, want %q", data, want)
	}
}

func TestRender_JSON(t *testing.T) {
	data, err := Render("doc-1", sampleBuilt()[:1], config.EmitFmtJSON, false, config.SortModeDocument)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := `{"id":"doc-1","selectors":[{"name":"item10","selector":"div#main"}]}`
	if string(data) != want {
		t.Errorf("json output = %s, want %s", data, want)
	}
}

func TestRender_YAML(t *testing.T) {
	data, err := Render("doc-1", sampleBuilt(), config.EmitFmtYAML, false, config.SortModeLexical)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var back renderedDoc
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}

	if back.ID != "doc-1" {
		t.Errorf("id = %q, want doc-1", back.ID)
	}
	if len(back.Selectors) != 3 {
		t.Fatalf("selectors = %d, want 3", len(back.Selectors))
	}
	if back.Selectors[0].Name != "alpha" || back.Selectors[0].Selector != "ul > li" {
		t.Errorf("first entry = %+v, want alpha / ul > li", back.Selectors[0])
	}
}

func TestSortBuilt(t *testing.T) {
	names := func(built []Built) string {
		parts := make([]string, 0, len(built))
		for _, b := range built {
			parts = append(parts, b.Name)
		}
		return strings.Join(parts, ",")
	}

	tests := []struct {
		name  string
		order config.SortMode
		want  string
	}{
		{"document keeps order", config.SortModeDocument, "item10,item2,alpha"},
		{"natural is number aware", config.SortModeNatural, "alpha,item2,item10"},
		{"lexical compares runes", config.SortModeLexical, "alpha,item10,item2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := sampleBuilt()
			sorted := sortBuilt(original, tt.order)

			if got := names(sorted); got != tt.want {
				t.Errorf("order = %s, want %s", got, tt.want)
			}
			if got := names(original); got != "item10,item2,alpha" {
				t.Errorf("argument slice reordered to %s", got)
			}
		})
	}
}

func TestRender_XHTML(t *testing.T) {
	built := []Built{
		{Name: "grid", Selector: selector.Element("table").ID("data").Class("wide")},
		{Name: "nested", Selector: selector.Combine(selector.Element("ul"), selector.CombinatorChild, selector.Element("li"))},
		{Name: "pair", Selector: selector.Combine(selector.Element("dt"), selector.CombinatorAdjacent, selector.Element("dd"))},
		{Name: "image-link", Selector: selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus")},
		{Name: "switch", Selector: selector.Element("input").Attr("disabled")},
	}

	data, err := Render("doc-1", built, config.EmitFmtXHTML, false, config.SortModeDocument)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		t.Fatalf("output is not parseable XML: %v", err)
	}

	html := doc.SelectElement("html")
	if html == nil {
		t.Fatal("no html root element")
	}
	if got := html.SelectAttrValue("xmlns", ""); got != "http://www.w3.org/1999/xhtml" {
		t.Errorf("xmlns = %q, want xhtml namespace", got)
	}

	head := html.SelectElement("head")
	if head == nil {
		t.Fatal("no head element")
	}
	if title := head.SelectElement("title"); title == nil || title.Text() != "doc-1" {
		t.Error("title should carry the document id")
	}

	body := html.SelectElement("body")
	if body == nil {
		t.Fatal("no body element")
	}

	table := body.SelectElement("table")
	if table == nil {
		t.Fatal("no table scaffold for grid")
	}
	if got := table.SelectAttrValue("id", ""); got != "data" {
		t.Errorf("table id = %q, want data", got)
	}
	if got := table.SelectAttrValue("class", ""); got != "wide" {
		t.Errorf("table class = %q, want wide", got)
	}

	ul := body.SelectElement("ul")
	if ul == nil {
		t.Fatal("no ul scaffold for nested")
	}
	if ul.SelectElement("li") == nil {
		t.Error("child combinator should nest li inside ul")
	}

	if dt, dd := body.SelectElement("dt"), body.SelectElement("dd"); dt == nil || dd == nil {
		t.Error("adjacent combinator should put dt and dd side by side in body")
	} else if dt.SelectElement("dd") != nil {
		t.Error("adjacent combinator must not nest")
	}

	a := body.SelectElement("a")
	if a == nil {
		t.Fatal("no a scaffold for image-link")
	}
	if got := a.SelectAttrValue("href", "missing"); got != ".png" {
		t.Errorf("href = %q, want operator split value .png", got)
	}

	input := body.SelectElement("input")
	if input == nil {
		t.Fatal("no input scaffold for switch")
	}
	if got := input.SelectAttrValue("disabled", "missing"); got != "" {
		t.Errorf("disabled = %q, want bare empty attribute", got)
	}
}

func TestSplitAttr(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantName  string
		wantValue string
		wantOp    bool
	}{
		{"equals", "type=password", "type", "password", true},
		{"suffix with quotes", `href$=".png"`, "href", ".png", true},
		{"word match", "class~='active'", "class", "active", true},
		{"prefix", "lang|=en", "lang", "en", true},
		{"contains", "title*=hello", "title", "hello", true},
		{"starts with", "src^=https", "src", "https", true},
		{"bare attribute", "disabled", "disabled", "", false},
		{"tilde without equals", "weird~thing", "weird~thing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, value, hasOp := splitAttr(tt.text)
			if name != tt.wantName || value != tt.wantValue || hasOp != tt.wantOp {
				t.Errorf("splitAttr(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.text, name, value, hasOp, tt.wantName, tt.wantValue, tt.wantOp)
			}
		})
	}
}

func TestRender_UnknownFormatPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid format")
		}
	}()
	_, _ = Render("doc-1", nil, config.EmitFmt(42), false, config.SortModeDocument)
}
