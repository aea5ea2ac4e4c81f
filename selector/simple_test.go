package selector_test

import (
	"errors"
	"testing"

	"cssel/selector"
)

func TestSimple_Chaining(t *testing.T) {
	tests := []struct {
		name string
		sel  *selector.Simple
		want string
	}{
		{
			name: "single element",
			sel:  selector.Element("div"),
			want: "div",
		},
		{
			name: "single id",
			sel:  selector.ID("nav-bar"),
			want: "#nav-bar",
		},
		{
			name: "single class",
			sel:  selector.Class("draggable"),
			want: ".draggable",
		},
		{
			name: "single attribute",
			sel:  selector.Attr("ul[hidden='true']"),
			want: "[ul[hidden='true']]",
		},
		{
			name: "single pseudo-class",
			sel:  selector.PseudoClass("invalid"),
			want: ":invalid",
		},
		{
			name: "single pseudo-element",
			sel:  selector.PseudoElement("first-letter"),
			want: "::first-letter",
		},
		{
			name: "element with id and repeated classes",
			sel:  selector.Element("div").ID("main").Class("container").Class("draggable"),
			want: "div#main.container.draggable",
		},
		{
			name: "attribute and pseudo-class",
			sel:  selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus"),
			want: `a[href$=".png"]:focus`,
		},
		{
			name: "classes keep insertion order",
			sel:  selector.Class("a").Class("b"),
			want: ".a.b",
		},
		{
			name: "all six kinds",
			sel: selector.Element("input").ID("name").Class("x").
				Attr("type=password").PseudoClass("focus").PseudoElement("placeholder"),
			want: "input#name.x[type=password]:focus::placeholder",
		},
		{
			name: "repeated same kind before higher kind",
			sel:  selector.Element("li").Class("item").Class("selected").PseudoClass("hover"),
			want: "li.item.selected:hover",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.sel.Err(); err != nil {
				t.Fatalf("Err() = %v, want nil", err)
			}
			if got := tt.sel.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			got, err := tt.sel.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimple_ZeroValue(t *testing.T) {
	var s selector.Simple

	if got := s.String(); got != "" {
		t.Errorf("empty selector String() = %q, want %q", got, "")
	}

	if got := s.Class("a").Class("b").String(); got != ".a.b" {
		t.Errorf("String() = %q, want %q", got, ".a.b")
	}
}

func TestSimple_DuplicateParts(t *testing.T) {
	tests := []struct {
		name string
		sel  *selector.Simple
	}{
		{
			name: "second element",
			sel:  selector.Element("div").Element("span"),
		},
		{
			name: "second id",
			sel:  selector.Element("div").ID("one").ID("two"),
		},
		{
			name: "second pseudo-element",
			sel:  selector.PseudoElement("before").PseudoElement("after"),
		},
		{
			name: "duplicate id later in chain",
			sel:  selector.Element("table").ID("data").Class("wide").ID("data"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.sel.Err(), selector.ErrDuplicatePart) {
				t.Fatalf("Err() = %v, want ErrDuplicatePart", tt.sel.Err())
			}
			if _, err := tt.sel.Build(); !errors.Is(err, selector.ErrDuplicatePart) {
				t.Errorf("Build() error = %v, want ErrDuplicatePart", err)
			}
		})
	}
}

func TestSimple_OutOfOrderParts(t *testing.T) {
	tests := []struct {
		name string
		sel  *selector.Simple
	}{
		{
			name: "id after class",
			sel:  selector.Class("draggable").ID("main"),
		},
		{
			name: "element after id",
			sel:  selector.ID("main").Element("div"),
		},
		{
			name: "class after attribute",
			sel:  selector.Element("a").Attr("href").Class("external"),
		},
		{
			name: "pseudo-class after pseudo-element",
			sel:  selector.Element("p").PseudoElement("first-line").PseudoClass("hover"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.sel.Err(), selector.ErrPartOrder) {
				t.Fatalf("Err() = %v, want ErrPartOrder", tt.sel.Err())
			}
		})
	}
}

func TestSimple_ErrorMessages(t *testing.T) {
	// Messages are a contract, check them literally.
	if got, want := selector.ErrDuplicatePart.Error(),
		"Element, id and pseudo-element should not occur more then one time inside the selector"; got != want {
		t.Errorf("ErrDuplicatePart = %q, want %q", got, want)
	}
	if got, want := selector.ErrPartOrder.Error(),
		"Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element"; got != want {
		t.Errorf("ErrPartOrder = %q, want %q", got, want)
	}
}

func TestSimple_FailedAppendDoesNotMutate(t *testing.T) {
	s := selector.Element("div").ID("main")
	before := s.String()

	s.Element("span") // duplicate, must be discarded

	if got := s.String(); got != before {
		t.Errorf("String() after failed append = %q, want %q", got, before)
	}
	if parts := s.Parts(); len(parts) != 2 {
		t.Errorf("Parts() length after failed append = %d, want 2", len(parts))
	}
}

func TestSimple_FirstErrorSticks(t *testing.T) {
	// Order violation happens first, a later duplicate must not replace it.
	s := selector.Class("a").Element("div").Element("div")

	if !errors.Is(s.Err(), selector.ErrPartOrder) {
		t.Fatalf("Err() = %v, want ErrPartOrder", s.Err())
	}

	// Appends after a violation are no-ops, including valid ones.
	s.Class("b")
	if got := s.String(); got != ".a" {
		t.Errorf("String() = %q, want %q", got, ".a")
	}
}

func TestSimple_DuplicateWinsOverOrder(t *testing.T) {
	// Appending a second id after a class violates both rules, uniqueness is
	// checked first.
	s := selector.ID("main").Class("wide").ID("other")

	if !errors.Is(s.Err(), selector.ErrDuplicatePart) {
		t.Fatalf("Err() = %v, want ErrDuplicatePart", s.Err())
	}
}

func TestSimple_PartsIsACopy(t *testing.T) {
	s := selector.Element("div").Class("a")

	parts := s.Parts()
	parts[0].Text = "span"

	if got := s.String(); got != "div.a" {
		t.Errorf("String() after mutating Parts() copy = %q, want %q", got, "div.a")
	}
}

func TestSimple_StringIsRepeatable(t *testing.T) {
	s := selector.Element("div").Class("a")

	first := s.String()
	second := s.String()
	if first != second {
		t.Errorf("String() not stable: %q then %q", first, second)
	}
}
