// Package selector builds CSS selector strings.
//
// A Simple selector accumulates parts through chainable calls, enforcing the
// CSS3 ordering of part kinds and the single occurrence of element, id and
// pseudo-element parts. Combine joins finished selectors into a tree which
// renders left to right:
//
//	s := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
//	fmt.Println(s) // a[href$=".png"]:focus
//
// Builders report misuse through Err and Build instead of panicking. The
// offending part is never appended and the first violation wins, so a chain
// is always safe to finish.
//
// Selectors are assembled, not parsed: part text is taken verbatim and no
// attempt is made to check it against CSS syntax.
package selector
