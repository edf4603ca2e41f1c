package syntax

import "fmt"

// Span is a half-open byte range [Start, End) in the source text.
// The zero value is an empty span at offset 0.
type Span struct {
	Start int
	End   int
}

// String returns the span in the format "start..end".
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Len returns the number of bytes covered.
func (s Span) Len() int {
	return s.End - s.Start
}

// Span returns the bytes covered by the token's text.
func (t *Token) Span() Span {
	return Span{Start: t.pos, End: t.pos + len(t.text)}
}

// NodeSpan returns the range from the first to the last token of n.
// Synthesized tokens are zero-width and do not extend the range.
func NodeSpan(n Node) Span {
	toks := Tokens(n)
	if len(toks) == 0 {
		return Span{}
	}
	span := toks[0].Span()
	for _, tok := range toks[1:] {
		if end := tok.Span().End; end > span.End {
			span.End = end
		}
	}
	return span
}
