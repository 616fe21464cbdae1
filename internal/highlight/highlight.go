// Package highlight classifies buffer bytes for syntax coloring.
//
// A Highlighter turns a byte slice into sorted, non-overlapping Spans. Bytes
// not covered by any span are plain text. The renderer maps each Tag to a
// color from the configured palette.
package highlight

import (
	"path/filepath"
	"sort"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Tag classifies a run of text.
type Tag uint8

const (
	TagPlain Tag = iota
	TagKeyword
	TagDirective
	TagNumber
	TagString
	TagType
	TagComment
	TagCount
)

var tagNames = [TagCount]string{
	TagPlain:     "plain",
	TagKeyword:   "keyword",
	TagDirective: "directive",
	TagNumber:    "number",
	TagString:    "string",
	TagType:      "type",
	TagComment:   "comment",
}

func (t Tag) String() string {
	if t < TagCount {
		return tagNames[t]
	}
	return "unknown"
}

// ParseTag returns the tag with the given name.
func ParseTag(name string) (Tag, bool) {
	for i, n := range tagNames {
		if n == name {
			return Tag(i), true
		}
	}
	return TagPlain, false
}

// Span tags the bytes [Start, End).
type Span struct {
	Start, End int
	Tag        Tag
}

// Highlighter produces spans for a source text.
type Highlighter interface {
	Highlight(src []byte) []Span
}

// Chroma highlights with a chroma lexer.
type Chroma struct {
	lexer chroma.Lexer
}

// ForFile returns a highlighter chosen by the file name, or nil when no
// lexer matches.
func ForFile(path string) *Chroma {
	if path == "" {
		return nil
	}
	l := lexers.Match(filepath.Base(path))
	if l == nil {
		return nil
	}
	return &Chroma{lexer: chroma.Coalesce(l)}
}

// ForLanguage returns a highlighter for a lexer name such as "go" or "c",
// or nil when chroma has no such lexer.
func ForLanguage(name string) *Chroma {
	l := lexers.Get(name)
	if l == nil {
		return nil
	}
	return &Chroma{lexer: chroma.Coalesce(l)}
}

// Name returns the lexer name.
func (c *Chroma) Name() string {
	return c.lexer.Config().Name
}

// Highlight tokenises src. Tokenisation errors yield no spans.
func (c *Chroma) Highlight(src []byte) []Span {
	it, err := c.lexer.Tokenise(nil, string(src))
	if err != nil {
		return nil
	}

	var spans []Span
	off := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		start := off
		off += len(tok.Value)
		end := min(off, len(src))
		if start >= end {
			continue
		}
		tag := TagFor(tok.Type)
		if tag == TagPlain {
			continue
		}
		if n := len(spans); n > 0 && spans[n-1].Tag == tag && spans[n-1].End == start {
			spans[n-1].End = end
			continue
		}
		spans = append(spans, Span{Start: start, End: end, Tag: tag})
	}
	return spans
}

// TagFor maps a chroma token type to a Tag.
func TagFor(t chroma.TokenType) Tag {
	switch {
	case t == chroma.CommentPreproc || t == chroma.CommentPreprocFile:
		return TagDirective
	case t.InCategory(chroma.Comment):
		return TagComment
	case t == chroma.KeywordType || t == chroma.NameClass:
		return TagType
	case t.InCategory(chroma.Keyword):
		return TagKeyword
	case t.InSubCategory(chroma.LiteralNumber):
		return TagNumber
	case t.InSubCategory(chroma.LiteralString):
		return TagString
	}
	return TagPlain
}

// At returns the tag covering off.
func At(spans []Span, off int) Tag {
	i := sort.Search(len(spans), func(i int) bool { return spans[i].End > off })
	if i < len(spans) && spans[i].Start <= off {
		return spans[i].Tag
	}
	return TagPlain
}
