package app

import (
	"github.com/google/uuid"

	"github.com/dshills/shin/internal/config"
	"github.com/dshills/shin/internal/engine/buffer"
	"github.com/dshills/shin/internal/engine/cursor"
	"github.com/dshills/shin/internal/highlight"
)

// spanCache keeps the spans and line count of each displayed buffer until
// its text version or path changes.
type spanCache struct {
	enabled  bool
	language string
	entries  map[uuid.UUID]*spanEntry
}

type spanEntry struct {
	path    string
	version uint64
	hl      highlight.Highlighter
	spans   []highlight.Span
	lines   int
}

func newSpanCache(c config.Highlight) *spanCache {
	return &spanCache{
		enabled:  c.Enabled,
		language: c.Language,
		entries:  make(map[uuid.UUID]*spanEntry),
	}
}

func (c *spanCache) entry(buf *buffer.Buffer) *spanEntry {
	e := c.entries[buf.ID()]
	switch {
	case e == nil || e.path != buf.Path():
		e = &spanEntry{path: buf.Path(), version: buf.Version()}
		if c.enabled {
			e.hl = c.pick(buf.Path())
		}
		c.entries[buf.ID()] = e
	case e.version != buf.Version():
		e.version = buf.Version()
	default:
		return e
	}
	e.lines = cursor.LineCount(buf)
	e.spans = nil
	if e.hl != nil {
		e.spans = e.hl.Highlight(buf.Bytes())
	}
	return e
}

// spans returns the highlight spans of buf, or nil when highlighting is off
// or no lexer fits.
func (c *spanCache) spans(buf *buffer.Buffer) []highlight.Span {
	return c.entry(buf).spans
}

// lines returns the line count of buf.
func (c *spanCache) lines(buf *buffer.Buffer) int {
	return c.entry(buf).lines
}

func (c *spanCache) pick(path string) highlight.Highlighter {
	if c.language != "" {
		if h := highlight.ForLanguage(c.language); h != nil {
			return h
		}
	}
	if h := highlight.ForFile(path); h != nil {
		return h
	}
	return nil
}

// prune drops entries of buffers no longer displayed.
func (c *spanCache) prune(live map[uuid.UUID]bool) {
	for id := range c.entries {
		if !live[id] {
			delete(c.entries, id)
		}
	}
}
