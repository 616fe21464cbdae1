// Package pane implements editor panes and the split layout that tiles them.
//
// A Pane is a rectangular viewport bound to one edit buffer. It keeps the
// visible byte range [Start, End] of that buffer, where Start is a line start
// and End is the end of the last visible line, and scrolls it so that the
// cursor stays visible. One row of every pane is reserved for its status
// line, so a pane of height h shows at most h-1 text lines.
//
// Panes are kept in a Layout: an arena of nodes forming a binary split tree.
// Leaves hold panes, inner nodes record how their rectangle was divided.
// Nodes are addressed by index and removed by swap-remove, so indices are
// only stable between structural changes. The active pane is tracked as a
// node index that the layout keeps up to date.
package pane
