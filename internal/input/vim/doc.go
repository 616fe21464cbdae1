// Package vim resolves normal-mode key sequences such as "3j", "dd" or
// "<C-w>v" into editor commands.
//
// Keys are accumulated in a pending buffer. After every key the buffer is
// matched against the grammar in this order:
//
//  1. A leading digit run starting with 1-9 is a repeat count. Digits alone
//     stay pending; the suffix must be a rule that accepts a count.
//  2. Two-key operators: dd, dw, cw, gg.
//  3. Window commands prefixed with Ctrl-W: <C-w>v, <C-w>s, <C-w>h, <C-w>l,
//     <C-w>q, <C-w>c and their <C-w><C-x> variants.
//  4. Single keys: motions, mode switches, x, p.
//  5. Anything that is not a prefix of a rule is dropped.
//
// Rules live in a trie, so steps 2 to 5 are one walk: a node with an action
// completes the sequence, an inner node keeps it pending, and falling off
// the trie rejects it. The grammar is kept prefix-free, which is what makes
// single keys dispatch immediately.
//
// In rule notation a Ctrl chord is written as '^' followed by the upper-case
// letter ("^Wv"). Internally the chord is stored as a marker byte that no
// printable key produces, so a typed '^' and Ctrl-W never collide.
package vim
