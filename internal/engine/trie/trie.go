// Package trie provides a rune-keyed prefix tree mapping short tokens to a
// single string value.
//
// Keys are walked one Unicode code point at a time. Matching is
// case-sensitive and performs no normalization.
package trie

// Entry is a key/value pair used to seed a Trie.
type Entry struct {
	Key   string
	Value string
}

// node is a single trie node. A node holds a value only when some inserted
// key ends exactly at it.
type node struct {
	children map[rune]*node
	value    string
	terminal bool
}

// Trie is a prefix tree from rune sequences to string values.
//
// Trie is not safe for concurrent use.
type Trie struct {
	root *node
	size int
}

// New creates a trie seeded with the given entries.
// Later entries overwrite earlier ones with the same key.
func New(entries ...Entry) *Trie {
	t := &Trie{root: &node{}}
	for _, e := range entries {
		t.Insert(e.Key, e.Value)
	}
	return t
}

// Insert stores value under key, creating intermediate nodes as needed.
// Re-inserting an existing key overwrites its value.
func (t *Trie) Insert(key, value string) {
	n := t.root
	for _, r := range key {
		child, ok := n.children[r]
		if !ok {
			if n.children == nil {
				n.children = make(map[rune]*node)
			}
			child = &node{}
			n.children[r] = child
		}
		n = child
	}
	if !n.terminal {
		t.size++
	}
	n.value = value
	n.terminal = true
}

// Lookup walks prefix one rune at a time and returns the value stored at
// the node it ends on.
//
// The whole prefix must match an existing path; there is no partial match
// and no search among descendants. Lookup("gho") reports false unless
// "gho" itself was inserted, even if "ghost" was.
func (t *Trie) Lookup(prefix string) (string, bool) {
	n := t.root
	for _, r := range prefix {
		child, ok := n.children[r]
		if !ok {
			return "", false
		}
		n = child
	}
	if !n.terminal {
		return "", false
	}
	return n.value, true
}

// Contains reports whether key was inserted as a complete key.
func (t *Trie) Contains(key string) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Len returns the number of distinct keys stored.
func (t *Trie) Len() int {
	return t.size
}
