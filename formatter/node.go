package formatter

// Kind identifies the JSON type held by a Node
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

type field struct {
	key   string
	value *Node
}

// Node is a single JSON value. Objects keep their keys in document order and
// numbers keep the literal text they were parsed from.
type Node struct {
	kind   Kind
	text   string // string value, or number literal
	b      bool
	items  []*Node
	fields []field
}

// NewNull creates a null node
func NewNull() *Node { return &Node{kind: KindNull} }

// NewBool creates a boolean node
func NewBool(b bool) *Node { return &Node{kind: KindBool, b: b} }

// NewNumber creates a number node from its literal text, e.g. "55.75"
func NewNumber(literal string) *Node { return &Node{kind: KindNumber, text: literal} }

// NewString creates a string node
func NewString(s string) *Node { return &Node{kind: KindString, text: s} }

// NewArray creates an array node holding items
func NewArray(items ...*Node) *Node {
	return &Node{kind: KindArray, items: append([]*Node{}, items...)}
}

// NewObject creates an empty object node
func NewObject() *Node { return &Node{kind: KindObject} }

// Kind returns the JSON type of the node
func (n *Node) Kind() Kind { return n.kind }

// Str returns the string value; ok is false for non-string nodes
func (n *Node) Str() (string, bool) {
	if n == nil || n.kind != KindString {
		return "", false
	}
	return n.text, true
}

// Literal returns the number literal; ok is false for non-number nodes
func (n *Node) Literal() (string, bool) {
	if n == nil || n.kind != KindNumber {
		return "", false
	}
	return n.text, true
}

// Bool returns the boolean value; ok is false for non-bool nodes
func (n *Node) Bool() (bool, bool) {
	if n == nil || n.kind != KindBool {
		return false, false
	}
	return n.b, true
}

// Items returns the elements of an array node, nil otherwise.
// The returned slice shares the nodes, so mutating them mutates the document.
func (n *Node) Items() []*Node {
	if n == nil || n.kind != KindArray {
		return nil
	}
	return n.items
}

// Append adds items to the end of an array node
func (n *Node) Append(items ...*Node) {
	if n == nil || n.kind != KindArray {
		return
	}
	n.items = append(n.items, items...)
}

// Len returns the number of array items or object fields
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.kind {
	case KindArray:
		return len(n.items)
	case KindObject:
		return len(n.fields)
	}
	return 0
}

// Keys returns object keys in document order
func (n *Node) Keys() []string {
	if n == nil || n.kind != KindObject {
		return nil
	}
	keys := make([]string, len(n.fields))
	for i, f := range n.fields {
		keys[i] = f.key
	}
	return keys
}

// Get returns the value stored under key, or nil when n is not an object or
// has no such key
func (n *Node) Get(key string) *Node {
	if n == nil || n.kind != KindObject {
		return nil
	}
	for _, f := range n.fields {
		if f.key == key {
			return f.value
		}
	}
	return nil
}

// Has reports whether an object node has key
func (n *Node) Has(key string) bool {
	return n.Get(key) != nil
}

// Set stores value under key. An existing key keeps its position, a new key
// is appended after the existing ones. Set on a non-object node is a no-op.
func (n *Node) Set(key string, value *Node) {
	if n == nil || n.kind != KindObject {
		return
	}
	for i := range n.fields {
		if n.fields[i].key == key {
			n.fields[i].value = value
			return
		}
	}
	n.fields = append(n.fields, field{key: key, value: value})
}

// Delete removes key from an object node and reports whether it was present
func (n *Node) Delete(key string) bool {
	if n == nil || n.kind != KindObject {
		return false
	}
	for i := range n.fields {
		if n.fields[i].key == key {
			n.fields = append(n.fields[:i], n.fields[i+1:]...)
			return true
		}
	}
	return false
}

// Equal reports whether a and b hold the same JSON value. Object key order is
// significant and numbers compare by literal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber, KindString:
		return a.text == b.text
	case KindArray:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.fields) != len(b.fields) {
			return false
		}
		for i := range a.fields {
			if a.fields[i].key != b.fields[i].key || !Equal(a.fields[i].value, b.fields[i].value) {
				return false
			}
		}
		return true
	}
	return false
}
