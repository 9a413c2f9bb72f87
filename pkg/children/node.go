package children

// Node is a ready-made child tree for hosts without their own node type.
type Node[T any] struct {
	kind    Kind
	value   T
	members []Node[T]
}

// Leaf wraps a value as a leaf node.
func Leaf[T any](value T) Node[T] {
	return Node[T]{kind: KindLeaf, value: value}
}

// Absent returns an empty slot.
func Absent[T any]() Node[T] {
	return Node[T]{kind: KindAbsent}
}

// Collection returns an ordered collection of nodes.
func Collection[T any](members ...Node[T]) Node[T] {
	return Node[T]{kind: KindCollection, members: members}
}

// Group returns a transparent wrapper around members.
func Group[T any](members ...Node[T]) Node[T] {
	return Node[T]{kind: KindGroup, members: members}
}

// Kind reports the node kind.
func (n Node[T]) Kind() Kind {
	return n.kind
}

// Value returns the wrapped value; it is the zero value for non-leaf nodes.
func (n Node[T]) Value() T {
	return n.value
}

// ClassifyNode is the Classifier for Node trees. The zero Node is absent.
func ClassifyNode[T any](n Node[T]) (Kind, []Node[T]) {
	return n.kind, n.members
}

// Values extracts the wrapped values of a flattened node list. Absent placeholders
// yield the zero value of T.
func Values[T any](nodes []Node[T]) []T {
	values := make([]T, len(nodes))
	for i, n := range nodes {
		values[i] = n.value
	}
	return values
}
