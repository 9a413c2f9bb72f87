// Package children normalises nested child trees into flat, position-annotated lists.
//
// Hosts describe their own node types through a Classifier, which tells the flattener
// whether a node is absent, an ordered collection, a transparent group wrapper or a leaf.
package children

// Kind classifies a child node for flattening.
type Kind int

const (
	// KindAbsent marks an empty slot (nil in most hosts).
	KindAbsent Kind = iota
	// KindCollection marks an ordered list of child nodes.
	KindCollection
	// KindGroup marks a transparent wrapper whose payload is spliced into the parent.
	KindGroup
	// KindLeaf marks an opaque renderable value.
	KindLeaf
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindCollection:
		return "collection"
	case KindGroup:
		return "group"
	case KindLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// Classifier reports the kind of a node and, for collections and groups, its members.
type Classifier[T any] func(node T) (Kind, []T)

// Options controls flattening.
type Options struct {
	// KeepEmpty retains absent nodes as placeholders instead of dropping them.
	KeepEmpty bool
}

// Flatten walks nodes depth-first and returns the leaves in order. Group wrappers
// never appear in the result. Absent nodes are dropped unless opts.KeepEmpty is set,
// in which case the absent value itself is emitted. Cyclic input is not supported.
func Flatten[T any](nodes []T, classify Classifier[T], opts Options) []T {
	result := make([]T, 0, len(nodes))
	for _, node := range nodes {
		flattenInto(node, classify, opts, &result)
	}
	return result
}

// FlattenNode flattens a single root node.
func FlattenNode[T any](root T, classify Classifier[T], opts Options) []T {
	var result []T
	flattenInto(root, classify, opts, &result)
	return result
}

func flattenInto[T any](node T, classify Classifier[T], opts Options, result *[]T) {
	kind, members := classify(node)
	switch kind {
	case KindAbsent:
		if opts.KeepEmpty {
			*result = append(*result, node)
		}
	case KindCollection, KindGroup:
		for _, member := range members {
			flattenInto(member, classify, opts, result)
		}
	default:
		*result = append(*result, node)
	}
}
