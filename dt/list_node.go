package dt

// node is a single cell in the chain of a list. The list owns its
// head node, and every node owns the node after it.
type node[T comparable] struct {
	item T
	next *node[T]
}

func newNode[T comparable](val T) *node[T] { return &node[T]{item: val} }

// sever detaches the node from the chain and drops its content, so
// that nothing remains reachable through a removed node. It returns
// the content the node held.
func (n *node[T]) sever() (out T) {
	var zero T
	out = n.item
	n.item = zero
	n.next = nil
	return out
}
