package deque

import "github.com/sirkon/rcdeque/rcell"

// node узел деки. Соседние узлы владеют им совместно через rcell.Cell.
type node[T any] struct {
	prev *rcell.Cell[node[T]]
	next *rcell.Cell[node[T]]

	value T
}

func newNode[T any](v T) *rcell.Cell[node[T]] {
	return rcell.New(node[T]{value: v})
}

// Release отпускает ссылки на соседей, если они остались. Вызывается
// при отпускании последнего владельца узла и может каскадно отпустить
// всю цепочку, поэтому дека при разборе сама отвязывает узлы по одному.
func (n *node[T]) Release() {
	if n.prev != nil {
		n.prev.Drop()
		n.prev = nil
	}

	if n.next != nil {
		n.next.Drop()
		n.next = nil
	}
}
