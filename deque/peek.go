package deque

import "github.com/sirkon/rcdeque/rcell"

// PeekFront разделяемое заимствование первого значения.
// Заимствование должно быть отпущено до изменения деки.
func (d *Deque[T]) PeekFront() (*rcell.ReadGuard[T], bool) {
	return d.peek(d.head, "peek front")
}

// PeekBack разделяемое заимствование последнего значения.
func (d *Deque[T]) PeekBack() (*rcell.ReadGuard[T], bool) {
	return d.peek(d.tail, "peek back")
}

// PeekFrontMut эксклюзивное заимствование первого значения для изменения на месте.
func (d *Deque[T]) PeekFrontMut() (*rcell.WriteGuard[T], bool) {
	return d.peekMut(d.head, "peek front mut")
}

// PeekBackMut эксклюзивное заимствование последнего значения для изменения на месте.
func (d *Deque[T]) PeekBackMut() (*rcell.WriteGuard[T], bool) {
	return d.peekMut(d.tail, "peek back mut")
}

func (d *Deque[T]) peek(c *rcell.Cell[node[T]], op string) (*rcell.ReadGuard[T], bool) {
	if c == nil {
		return nil, false
	}

	g, err := c.Read()
	if err != nil {
		d.conflict(op, err)
	}

	return rcell.MapRead(g, nodeValue[T]), true
}

func (d *Deque[T]) peekMut(c *rcell.Cell[node[T]], op string) (*rcell.WriteGuard[T], bool) {
	if c == nil {
		return nil, false
	}

	return rcell.MapWrite(d.write(c, op), nodeValue[T]), true
}

func nodeValue[T any](n *node[T]) *T {
	return &n.value
}
