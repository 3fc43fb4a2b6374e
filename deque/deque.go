package deque

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/rcdeque/rcell"
)

// Options опции деки.
type Options struct {
	// Logger получатель событий деки, по умолчанию ничего не логируется.
	Logger Logger
}

// New конструктор пустой деки.
func New[T any]() *Deque[T] {
	return NewWithOptions[T](Options{})
}

// NewWithOptions конструктор пустой деки с данными опциями.
func NewWithOptions[T any](opts Options) *Deque[T] {
	log := opts.Logger
	if log == nil {
		log = nopLogger{}
	}

	return &Deque[T]{
		log: log,
	}
}

// Deque двусвязная дека, узлы которой разделены между соседями.
// Доступ к содержимому узлов проверяется во время исполнения: заимствование
// полученное через Peek* должно быть отпущено до любого Push*/Pop*
// затрагивающего тот же узел, иначе операция паникует с ошибкой
// оборачивающей rcell.ErrBorrowConflict.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Deque[T any] struct {
	head *rcell.Cell[node[T]]
	tail *rcell.Cell[node[T]]

	length int
	log    Logger
}

// Len число элементов в деке.
func (d *Deque[T]) Len() int {
	return d.length
}

// PushFront добавление значения в начало.
func (d *Deque[T]) PushFront(v T) {
	if d.head == nil {
		d.pushFirst(v)
		return
	}

	g := d.write(d.head, "push front")
	defer g.Release()

	n := rcell.New(node[T]{
		next:  d.head,
		value: v,
	})
	g.Ptr().prev = n.Clone()
	d.head = n
	d.length++
}

// PushBack добавление значения в конец.
func (d *Deque[T]) PushBack(v T) {
	if d.tail == nil {
		d.pushFirst(v)
		return
	}

	g := d.write(d.tail, "push back")
	defer g.Release()

	n := rcell.New(node[T]{
		prev:  d.tail,
		value: v,
	})
	g.Ptr().next = n.Clone()
	d.tail = n
	d.length++
}

// PopFront извлечение первого значения. Возвращает false для пустой деки.
func (d *Deque[T]) PopFront() (v T, ok bool) {
	if d.head == nil {
		return v, false
	}

	return d.unwrap(d.takeFront(), "pop front"), true
}

// PopBack извлечение последнего значения. Возвращает false для пустой деки.
func (d *Deque[T]) PopBack() (v T, ok bool) {
	if d.tail == nil {
		return v, false
	}

	return d.unwrap(d.takeBack(), "pop back"), true
}

// Close разбор деки. Узлы отвязываются по одному с начала, чтобы
// отпускание длинной цепочки не уходило в рекурсию. После разбора
// дека пуста и пригодна к использованию.
func (d *Deque[T]) Close() {
	var count int
	for {
		if _, ok := d.PopFront(); !ok {
			break
		}
		count++
	}

	d.log.Drained(count)
}

func (d *Deque[T]) pushFirst(v T) {
	n := newNode(v)
	d.head = n
	d.tail = n.Clone()
	d.length++
}

// takeFront отвязывает первый узел и возвращает единственную оставшуюся ручку на него.
func (d *Deque[T]) takeFront() *rcell.Cell[node[T]] {
	const op = "pop front"

	g := d.write(d.head, op)
	defer g.Release()

	old := g.Ptr()
	if old.next == nil {
		// в деке был только один элемент
		d.tail.Drop()
		d.tail = nil
	} else {
		ng := d.write(old.next, op)
		defer ng.Release()

		ng.Ptr().prev.Drop()
		ng.Ptr().prev = nil
	}

	res := d.head
	d.head = old.next
	old.next = nil
	d.length--

	return res
}

// takeBack отвязывает последний узел и возвращает единственную оставшуюся ручку на него.
func (d *Deque[T]) takeBack() *rcell.Cell[node[T]] {
	const op = "pop back"

	g := d.write(d.tail, op)
	defer g.Release()

	old := g.Ptr()
	if old.prev == nil {
		// в деке был только один элемент
		d.head.Drop()
		d.head = nil
	} else {
		pg := d.write(old.prev, op)
		defer pg.Release()

		pg.Ptr().next.Drop()
		pg.Ptr().next = nil
	}

	res := d.tail
	d.tail = old.prev
	old.prev = nil
	d.length--

	return res
}

func (d *Deque[T]) write(c *rcell.Cell[node[T]], op string) *rcell.WriteGuard[node[T]] {
	g, err := c.Write()
	if err != nil {
		d.conflict(op, err)
	}

	return g
}

func (d *Deque[T]) unwrap(c *rcell.Cell[node[T]], op string) T {
	n, err := c.TryUnwrap()
	if err != nil {
		if errors.Is(err, rcell.ErrBorrowConflict) {
			d.conflict(op, err)
		}

		d.log.OwnershipViolation(op, c.Owners())
		panic(errors.Wrap(err, op))
	}

	return n.value
}

func (d *Deque[T]) conflict(op string, err error) {
	d.log.BorrowConflict(op, err)
	panic(errors.Wrap(err, op))
}
