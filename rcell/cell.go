package rcell

import "github.com/sirkon/errors"

// borrowExclusive значение состояния заимствований при выданном
// эксклюзивном доступе. Положительные значения – число читателей.
const borrowExclusive = -1

// Releaser реализуется значениями, которые сами держат ручки ячеек.
// Release вызывается когда отпускается последний владелец значения.
type Releaser interface {
	Release()
}

type box[T any] struct {
	value  T
	owners int
	borrow int
}

func (b *box[T]) state() (readers int, exclusive bool) {
	if b.borrow == borrowExclusive {
		return 0, true
	}

	return b.borrow, false
}

// Cell ручка владения разделяемым значением с проверкой заимствований
// во время исполнения.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Cell[T any] struct {
	b *box[T]
}

// New конструктор ячейки с единственным владельцем.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{
		b: &box[T]{
			value:  v,
			owners: 1,
		},
	}
}

// Clone возвращает новую ручку на то же значение, число владельцев растёт на единицу.
func (c *Cell[T]) Clone() *Cell[T] {
	b := c.box()
	b.owners++

	return &Cell[T]{b: b}
}

// Drop отпускает ручку. Когда отпущен последний владелец значение
// освобождается: вызывается Release, если значение реализует Releaser,
// а хранимое значение обнуляется.
func (c *Cell[T]) Drop() {
	b := c.box()
	if b.owners == 1 && b.borrow != 0 {
		panic(b.conflict("drop"))
	}

	c.b = nil
	b.owners--
	if b.owners > 0 {
		return
	}

	if r, ok := any(&b.value).(Releaser); ok {
		r.Release()
	}
	var zero T
	b.value = zero
}

// Read выдаёт разделяемое заимствование значения.
func (c *Cell[T]) Read() (*ReadGuard[T], error) {
	b := c.box()
	if b.borrow == borrowExclusive {
		return nil, b.conflict("read")
	}

	b.borrow++
	return &ReadGuard[T]{
		ptr: &b.value,
		release: func() {
			b.borrow--
		},
	}, nil
}

// Write выдаёт эксклюзивное заимствование значения.
func (c *Cell[T]) Write() (*WriteGuard[T], error) {
	b := c.box()
	if b.borrow != 0 {
		return nil, b.conflict("write")
	}

	b.borrow = borrowExclusive
	return &WriteGuard[T]{
		ptr: &b.value,
		release: func() {
			b.borrow = 0
		},
	}, nil
}

// TryUnwrap забирает значение из ячейки если данная ручка – единственный
// владелец, и заимствований нет. Ручка после этого считается отпущенной.
// Иначе ячейка остаётся без изменений.
func (c *Cell[T]) TryUnwrap() (T, error) {
	b := c.box()
	var zero T
	if b.owners != 1 {
		return zero, errors.Wrap(ErrShared, "unwrap").Int("owners", b.owners)
	}
	if b.borrow != 0 {
		return zero, b.conflict("unwrap")
	}

	v := b.value
	b.value = zero
	b.owners = 0
	c.b = nil

	return v, nil
}

// Owners число владельцев значения.
func (c *Cell[T]) Owners() int {
	return c.box().owners
}

// Borrowed текущее состояние заимствований.
func (c *Cell[T]) Borrowed() (readers int, exclusive bool) {
	return c.box().state()
}

// Same проверяет, что обе ручки указывают на одно значение.
func (c *Cell[T]) Same(other *Cell[T]) bool {
	return c.box() == other.box()
}

func (c *Cell[T]) box() *box[T] {
	if c.b == nil {
		panic(ErrHandleDropped)
	}

	return c.b
}
