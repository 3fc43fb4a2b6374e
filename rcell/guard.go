package rcell

// ReadGuard выданное разделяемое заимствование.
// Отпускается через Release, повторный вызов ничего не делает.
type ReadGuard[T any] struct {
	ptr     *T
	release func()
}

// Value копия заимствованного значения.
func (g *ReadGuard[T]) Value() T {
	return *g.get()
}

// Release отпускание заимствования.
func (g *ReadGuard[T]) Release() {
	if g.release == nil {
		return
	}

	g.release()
	g.ptr = nil
	g.release = nil
}

func (g *ReadGuard[T]) get() *T {
	if g.release == nil {
		panic(ErrGuardReleased)
	}

	return g.ptr
}

// WriteGuard выданное эксклюзивное заимствование.
// Отпускается через Release, повторный вызов ничего не делает.
type WriteGuard[T any] struct {
	ptr     *T
	release func()
}

// Ptr указатель на заимствованное значение. Не должен использоваться
// после Release.
func (g *WriteGuard[T]) Ptr() *T {
	return g.get()
}

// Value копия заимствованного значения.
func (g *WriteGuard[T]) Value() T {
	return *g.get()
}

// Set замена заимствованного значения.
func (g *WriteGuard[T]) Set(v T) {
	*g.get() = v
}

// Release отпускание заимствования.
func (g *WriteGuard[T]) Release() {
	if g.release == nil {
		return
	}

	g.release()
	g.ptr = nil
	g.release = nil
}

func (g *WriteGuard[T]) get() *T {
	if g.release == nil {
		panic(ErrGuardReleased)
	}

	return g.ptr
}

// MapRead переносит заимствование со всего значения на его часть, без копирования.
// Исходное заимствование после этого недействительно, отпускать нужно результат.
func MapRead[T, U any](g *ReadGuard[T], f func(*T) *U) *ReadGuard[U] {
	res := &ReadGuard[U]{
		ptr:     f(g.get()),
		release: g.release,
	}
	g.ptr = nil
	g.release = nil

	return res
}

// MapWrite то же, что и MapRead, для эксклюзивного заимствования.
func MapWrite[T, U any](g *WriteGuard[T], f func(*T) *U) *WriteGuard[U] {
	res := &WriteGuard[U]{
		ptr:     f(g.get()),
		release: g.release,
	}
	g.ptr = nil
	g.release = nil

	return res
}
