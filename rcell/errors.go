package rcell

import "github.com/sirkon/errors"

const (
	// ErrBorrowConflict запрошенное заимствование несовместимо с уже выданными.
	ErrBorrowConflict errors.Const = "borrow conflict"

	// ErrShared значение ячейки разделяется с другими владельцами.
	ErrShared errors.Const = "cell is shared with other owners"

	// ErrHandleDropped обращение через отпущенную ручку ячейки.
	ErrHandleDropped errors.Const = "cell handle has been dropped"

	// ErrGuardReleased обращение через отпущенное заимствование.
	ErrGuardReleased errors.Const = "guard has been released"
)

func (b *box[T]) conflict(requested string) error {
	readers, exclusive := b.state()
	return errors.Wrap(ErrBorrowConflict, "borrow for "+requested).
		Int("readers", readers).
		Bool("exclusive", exclusive).
		Int("owners", b.owners)
}
