package deque

//go:generate mockgen -source=logger.go -destination=internal/mocks/logger_mock.go -package=mocks -mock_names=Logger=LoggerMock

// Logger абстракция логирования событий деки.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// BorrowConflict операция op наткнулась на несовместимое заимствование узла.
	// Сразу после этого операция паникует с той же ошибкой.
	BorrowConflict(op string, err error)

	// OwnershipViolation при извлечении значения у узла оказалось owners
	// владельцев вместо одного.
	OwnershipViolation(op string, owners int)

	// Drained дека разобрана вызовом Close, было выброшено count элементов.
	Drained(count int)
}

type nopLogger struct{}

func (nopLogger) BorrowConflict(string, error) {}
func (nopLogger) OwnershipViolation(string, int) {}
func (nopLogger) Drained(int) {}
