package tui

import (
	"fmt"

	"github.com/google/uuid"
)

var operations = []string{"sync", "save", "upload", "fetch"}

// OperationError is reported when a simulated operation fails.
type OperationError struct {
	ID        uuid.UUID
	Operation string
	Attempt   int
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed (attempt %d, operation %s)", e.Operation, e.Attempt, e.ID)
}

// newOperationError fails the n-th simulated operation.
func newOperationError(n int) *OperationError {
	return &OperationError{
		ID:        uuid.New(),
		Operation: operations[(n-1)%len(operations)],
		Attempt:   n,
	}
}
