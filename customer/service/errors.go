package service

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidInput     = errors.New("invalid customer input")
)

// OrphanedCustomerError reports a lead conversion that wrote the customer
// but failed to write the job. The customer document stays in the store
// and is not rolled back; callers get its id so the record can be reused
// or cleaned up.
type OrphanedCustomerError struct {
	CustomerID string
	Cause      error
}

func (e *OrphanedCustomerError) Error() string {
	return fmt.Sprintf("lead conversion left orphaned customer %s: %v", e.CustomerID, e.Cause)
}

func (e *OrphanedCustomerError) Unwrap() error {
	return e.Cause
}

// ActiveJobError blocks customer deletion while a live job still
// references the customer.
type ActiveJobError struct {
	JobID  string
	Status string
}

func (e *ActiveJobError) Error() string {
	return fmt.Sprintf("job %s is still %s", e.JobID, e.Status)
}
