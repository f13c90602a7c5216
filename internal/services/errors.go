package services

import (
	"errors"
	"fmt"
)

// ErrRejected marks input that fails the validation gate. Rejected mutations
// never reach storage; callers that want the drop-silently behavior just
// check errors.Is(err, ErrRejected) and move on.
var ErrRejected = errors.New("input rejected")

var (
	ErrNameRequired   = fmt.Errorf("harvest name is required: %w", ErrRejected)
	ErrWorkerRequired = fmt.Errorf("worker name is required: %w", ErrRejected)
	ErrWeightInvalid  = fmt.Errorf("weight must be a positive number: %w", ErrRejected)
)

var ErrHarvestNotFound = errors.New("harvest not found")
