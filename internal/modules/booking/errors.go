package booking

import (
	"errors"
	"fmt"
)

var (
	ErrSlotTaken           = errors.New("time slot not available")
	ErrConsultoriaNotFound = errors.New("consultoria not found or inactive")
)

// ValidationError carries one entry per invalid field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
