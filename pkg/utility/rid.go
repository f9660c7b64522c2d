package utility

import (
	"sync"

	"github.com/google/uuid"
)

type RunID = uuid.UUID

var (
	runID     RunID
	runIDOnce sync.Once
)

// GetRunID returns the process-wide run identifier, stamped on logs and
// exports so a report can be traced back to the invocation that produced it.
func GetRunID() RunID {
	runIDOnce.Do(func() {
		runID = uuid.Must(uuid.NewV7())
	})
	return runID
}
