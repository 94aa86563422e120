package types

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrEmptyID           = errors.New("node id cannot be empty")
	ErrEmptyEndpoint     = errors.New("edge endpoints cannot be empty")
	ErrEmptyRelationship = errors.New("edge relationship cannot be empty")
	ErrMissingProperties = errors.New("missing label-specific properties")
)

// SchemaError reports malformed seed data: a dangling edge reference or
// a duplicate node id. It is fatal at load time.
type SchemaError struct {
	Reason string
	NodeID string
}

func (e *SchemaError) Error() string {
	if e.NodeID != "" {
		return fmt.Sprintf("graph schema error: %s (node %s)", e.Reason, e.NodeID)
	}
	return fmt.Sprintf("graph schema error: %s", e.Reason)
}

// IndexBuildError reports a failure to build the vector index, usually
// an embedding provider error. It is fatal at startup.
type IndexBuildError struct {
	Err error
}

func (e *IndexBuildError) Error() string {
	return fmt.Sprintf("vector index build failed: %v", e.Err)
}

func (e *IndexBuildError) Unwrap() error { return e.Err }

// ProviderTimeoutError reports that a per-query embedding call exhausted
// its timeout and retry budget. It fails only the query that hit it.
type ProviderTimeoutError struct {
	Attempts int
	Err      error
}

func (e *ProviderTimeoutError) Error() string {
	return fmt.Sprintf("embedding provider timed out after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ProviderTimeoutError) Unwrap() error { return e.Err }
