package cache

import (
	"fmt"

	"github.com/rohmanhakim/crawlkit/internal/metadata"
	"github.com/rohmanhakim/crawlkit/pkg/failure"
)

type CacheErrorCause string

const (
	ErrCauseWriteFailure  CacheErrorCause = "write failed"
	ErrCauseReadFailure   CacheErrorCause = "read failed"
	ErrCauseEncodeFailure CacheErrorCause = "encode failed"
	ErrCauseDecodeFailure CacheErrorCause = "decode failed"
	ErrCauseDiskFull      CacheErrorCause = "disk is full"
)

type CacheError struct {
	Message   string
	Retryable bool
	Cause     CacheErrorCause
	Path      string
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache error: %s", e.Cause)
}

func (e *CacheError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

// mapCacheErrorToMetadataCause maps cache-local error semantics to the
// canonical metadata.ErrorCause table. Observational only; must never
// drive control flow.
func mapCacheErrorToMetadataCause(err *CacheError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseDiskFull, ErrCauseWriteFailure, ErrCauseReadFailure:
		return metadata.CauseStorageFailure
	case ErrCauseEncodeFailure, ErrCauseDecodeFailure:
		return metadata.CauseInvariantViolation
	default:
		return metadata.CauseUnknown
	}
}
