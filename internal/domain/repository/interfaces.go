package repository

import (
	"context"

	"WhaleScope/internal/domain/models"
)

// FingerprintStore persists EntityFingerprint records. Implementations
// must serialize writes per address and enforce bounded retention: at
// most N entries per address (oldest evicted) plus a global cap.
// Fingerprints are enrichment only, so a failed write never fails a
// classification.
type FingerprintStore interface {
	Append(ctx context.Context, address string, fp models.EntityFingerprint) error
	List(ctx context.Context, address string) ([]models.EntityFingerprint, error)
	Backend() string
	Close() error
}

// Metrics abstracts the pipeline's metric recording.
type Metrics interface {
	RecordClassification(entityType string, confidence float64)
	RecordFingerprintStored(backend string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
