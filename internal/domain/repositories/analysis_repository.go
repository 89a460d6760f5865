package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// AnalysisRepository defines persistence operations for transcripts and their analyses
type AnalysisRepository interface {
	// Create stores the transcript text and the analysis with its children.
	// IDs, TranscriptID and timestamps are filled in on the passed analysis.
	Create(ctx context.Context, transcriptText string, analysis *entities.Analysis) error

	// FindByID returns the analysis with transcript and children, or nil when absent
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Analysis, error)

	// List returns analyses without children, newest first
	List(ctx context.Context, limit, offset int) ([]*entities.Analysis, error)

	// Count returns the total number of analyses
	Count(ctx context.Context) (int64, error)

	// Delete removes the analysis, its children and its transcript.
	// It reports false when no analysis has the given ID.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
