package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	repo "github.com/johnquangdev/meeting-analyzer/internal/domain/repositories"
)

type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository backed by GORM
func NewAnalysisRepository(db *gorm.DB) repo.AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create writes the transcript first, then the analysis with its action items and
// key decisions, in a single transaction.
func (r *analysisRepository) Create(ctx context.Context, transcriptText string, analysis *entities.Analysis) error {
	if analysis == nil {
		return errors.New("analysis cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transcript := entities.NewTranscript(transcriptText)
		if err := tx.Create(transcript).Error; err != nil {
			return fmt.Errorf("create transcript: %w", err)
		}

		if analysis.ID == uuid.Nil {
			analysis.ID = uuid.New()
		}
		analysis.TranscriptID = transcript.ID
		analysis.Transcript = nil
		for i := range analysis.ActionItems {
			analysis.ActionItems[i].AnalysisID = analysis.ID
		}
		for i := range analysis.KeyDecisions {
			analysis.KeyDecisions[i].AnalysisID = analysis.ID
		}

		if err := tx.Create(analysis).Error; err != nil {
			return fmt.Errorf("create analysis: %w", err)
		}

		analysis.Transcript = transcript
		return nil
	})
}

// FindByID retrieves an analysis with transcript, action items and key decisions
func (r *analysisRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Analysis, error) {
	var analysis entities.Analysis
	err := r.db.WithContext(ctx).
		Preload("Transcript").
		Preload("ActionItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("KeyDecisions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	analysis.EnsureCollections()
	return &analysis, nil
}

// List retrieves a page of analyses ordered by creation time, newest first
func (r *analysisRepository) List(ctx context.Context, limit, offset int) ([]*entities.Analysis, error) {
	analyses := make([]*entities.Analysis, 0, limit)

	query := r.db.WithContext(ctx).
		Model(&entities.Analysis{}).
		Select("id", "transcript_id", "title", "sentiment", "summary", "provider", "model", "created_at").
		Order("created_at DESC").
		Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}

// Count returns the total number of stored analyses
func (r *analysisRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Analysis{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Delete removes an analysis together with its children and transcript
func (r *analysisRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	found := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var analysis entities.Analysis
		if err := tx.Select("id", "transcript_id").Where("id = ?", id).First(&analysis).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("find analysis: %w", err)
		}
		found = true

		if err := tx.Where("analysis_id = ?", id).Delete(&entities.ActionItem{}).Error; err != nil {
			return fmt.Errorf("delete action items: %w", err)
		}
		if err := tx.Where("analysis_id = ?", id).Delete(&entities.KeyDecision{}).Error; err != nil {
			return fmt.Errorf("delete key decisions: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&entities.Analysis{}).Error; err != nil {
			return fmt.Errorf("delete analysis: %w", err)
		}
		if err := tx.Where("id = ?", analysis.TranscriptID).Delete(&entities.Transcript{}).Error; err != nil {
			return fmt.Errorf("delete transcript: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
