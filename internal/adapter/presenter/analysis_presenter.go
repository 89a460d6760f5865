package presenter

import (
	"time"

	"github.com/johnquangdev/meeting-analyzer/internal/adapter/dto"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// ToAnalysisResponse converts a freshly created Analysis to its response DTO
func ToAnalysisResponse(a *entities.Analysis) *dto.AnalysisResponse {
	return toAnalysisResponse(a, false)
}

// ToAnalysisDetailResponse also includes the transcript text and child timestamps
func ToAnalysisDetailResponse(a *entities.Analysis) *dto.AnalysisResponse {
	return toAnalysisResponse(a, true)
}

func toAnalysisResponse(a *entities.Analysis, detail bool) *dto.AnalysisResponse {
	if a == nil {
		return nil
	}

	response := &dto.AnalysisResponse{
		ID:           a.ID,
		TranscriptID: a.TranscriptID,
		Title:        nonEmpty(a.Title),
		Sentiment:    string(a.Sentiment),
		Summary:      nonEmpty(a.Summary),
		Provider:     a.Provider,
		Model:        a.Model,
		CreatedAt:    a.CreatedAt,
		ActionItems:  make([]dto.ActionItemResponse, 0, len(a.ActionItems)),
		KeyDecisions: make([]dto.KeyDecisionResponse, 0, len(a.KeyDecisions)),
	}

	if detail && a.Transcript != nil {
		text := a.Transcript.Text
		response.TranscriptText = &text
	}

	for _, item := range a.ActionItems {
		out := dto.ActionItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Owner:       item.Owner,
			Deadline:    item.Deadline,
		}
		if detail {
			out.CreatedAt = timePtr(item.CreatedAt)
		}
		response.ActionItems = append(response.ActionItems, out)
	}

	for _, d := range a.KeyDecisions {
		out := dto.KeyDecisionResponse{
			ID:       d.ID,
			Decision: d.Decision,
			Context:  d.Context,
		}
		if detail {
			out.CreatedAt = timePtr(d.CreatedAt)
		}
		response.KeyDecisions = append(response.KeyDecisions, out)
	}

	return response
}

// ToListAnalysesResponse converts a page of analyses to the history list DTO
func ToListAnalysesResponse(analyses []*entities.Analysis, total int64) *dto.ListAnalysesResponse {
	response := &dto.ListAnalysesResponse{
		Analyses: make([]dto.AnalysisSummaryResponse, 0, len(analyses)),
		Total:    total,
	}

	for _, a := range analyses {
		response.Analyses = append(response.Analyses, dto.AnalysisSummaryResponse{
			ID:           a.ID,
			TranscriptID: a.TranscriptID,
			Title:        a.Title,
			Sentiment:    string(a.Sentiment),
			Summary:      a.Summary,
			CreatedAt:    a.CreatedAt,
		})
	}

	return response
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
