package dto

import (
	"time"

	"github.com/google/uuid"
)

// AnalyzeRequest is the body of POST /api/analyze
type AnalyzeRequest struct {
	Text string `json:"text" validate:"required,max=50000" example:"Alice: Let's ship on Friday.\nBob: I'll prepare the release notes."`
}

// AnalysisResponse is a full analysis. TranscriptText is only set when fetched by ID.
type AnalysisResponse struct {
	ID             uuid.UUID             `json:"id"`
	TranscriptID   uuid.UUID             `json:"transcriptId"`
	TranscriptText *string               `json:"transcriptText,omitempty"`
	Title          *string               `json:"title,omitempty"`
	ActionItems    []ActionItemResponse  `json:"actionItems"`
	KeyDecisions   []KeyDecisionResponse `json:"keyDecisions"`
	Sentiment      string                `json:"sentiment" enums:"positive,neutral,negative,mixed"`
	Summary        *string               `json:"summary,omitempty"`
	Provider       string                `json:"provider"`
	Model          string                `json:"model"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// ActionItemResponse is an action item. Owner and Deadline are null when unknown.
type ActionItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	Owner       *string    `json:"owner"`
	Deadline    *string    `json:"deadline"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// KeyDecisionResponse is a key decision. Context is null when unknown.
type KeyDecisionResponse struct {
	ID        uuid.UUID  `json:"id"`
	Decision  string     `json:"decision"`
	Context   *string    `json:"context"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// AnalysisSummaryResponse is one row of the history list
type AnalysisSummaryResponse struct {
	ID           uuid.UUID `json:"id"`
	TranscriptID uuid.UUID `json:"transcriptId"`
	Title        *string   `json:"title"`
	Sentiment    string    `json:"sentiment"`
	Summary      *string   `json:"summary"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListAnalysesResponse is the body of GET /api/analyses
type ListAnalysesResponse struct {
	Analyses []AnalysisSummaryResponse `json:"analyses"`
	Total    int64                     `json:"total"`
}

// DeleteAnalysisResponse is the body of a successful delete
type DeleteAnalysisResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
