package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sentiment is the overall tone of a meeting
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
	SentimentMixed    Sentiment = "mixed"
)

// DefaultAnalysisTitle is used when the provider returns no title
const DefaultAnalysisTitle = "Meeting Analysis"

// Valid reports whether s is one of the four known sentiments
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative, SentimentMixed:
		return true
	}
	return false
}

// ParseSentiment normalizes case and surrounding whitespace
func ParseSentiment(raw string) (Sentiment, bool) {
	s := Sentiment(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// MeetingAnalysis is the structured output of a provider adapter, before persistence
type MeetingAnalysis struct {
	Title        string
	ActionItems  []ExtractedActionItem
	KeyDecisions []ExtractedDecision
	Sentiment    Sentiment
	Summary      *string

	// Raw is the JSON document the provider returned
	Raw []byte
}

// ExtractedActionItem is an action item as returned by the provider
type ExtractedActionItem struct {
	Description string
	Owner       *string
	Deadline    *string
}

// ExtractedDecision is a key decision as returned by the provider
type ExtractedDecision struct {
	Decision string
	Context  *string
}

// Analysis is the persisted result of analyzing one transcript
type Analysis struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	TranscriptID uuid.UUID      `json:"transcript_id" gorm:"type:uuid;not null;uniqueIndex"`
	Transcript   *Transcript    `json:"transcript,omitempty" gorm:"foreignKey:TranscriptID;constraint:OnDelete:CASCADE"`
	Title        *string        `json:"title,omitempty" gorm:"type:varchar(255)"`
	Sentiment    Sentiment      `json:"sentiment" gorm:"type:varchar(20);not null"`
	Summary      *string        `json:"summary,omitempty" gorm:"type:text"`
	Provider     string         `json:"provider" gorm:"type:varchar(50)"`
	Model        string         `json:"model" gorm:"type:varchar(100)"`
	RawResponse  datatypes.JSON `json:"raw_response,omitempty"`
	ActionItems  []ActionItem   `json:"action_items" gorm:"foreignKey:AnalysisID;constraint:OnDelete:CASCADE"`
	KeyDecisions []KeyDecision  `json:"key_decisions" gorm:"foreignKey:AnalysisID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Analysis) TableName() string {
	return "analyses"
}

// BeforeCreate assigns an ID when the caller did not
func (a *Analysis) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// NewAnalysis builds an unsaved Analysis from a provider result.
// Children keep the order the provider returned them in.
func NewAnalysis(result *MeetingAnalysis, provider, model string) *Analysis {
	a := &Analysis{
		ID:           uuid.New(),
		Sentiment:    result.Sentiment,
		Summary:      result.Summary,
		Provider:     provider,
		Model:        model,
		ActionItems:  make([]ActionItem, 0, len(result.ActionItems)),
		KeyDecisions: make([]KeyDecision, 0, len(result.KeyDecisions)),
	}
	if result.Title != "" {
		title := result.Title
		a.Title = &title
	}
	if len(result.Raw) > 0 {
		a.RawResponse = datatypes.JSON(result.Raw)
	}

	for i, item := range result.ActionItems {
		a.ActionItems = append(a.ActionItems, ActionItem{
			ID:          uuid.New(),
			AnalysisID:  a.ID,
			Position:    i,
			Description: item.Description,
			Owner:       item.Owner,
			Deadline:    item.Deadline,
		})
	}
	for i, d := range result.KeyDecisions {
		a.KeyDecisions = append(a.KeyDecisions, KeyDecision{
			ID:         uuid.New(),
			AnalysisID: a.ID,
			Position:   i,
			Decision:   d.Decision,
			Context:    d.Context,
		})
	}

	return a
}

// EnsureCollections replaces nil child slices with empty ones
func (a *Analysis) EnsureCollections() {
	if a.ActionItems == nil {
		a.ActionItems = make([]ActionItem, 0)
	}
	if a.KeyDecisions == nil {
		a.KeyDecisions = make([]KeyDecision, 0)
	}
}
