package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transcript is the stored input text. It is never updated after creation.
type Transcript struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// BeforeCreate assigns an ID when the caller did not
func (t *Transcript) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// NewTranscript creates a new transcript
func NewTranscript(text string) *Transcript {
	return &Transcript{
		ID:   uuid.New(),
		Text: text,
	}
}
