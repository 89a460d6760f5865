package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionItem is a task extracted from a meeting
type ActionItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AnalysisID  uuid.UUID `json:"analysis_id" gorm:"type:uuid;not null;index"`
	Position    int       `json:"position" gorm:"not null;default:0"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Owner       *string   `json:"owner" gorm:"type:varchar(255)"`
	Deadline    *string   `json:"deadline" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

func (i *ActionItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// KeyDecision is a decision recorded in a meeting
type KeyDecision struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AnalysisID uuid.UUID `json:"analysis_id" gorm:"type:uuid;not null;index"`
	Position   int       `json:"position" gorm:"not null;default:0"`
	Decision   string    `json:"decision" gorm:"type:text;not null"`
	Context    *string   `json:"context" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for KeyDecision
func (KeyDecision) TableName() string {
	return "key_decisions"
}

func (d *KeyDecision) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
