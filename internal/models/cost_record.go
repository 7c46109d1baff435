package models

import "time"

// Cost types recognized by the aggregation queries. Anything else is
// summed into the "other" bucket.
const (
	CostTypeFixed = "fixed"
	CostTypeHuman = "human"
)

type CostRecord struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	ProjectID   uint64    `gorm:"index;not null" json:"project_id"`
	RecordDate  time.Time `gorm:"index" json:"record_date"`
	CostType    string    `gorm:"type:varchar(50)" json:"cost_type"`
	Amount      float64   `json:"amount"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
