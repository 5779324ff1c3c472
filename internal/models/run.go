package models

import (
	"time"

	"gorm.io/gorm"
)

// Run represents one execution of the report batch
type Run struct {
	ID        string         `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BaseURL        string     `json:"base_url"`
	StartedAt      time.Time  `gorm:"not null" json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at"`
	UsersFetched   int        `json:"users_fetched"`
	UsersSkipped   int        `json:"users_skipped"`
	ReportsWritten int        `json:"reports_written"`

	// Relationships
	Saves []SaveRecord `gorm:"foreignKey:RunID" json:"saves"`
}

// SaveRecord captures the outcome of one report save within a run
type SaveRecord struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RunID        string `gorm:"not null;index" json:"run_id"`
	Username     string `gorm:"not null" json:"username"`
	Outcome      string `gorm:"not null" json:"outcome"` // verified, rolled_back, failed
	ArchivedAs   string `json:"archived_as"`
	RestoredFrom string `json:"restored_from"`
}
