package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/balkashynov/taskreport/internal/models"
)

// StartRun records the beginning of a batch run
func StartRun(baseURL string) (*models.Run, error) {
	run := models.Run{
		ID:        uuid.NewString(),
		BaseURL:   baseURL,
		StartedAt: time.Now(),
	}

	if err := DB.Create(&run).Error; err != nil {
		return nil, err
	}

	return &run, nil
}

// FinishRun stores the final counters for a run
func FinishRun(run *models.Run, usersFetched, usersSkipped, reportsWritten int) error {
	now := time.Now()
	run.FinishedAt = &now
	run.UsersFetched = usersFetched
	run.UsersSkipped = usersSkipped
	run.ReportsWritten = reportsWritten

	return DB.Save(run).Error
}

// RecordSave appends one save outcome to a run
func RecordSave(runID, username, outcome, archivedAs, restoredFrom string) error {
	record := models.SaveRecord{
		RunID:        runID,
		Username:     username,
		Outcome:      outcome,
		ArchivedAs:   archivedAs,
		RestoredFrom: restoredFrom,
	}

	return DB.Create(&record).Error
}

// GetRecentSaves returns the latest save records, newest first
func GetRecentSaves(limit int) ([]models.SaveRecord, error) {
	var records []models.SaveRecord

	err := DB.Order("created_at DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// GetRun loads one run with its save records
func GetRun(id string) (*models.Run, error) {
	var run models.Run

	err := DB.Preload("Saves").First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	return &run, nil
}
