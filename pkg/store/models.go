package store

import (
	"time"

	"gorm.io/datatypes"
)

// GORM models used for persistence. Nested document lists are stored as
// jsonb columns; everything else is a plain column.
type UserModel struct {
	ID           string    `gorm:"primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

type CareerRoleModel struct {
	ID             string         `gorm:"primaryKey"`
	Title          string         `gorm:"not null"`
	Description    string         `gorm:"type:text"`
	RequiredSkills datatypes.JSON `gorm:"type:jsonb"`
	AverageSalary  string
	GrowthRate     string
}

type AssessmentModel struct {
	ID           string         `gorm:"primaryKey"`
	UserID       string         `gorm:"not null;index"`
	CareerRoleID string         `gorm:"not null"`
	Skills       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time      `gorm:"not null;index"`
}

type GapAnalysisModel struct {
	ID             string         `gorm:"primaryKey"`
	UserID         string         `gorm:"not null;index"`
	CareerRoleID   string         `gorm:"not null"`
	SkillGaps      datatypes.JSON `gorm:"type:jsonb"`
	ReadinessScore float64        `gorm:"not null"`
	AIInsights     string         `gorm:"type:text"`
	CreatedAt      time.Time      `gorm:"not null;index"`
}

type RoadmapModel struct {
	ID                string         `gorm:"primaryKey"`
	UserID            string         `gorm:"not null;index"`
	CareerRoleID      string         `gorm:"not null"`
	RoadmapItems      datatypes.JSON `gorm:"type:jsonb"`
	TotalDuration     string
	AIRecommendations string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"not null;index"`
}

type ResourceModel struct {
	ID          string `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`
	URL         string
	Type        string
	Difficulty  string         `gorm:"index"`
	Skills      datatypes.JSON `gorm:"type:jsonb"`
	Duration    string
}

type ProgressModel struct {
	ID              string         `gorm:"primaryKey"`
	UserID          string         `gorm:"not null;uniqueIndex:idx_progress_user_role"`
	CareerRoleID    string         `gorm:"not null;uniqueIndex:idx_progress_user_role"`
	SkillProgress   datatypes.JSON `gorm:"type:jsonb"`
	OverallProgress int            `gorm:"not null"`
	UpdatedAt       time.Time      `gorm:"not null"`
}
