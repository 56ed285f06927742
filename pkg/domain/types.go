package domain

import "time"

// SkillLevel is the declared proficiency a role requires for a skill.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
)

// GapPriority ranks how urgent a skill gap is.
type GapPriority string

const (
	PriorityHigh   GapPriority = "High"
	PriorityMedium GapPriority = "Medium"
	PriorityLow    GapPriority = "Low"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Skill is one required skill entry inside a career role definition.
type Skill struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Level    SkillLevel `json:"level"`
}

type CareerRole struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	RequiredSkills []Skill `json:"requiredSkills"`
	AverageSalary  string  `json:"averageSalary"`
	GrowthRate     string  `json:"growthRate"`
}

// SkillRating is a user's self-rated proficiency for one skill, 1-5.
type SkillRating struct {
	SkillName    string `json:"skillName"`
	CurrentLevel int    `json:"currentLevel"`
}

type SkillAssessment struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	CareerRoleID string        `json:"careerRoleId"`
	Skills       []SkillRating `json:"skills"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// SkillGap describes the shortfall between a required skill's target level
// and the user's current self-rated level.
type SkillGap struct {
	Skill         string      `json:"skill"`
	Category      string      `json:"category"`
	CurrentLevel  int         `json:"currentLevel"`
	RequiredLevel int         `json:"requiredLevel"`
	Gap           int         `json:"gap"`
	Priority      GapPriority `json:"priority"`
}

type GapAnalysis struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	CareerRoleID   string     `json:"careerRoleId"`
	SkillGaps      []SkillGap `json:"skillGaps"`
	ReadinessScore float64    `json:"readinessScore"`
	AIInsights     string     `json:"aiInsights"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// RoadmapItem is a single skill's remediation plan within a learning roadmap.
type RoadmapItem struct {
	Skill         string      `json:"skill"`
	Priority      GapPriority `json:"priority"`
	EstimatedTime string      `json:"estimatedTime"`
	Resources     []string    `json:"resources"`
	Milestones    []string    `json:"milestones"`
}

type LearningRoadmap struct {
	ID                string        `json:"id"`
	UserID            string        `json:"userId"`
	CareerRoleID      string        `json:"careerRoleId"`
	RoadmapItems      []RoadmapItem `json:"roadmapItems"`
	TotalDuration     string        `json:"totalDuration"`
	AIRecommendations string        `json:"aiRecommendations"`
	CreatedAt         time.Time     `json:"createdAt"`
}

// SkillProgress records completion percentage for one skill, 0-100.
type SkillProgress struct {
	Skill     string    `json:"skill"`
	Progress  int       `json:"progress"`
	Notes     string    `json:"notes"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Progress struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	CareerRoleID    string          `json:"careerRoleId"`
	SkillProgress   []SkillProgress `json:"skillProgress"`
	OverallProgress int             `json:"overallProgress"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type LearningResource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Type        string   `json:"type"`
	Difficulty  string   `json:"difficulty"`
	Skills      []string `json:"skills"`
	Duration    string   `json:"duration"`
}
