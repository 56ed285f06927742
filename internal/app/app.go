package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillbridge/pkg/ai"
	"skillbridge/pkg/auth"
	"skillbridge/pkg/domain"
	"skillbridge/pkg/store"
	"skillbridge/pkg/usertoken"
)

// Config holds runtime configuration for the core application.
type Config struct {
	DatabaseURL string
	TokenSecret string
	TokenTTL    time.Duration
	Store       store.Store
	Tokens      *usertoken.Issuer
	Generator   ai.TextGenerator
}

// App is the core application service wiring together storage, token issuing,
// and the advisory logic.
type App struct {
	store     store.Store
	tokens    *usertoken.Issuer
	generator ai.TextGenerator
}

// New constructs the application with database storage and token management.
func New(cfg Config) (*App, error) {
	dataStore := cfg.Store
	if dataStore == nil {
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("database URL required")
		}
		var err error
		dataStore, err = store.NewGormStore(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("init postgres store: %w", err)
		}
	}

	tokens := cfg.Tokens
	if tokens == nil {
		var err error
		tokens, err = usertoken.New(usertoken.Config{Secret: cfg.TokenSecret, TTL: cfg.TokenTTL})
		if err != nil {
			return nil, fmt.Errorf("init token issuer: %w", err)
		}
	}

	return &App{
		store:     dataStore,
		tokens:    tokens,
		generator: cfg.Generator,
	}, nil
}

// Register creates a new user account and issues a token.
func (a *App) Register(name, email, password string) (domain.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return domain.User{}, "", ErrNameEmailPasswordRequired
	}
	if err := auth.ValidatePassword(password); err != nil {
		return domain.User{}, "", err
	}
	exists, err := a.store.HasUserEmail(email)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("check email: %w", err)
	}
	if exists {
		return domain.User{}, "", ErrEmailAlreadyRegistered
	}
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{
		ID:           store.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.store.SaveUser(user); err != nil {
		return domain.User{}, "", fmt.Errorf("save user: %w", err)
	}
	token, err := a.tokens.Sign(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Login validates credentials and issues a token.
func (a *App) Login(email, password string) (domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, ok, err := a.store.GetUserByEmail(email)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("fetch user: %w", err)
	}
	if !ok {
		return domain.User{}, "", ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return domain.User{}, "", ErrInvalidCredentials
	}
	token, err := a.tokens.Sign(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// UserFromToken resolves a user from a bearer token.
func (a *App) UserFromToken(token string) (domain.User, bool) {
	uid, err := a.tokens.Verify(token)
	if err != nil {
		return domain.User{}, false
	}
	user, found, err := a.store.GetUserByID(uid)
	if err != nil || !found {
		return domain.User{}, false
	}
	return user, true
}

// GetUser returns a user's profile by id.
func (a *App) GetUser(userID string) (domain.User, error) {
	user, ok, err := a.store.GetUserByID(userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("fetch user: %w", err)
	}
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}

// ListRoles returns the full career role catalog.
func (a *App) ListRoles() ([]domain.CareerRole, error) {
	return a.store.ListRoles()
}

// GetRole returns one career role by id.
func (a *App) GetRole(id string) (domain.CareerRole, error) {
	role, ok, err := a.store.GetRole(id)
	if err != nil {
		return domain.CareerRole{}, fmt.Errorf("fetch role: %w", err)
	}
	if !ok {
		return domain.CareerRole{}, ErrRoleNotFound
	}
	return role, nil
}

// CreateAssessment records a user's self-rated skills against a role.
func (a *App) CreateAssessment(userID, careerRoleID string, skills []domain.SkillRating) (domain.SkillAssessment, error) {
	if _, ok, err := a.store.GetRole(careerRoleID); err != nil {
		return domain.SkillAssessment{}, fmt.Errorf("fetch role: %w", err)
	} else if !ok {
		return domain.SkillAssessment{}, ErrRoleNotFound
	}
	for _, s := range skills {
		if strings.TrimSpace(s.SkillName) == "" {
			return domain.SkillAssessment{}, ErrSkillRequired
		}
		if s.CurrentLevel < 1 || s.CurrentLevel > 5 {
			return domain.SkillAssessment{}, ErrLevelOutOfRange
		}
	}
	assessment := domain.SkillAssessment{
		ID:           store.NewID(),
		UserID:       userID,
		CareerRoleID: careerRoleID,
		Skills:       skills,
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.store.SaveAssessment(assessment); err != nil {
		return domain.SkillAssessment{}, fmt.Errorf("save assessment: %w", err)
	}
	return assessment, nil
}

// ListAssessments returns the caller's assessments.
func (a *App) ListAssessments(userID string) ([]domain.SkillAssessment, error) {
	return a.store.ListAssessmentsByUser(userID)
}

// AnalyzeGap scores one assessment against its role and asks the AI advisor
// for free-text insights. The analysis is persisted immutably. An assessment
// owned by another user is reported as missing, not forbidden.
func (a *App) AnalyzeGap(ctx context.Context, userID, assessmentID string) (domain.GapAnalysis, error) {
	assessment, ok, err := a.store.GetAssessment(assessmentID)
	if err != nil {
		return domain.GapAnalysis{}, fmt.Errorf("fetch assessment: %w", err)
	}
	if !ok || assessment.UserID != userID {
		return domain.GapAnalysis{}, ErrAssessmentNotFound
	}
	role, ok, err := a.store.GetRole(assessment.CareerRoleID)
	if err != nil {
		return domain.GapAnalysis{}, fmt.Errorf("fetch role: %w", err)
	}
	if !ok {
		return domain.GapAnalysis{}, ErrRoleNotFound
	}

	insights, err := a.generateText(ctx, gapAnalysisSystemPrompt, gapAnalysisPrompt(role, assessment.Skills))
	if err != nil {
		return domain.GapAnalysis{}, err
	}

	gaps, readiness := scoreGaps(role.RequiredSkills, assessment.Skills)
	analysis := domain.GapAnalysis{
		ID:             store.NewID(),
		UserID:         userID,
		CareerRoleID:   assessment.CareerRoleID,
		SkillGaps:      gaps,
		ReadinessScore: readiness,
		AIInsights:     insights,
		CreatedAt:      time.Now().UTC(),
	}
	if err := a.store.SaveAnalysis(analysis); err != nil {
		return domain.GapAnalysis{}, fmt.Errorf("save analysis: %w", err)
	}
	return analysis, nil
}

// GenerateRoadmap turns one gap analysis into an ordered learning roadmap
// with AI recommendations.
func (a *App) GenerateRoadmap(ctx context.Context, userID, analysisID string) (domain.LearningRoadmap, error) {
	analysis, ok, err := a.store.GetAnalysis(analysisID)
	if err != nil {
		return domain.LearningRoadmap{}, fmt.Errorf("fetch analysis: %w", err)
	}
	if !ok || analysis.UserID != userID {
		return domain.LearningRoadmap{}, ErrAnalysisNotFound
	}
	role, ok, err := a.store.GetRole(analysis.CareerRoleID)
	if err != nil {
		return domain.LearningRoadmap{}, fmt.Errorf("fetch role: %w", err)
	}
	if !ok {
		return domain.LearningRoadmap{}, ErrRoleNotFound
	}

	recommendations, err := a.generateText(ctx, roadmapSystemPrompt, roadmapPrompt(role, analysis.SkillGaps))
	if err != nil {
		return domain.LearningRoadmap{}, err
	}

	items, totalDuration := buildRoadmapItems(analysis.SkillGaps)
	roadmap := domain.LearningRoadmap{
		ID:                store.NewID(),
		UserID:            userID,
		CareerRoleID:      analysis.CareerRoleID,
		RoadmapItems:      items,
		TotalDuration:     totalDuration,
		AIRecommendations: recommendations,
		CreatedAt:         time.Now().UTC(),
	}
	if err := a.store.SaveRoadmap(roadmap); err != nil {
		return domain.LearningRoadmap{}, fmt.Errorf("save roadmap: %w", err)
	}
	return roadmap, nil
}

// ListRoadmaps returns the caller's roadmaps.
func (a *App) ListRoadmaps(userID string) ([]domain.LearningRoadmap, error) {
	return a.store.ListRoadmapsByUser(userID)
}

// ListResources returns learning resources, optionally filtered by skill
// name and difficulty.
func (a *App) ListResources(skill, difficulty string) ([]domain.LearningResource, error) {
	return a.store.ListResources(skill, difficulty)
}

// UpdateProgress upserts one skill's completion percentage into the user's
// progress record for a role. A concurrent update to the same record is a
// last-write-wins race; per-skill writes are small and self-repairing on the
// next update, so no per-key lock is taken.
func (a *App) UpdateProgress(userID, careerRoleID, skill string, progress int, notes string) (domain.Progress, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return domain.Progress{}, ErrSkillRequired
	}
	if progress < 0 || progress > 100 {
		return domain.Progress{}, ErrProgressOutOfRange
	}
	if _, ok, err := a.store.GetRole(careerRoleID); err != nil {
		return domain.Progress{}, fmt.Errorf("fetch role: %w", err)
	} else if !ok {
		return domain.Progress{}, ErrRoleNotFound
	}

	now := time.Now().UTC()
	entry := domain.SkillProgress{Skill: skill, Progress: progress, Notes: notes, UpdatedAt: now}

	record, ok, err := a.store.GetProgressByUserAndRole(userID, careerRoleID)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("fetch progress: %w", err)
	}
	if !ok {
		record = domain.Progress{
			ID:              store.NewID(),
			UserID:          userID,
			CareerRoleID:    careerRoleID,
			SkillProgress:   []domain.SkillProgress{entry},
			OverallProgress: progress,
			UpdatedAt:       now,
		}
		if err := a.store.SaveProgress(record); err != nil {
			return domain.Progress{}, fmt.Errorf("save progress: %w", err)
		}
		return record, nil
	}

	found := false
	for i := range record.SkillProgress {
		if record.SkillProgress[i].Skill == skill {
			record.SkillProgress[i] = entry
			found = true
			break
		}
	}
	if !found {
		record.SkillProgress = append(record.SkillProgress, entry)
	}
	record.OverallProgress = overallProgress(record.SkillProgress)
	record.UpdatedAt = now
	if err := a.store.SaveProgress(record); err != nil {
		return domain.Progress{}, fmt.Errorf("save progress: %w", err)
	}
	return record, nil
}

// ListProgress returns the caller's progress records.
func (a *App) ListProgress(userID string) ([]domain.Progress, error) {
	return a.store.ListProgressByUser(userID)
}

func (a *App) generateText(ctx context.Context, system, prompt string) (string, error) {
	if a.generator == nil {
		return "", ErrAIUnavailable
	}
	text, err := a.generator.GenerateText(ctx, system, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	return text, nil
}

func overallProgress(entries []domain.SkillProgress) int {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.Progress
	}
	return sum / len(entries)
}
