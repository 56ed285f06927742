package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
	"skillbridge/pkg/domain"
)

const migrateLockID int64 = 84218421

// GormStore implements Store using GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the DB and runs auto-migrations under an advisory lock.
func NewGormStore(dsn string) (*GormStore, error) {
	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := withMigrationLock(db, func(tx *gorm.DB) error {
		return tx.AutoMigrate(
			&UserModel{},
			&CareerRoleModel{},
			&AssessmentModel{},
			&GapAnalysisModel{},
			&RoadmapModel{},
			&ResourceModel{},
			&ProgressModel{},
		)
	}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

func withMigrationLock(db *gorm.DB, fn func(*gorm.DB) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("open sql conn: %w", err)
	}
	defer conn.Close()
	if err := execAdvisory(ctx, conn, "SELECT pg_advisory_lock($1)", migrateLockID); err != nil {
		return fmt.Errorf("acquire migrate lock: %w", err)
	}
	defer func() {
		_ = execAdvisory(ctx, conn, "SELECT pg_advisory_unlock($1)", migrateLockID)
	}()
	return fn(db)
}

func execAdvisory(ctx context.Context, conn *sql.Conn, query string, lockID int64) error {
	_, err := conn.ExecContext(ctx, query, lockID)
	return err
}

// SaveUser registers or updates a user.
func (s *GormStore) SaveUser(u domain.User) error {
	model := userToModel(u)
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "password_hash"}),
	}).Create(&model).Error
}

// HasUserEmail checks if email exists.
func (s *GormStore) HasUserEmail(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetUserByEmail looks up a user by email.
func (s *GormStore) GetUserByEmail(email string) (domain.User, bool, error) {
	var model UserModel
	if err := s.db.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return userFromModel(model), true, nil
}

// GetUserByID returns a user by ID.
func (s *GormStore) GetUserByID(id string) (domain.User, bool, error) {
	var model UserModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return userFromModel(model), true, nil
}

// SaveRole stores or updates a career role.
func (s *GormStore) SaveRole(role domain.CareerRole) error {
	model := roleToModel(role)
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "required_skills", "average_salary", "growth_rate"}),
	}).Create(&model).Error
}

// GetRole retrieves a role by ID.
func (s *GormStore) GetRole(id string) (domain.CareerRole, bool, error) {
	var model CareerRoleModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.CareerRole{}, false, nil
		}
		return domain.CareerRole{}, false, err
	}
	return roleFromModel(model), true, nil
}

// ListRoles returns all roles ordered by id.
func (s *GormStore) ListRoles() ([]domain.CareerRole, error) {
	var models []CareerRoleModel
	if err := s.db.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.CareerRole, 0, len(models))
	for _, m := range models {
		res = append(res, roleFromModel(m))
	}
	return res, nil
}

// RoleCount returns number of roles.
func (s *GormStore) RoleCount() (int, error) {
	var count int64
	if err := s.db.Model(&CareerRoleModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// SaveAssessment stores an assessment.
func (s *GormStore) SaveAssessment(a domain.SkillAssessment) error {
	model := assessmentToModel(a)
	return s.db.Create(&model).Error
}

// GetAssessment retrieves an assessment by ID.
func (s *GormStore) GetAssessment(id string) (domain.SkillAssessment, bool, error) {
	var model AssessmentModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.SkillAssessment{}, false, nil
		}
		return domain.SkillAssessment{}, false, err
	}
	return assessmentFromModel(model), true, nil
}

// ListAssessmentsByUser returns a user's assessments oldest first.
func (s *GormStore) ListAssessmentsByUser(userID string) ([]domain.SkillAssessment, error) {
	var models []AssessmentModel
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.SkillAssessment, 0, len(models))
	for _, m := range models {
		res = append(res, assessmentFromModel(m))
	}
	return res, nil
}

// SaveAnalysis stores a gap analysis.
func (s *GormStore) SaveAnalysis(a domain.GapAnalysis) error {
	model := analysisToModel(a)
	return s.db.Create(&model).Error
}

// GetAnalysis retrieves a gap analysis by ID.
func (s *GormStore) GetAnalysis(id string) (domain.GapAnalysis, bool, error) {
	var model GapAnalysisModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.GapAnalysis{}, false, nil
		}
		return domain.GapAnalysis{}, false, err
	}
	return analysisFromModel(model), true, nil
}

// SaveRoadmap stores a learning roadmap.
func (s *GormStore) SaveRoadmap(r domain.LearningRoadmap) error {
	model := roadmapToModel(r)
	return s.db.Create(&model).Error
}

// ListRoadmapsByUser returns a user's roadmaps oldest first.
func (s *GormStore) ListRoadmapsByUser(userID string) ([]domain.LearningRoadmap, error) {
	var models []RoadmapModel
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.LearningRoadmap, 0, len(models))
	for _, m := range models {
		res = append(res, roadmapFromModel(m))
	}
	return res, nil
}

// SaveResource stores or updates a learning resource.
func (s *GormStore) SaveResource(r domain.LearningResource) error {
	model := resourceToModel(r)
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "url", "type", "difficulty", "skills", "duration"}),
	}).Create(&model).Error
}

// ListResources returns resources optionally filtered by skill membership
// and difficulty.
func (s *GormStore) ListResources(skill, difficulty string) ([]domain.LearningResource, error) {
	tx := s.db.Order("id ASC")
	if difficulty != "" {
		tx = tx.Where("difficulty = ?", difficulty)
	}
	if skill != "" {
		tx = tx.Where(datatypes.JSONArrayQuery("skills").Contains(skill))
	}
	var models []ResourceModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.LearningResource, 0, len(models))
	for _, m := range models {
		res = append(res, resourceFromModel(m))
	}
	return res, nil
}

// ResourceCount returns number of resources.
func (s *GormStore) ResourceCount() (int, error) {
	var count int64
	if err := s.db.Model(&ResourceModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// SaveProgress creates or replaces the progress record for its user+role pair.
func (s *GormStore) SaveProgress(p domain.Progress) error {
	model := progressToModel(p)
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"skill_progress", "overall_progress", "updated_at"}),
	}).Create(&model).Error
}

// GetProgressByUserAndRole returns the single progress record for a user+role.
func (s *GormStore) GetProgressByUserAndRole(userID, careerRoleID string) (domain.Progress, bool, error) {
	var model ProgressModel
	if err := s.db.Where("user_id = ? AND career_role_id = ?", userID, careerRoleID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Progress{}, false, nil
		}
		return domain.Progress{}, false, err
	}
	return progressFromModel(model), true, nil
}

// ListProgressByUser returns all progress records of a user.
func (s *GormStore) ListProgressByUser(userID string) ([]domain.Progress, error) {
	var models []ProgressModel
	if err := s.db.Where("user_id = ?", userID).Order("updated_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Progress, 0, len(models))
	for _, m := range models {
		res = append(res, progressFromModel(m))
	}
	return res, nil
}

func userToModel(u domain.User) UserModel {
	return UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func userFromModel(m UserModel) domain.User {
	return domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func roleToModel(r domain.CareerRole) CareerRoleModel {
	skills, _ := json.Marshal(r.RequiredSkills)
	return CareerRoleModel{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		RequiredSkills: skills,
		AverageSalary:  r.AverageSalary,
		GrowthRate:     r.GrowthRate,
	}
}

func roleFromModel(m CareerRoleModel) domain.CareerRole {
	var skills []domain.Skill
	if len(m.RequiredSkills) > 0 {
		_ = json.Unmarshal(m.RequiredSkills, &skills)
	}
	return domain.CareerRole{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		RequiredSkills: skills,
		AverageSalary:  m.AverageSalary,
		GrowthRate:     m.GrowthRate,
	}
}

func assessmentToModel(a domain.SkillAssessment) AssessmentModel {
	skills, _ := json.Marshal(a.Skills)
	return AssessmentModel{
		ID:           a.ID,
		UserID:       a.UserID,
		CareerRoleID: a.CareerRoleID,
		Skills:       skills,
		CreatedAt:    a.CreatedAt,
	}
}

func assessmentFromModel(m AssessmentModel) domain.SkillAssessment {
	var skills []domain.SkillRating
	if len(m.Skills) > 0 {
		_ = json.Unmarshal(m.Skills, &skills)
	}
	return domain.SkillAssessment{
		ID:           m.ID,
		UserID:       m.UserID,
		CareerRoleID: m.CareerRoleID,
		Skills:       skills,
		CreatedAt:    m.CreatedAt,
	}
}

func analysisToModel(a domain.GapAnalysis) GapAnalysisModel {
	gaps, _ := json.Marshal(a.SkillGaps)
	return GapAnalysisModel{
		ID:             a.ID,
		UserID:         a.UserID,
		CareerRoleID:   a.CareerRoleID,
		SkillGaps:      gaps,
		ReadinessScore: a.ReadinessScore,
		AIInsights:     a.AIInsights,
		CreatedAt:      a.CreatedAt,
	}
}

func analysisFromModel(m GapAnalysisModel) domain.GapAnalysis {
	var gaps []domain.SkillGap
	if len(m.SkillGaps) > 0 {
		_ = json.Unmarshal(m.SkillGaps, &gaps)
	}
	return domain.GapAnalysis{
		ID:             m.ID,
		UserID:         m.UserID,
		CareerRoleID:   m.CareerRoleID,
		SkillGaps:      gaps,
		ReadinessScore: m.ReadinessScore,
		AIInsights:     m.AIInsights,
		CreatedAt:      m.CreatedAt,
	}
}

func roadmapToModel(r domain.LearningRoadmap) RoadmapModel {
	items, _ := json.Marshal(r.RoadmapItems)
	return RoadmapModel{
		ID:                r.ID,
		UserID:            r.UserID,
		CareerRoleID:      r.CareerRoleID,
		RoadmapItems:      items,
		TotalDuration:     r.TotalDuration,
		AIRecommendations: r.AIRecommendations,
		CreatedAt:         r.CreatedAt,
	}
}

func roadmapFromModel(m RoadmapModel) domain.LearningRoadmap {
	var items []domain.RoadmapItem
	if len(m.RoadmapItems) > 0 {
		_ = json.Unmarshal(m.RoadmapItems, &items)
	}
	return domain.LearningRoadmap{
		ID:                m.ID,
		UserID:            m.UserID,
		CareerRoleID:      m.CareerRoleID,
		RoadmapItems:      items,
		TotalDuration:     m.TotalDuration,
		AIRecommendations: m.AIRecommendations,
		CreatedAt:         m.CreatedAt,
	}
}

func resourceToModel(r domain.LearningResource) ResourceModel {
	skills, _ := json.Marshal(r.Skills)
	return ResourceModel{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		Type:        r.Type,
		Difficulty:  r.Difficulty,
		Skills:      skills,
		Duration:    r.Duration,
	}
}

func resourceFromModel(m ResourceModel) domain.LearningResource {
	var skills []string
	if len(m.Skills) > 0 {
		_ = json.Unmarshal(m.Skills, &skills)
	}
	return domain.LearningResource{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		URL:         m.URL,
		Type:        m.Type,
		Difficulty:  m.Difficulty,
		Skills:      skills,
		Duration:    m.Duration,
	}
}

func progressToModel(p domain.Progress) ProgressModel {
	skills, _ := json.Marshal(p.SkillProgress)
	return ProgressModel{
		ID:              p.ID,
		UserID:          p.UserID,
		CareerRoleID:    p.CareerRoleID,
		SkillProgress:   skills,
		OverallProgress: p.OverallProgress,
		UpdatedAt:       p.UpdatedAt,
	}
}

func progressFromModel(m ProgressModel) domain.Progress {
	var skills []domain.SkillProgress
	if len(m.SkillProgress) > 0 {
		_ = json.Unmarshal(m.SkillProgress, &skills)
	}
	return domain.Progress{
		ID:              m.ID,
		UserID:          m.UserID,
		CareerRoleID:    m.CareerRoleID,
		SkillProgress:   skills,
		OverallProgress: m.OverallProgress,
		UpdatedAt:       m.UpdatedAt,
	}
}
