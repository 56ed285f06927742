package store

import "skillbridge/pkg/domain"

// Store defines persistence operations for users, the role and resource
// catalogs, and per-user derived records. All documents are addressed by
// opaque string ids.
type Store interface {
	// users
	SaveUser(domain.User) error
	HasUserEmail(email string) (bool, error)
	GetUserByEmail(email string) (domain.User, bool, error)
	GetUserByID(id string) (domain.User, bool, error)

	// career roles (static catalog)
	SaveRole(domain.CareerRole) error
	GetRole(id string) (domain.CareerRole, bool, error)
	ListRoles() ([]domain.CareerRole, error)
	RoleCount() (int, error)

	// assessments
	SaveAssessment(domain.SkillAssessment) error
	GetAssessment(id string) (domain.SkillAssessment, bool, error)
	ListAssessmentsByUser(userID string) ([]domain.SkillAssessment, error)

	// gap analyses
	SaveAnalysis(domain.GapAnalysis) error
	GetAnalysis(id string) (domain.GapAnalysis, bool, error)

	// roadmaps
	SaveRoadmap(domain.LearningRoadmap) error
	ListRoadmapsByUser(userID string) ([]domain.LearningRoadmap, error)

	// learning resources (static catalog)
	SaveResource(domain.LearningResource) error
	ListResources(skill, difficulty string) ([]domain.LearningResource, error)
	ResourceCount() (int, error)

	// progress (one record per user+role, mutated in place)
	SaveProgress(domain.Progress) error
	GetProgressByUserAndRole(userID, careerRoleID string) (domain.Progress, bool, error)
	ListProgressByUser(userID string) ([]domain.Progress, error)
}
