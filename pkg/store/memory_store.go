package store

import (
	"sync"

	"skillbridge/pkg/domain"
)

// MemoryStore keeps all records in-process. It is used by tests and mirrors
// the GormStore contract, including insertion-order listing.
type MemoryStore struct {
	mu          sync.RWMutex
	users       map[string]domain.User
	email       map[string]string // email -> user ID
	roles       map[string]domain.CareerRole
	roleOrder   []string
	assessments map[string]domain.SkillAssessment
	assessOrder []string
	analyses    map[string]domain.GapAnalysis
	roadmaps    map[string]domain.LearningRoadmap
	roadmapOrd  []string
	resources   map[string]domain.LearningResource
	resOrder    []string
	progress    map[string]domain.Progress
	progOrder   []string
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[string]domain.User),
		email:       make(map[string]string),
		roles:       make(map[string]domain.CareerRole),
		assessments: make(map[string]domain.SkillAssessment),
		analyses:    make(map[string]domain.GapAnalysis),
		roadmaps:    make(map[string]domain.LearningRoadmap),
		resources:   make(map[string]domain.LearningResource),
		progress:    make(map[string]domain.Progress),
	}
}

// SaveUser registers or updates a user.
func (m *MemoryStore) SaveUser(u domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
	m.email[u.Email] = u.ID
	return nil
}

// HasUserEmail checks if email exists.
func (m *MemoryStore) HasUserEmail(email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.email[email]
	return ok, nil
}

// GetUserByEmail looks up a user by email.
func (m *MemoryStore) GetUserByEmail(email string) (domain.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id, ok := m.email[email]; ok {
		u, exists := m.users[id]
		return u, exists, nil
	}
	return domain.User{}, false, nil
}

// GetUserByID returns a user by ID.
func (m *MemoryStore) GetUserByID(id string) (domain.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	return u, ok, nil
}

// SaveRole stores or replaces a career role.
func (m *MemoryStore) SaveRole(role domain.CareerRole) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.roles[role.ID]; !exists {
		m.roleOrder = append(m.roleOrder, role.ID)
	}
	m.roles[role.ID] = role
	return nil
}

// GetRole retrieves a role by ID.
func (m *MemoryStore) GetRole(id string) (domain.CareerRole, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	role, ok := m.roles[id]
	return role, ok, nil
}

// ListRoles returns roles in insertion order.
func (m *MemoryStore) ListRoles() ([]domain.CareerRole, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.CareerRole, 0, len(m.roleOrder))
	for _, id := range m.roleOrder {
		if role, ok := m.roles[id]; ok {
			res = append(res, role)
		}
	}
	return res, nil
}

// RoleCount returns number of roles.
func (m *MemoryStore) RoleCount() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.roles), nil
}

// SaveAssessment stores an assessment.
func (m *MemoryStore) SaveAssessment(a domain.SkillAssessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.assessments[a.ID]; !exists {
		m.assessOrder = append(m.assessOrder, a.ID)
	}
	m.assessments[a.ID] = a
	return nil
}

// GetAssessment retrieves an assessment by ID.
func (m *MemoryStore) GetAssessment(id string) (domain.SkillAssessment, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assessments[id]
	return a, ok, nil
}

// ListAssessmentsByUser returns a user's assessments in insertion order.
func (m *MemoryStore) ListAssessmentsByUser(userID string) ([]domain.SkillAssessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.SkillAssessment, 0)
	for _, id := range m.assessOrder {
		if a, ok := m.assessments[id]; ok && a.UserID == userID {
			res = append(res, a)
		}
	}
	return res, nil
}

// SaveAnalysis stores a gap analysis.
func (m *MemoryStore) SaveAnalysis(a domain.GapAnalysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses[a.ID] = a
	return nil
}

// GetAnalysis retrieves a gap analysis by ID.
func (m *MemoryStore) GetAnalysis(id string) (domain.GapAnalysis, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.analyses[id]
	return a, ok, nil
}

// SaveRoadmap stores a learning roadmap.
func (m *MemoryStore) SaveRoadmap(r domain.LearningRoadmap) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.roadmaps[r.ID]; !exists {
		m.roadmapOrd = append(m.roadmapOrd, r.ID)
	}
	m.roadmaps[r.ID] = r
	return nil
}

// ListRoadmapsByUser returns a user's roadmaps in insertion order.
func (m *MemoryStore) ListRoadmapsByUser(userID string) ([]domain.LearningRoadmap, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.LearningRoadmap, 0)
	for _, id := range m.roadmapOrd {
		if r, ok := m.roadmaps[id]; ok && r.UserID == userID {
			res = append(res, r)
		}
	}
	return res, nil
}

// SaveResource stores or replaces a learning resource.
func (m *MemoryStore) SaveResource(r domain.LearningResource) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.resources[r.ID]; !exists {
		m.resOrder = append(m.resOrder, r.ID)
	}
	m.resources[r.ID] = r
	return nil
}

// ListResources returns resources filtered by skill membership and difficulty.
func (m *MemoryStore) ListResources(skill, difficulty string) ([]domain.LearningResource, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.LearningResource, 0)
	for _, id := range m.resOrder {
		r, ok := m.resources[id]
		if !ok {
			continue
		}
		if difficulty != "" && r.Difficulty != difficulty {
			continue
		}
		if skill != "" && !containsSkill(r.Skills, skill) {
			continue
		}
		res = append(res, r)
	}
	return res, nil
}

// ResourceCount returns number of resources.
func (m *MemoryStore) ResourceCount() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.resources), nil
}

// SaveProgress creates or replaces a progress record.
func (m *MemoryStore) SaveProgress(p domain.Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.progress[p.ID]; !exists {
		m.progOrder = append(m.progOrder, p.ID)
	}
	m.progress[p.ID] = p
	return nil
}

// GetProgressByUserAndRole returns the progress record for a user+role pair.
func (m *MemoryStore) GetProgressByUserAndRole(userID, careerRoleID string) (domain.Progress, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.progress {
		if p.UserID == userID && p.CareerRoleID == careerRoleID {
			return p, true, nil
		}
	}
	return domain.Progress{}, false, nil
}

// ListProgressByUser returns all progress records of a user in insertion order.
func (m *MemoryStore) ListProgressByUser(userID string) ([]domain.Progress, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Progress, 0)
	for _, id := range m.progOrder {
		if p, ok := m.progress[id]; ok && p.UserID == userID {
			res = append(res, p)
		}
	}
	return res, nil
}

func containsSkill(skills []string, skill string) bool {
	for _, s := range skills {
		if s == skill {
			return true
		}
	}
	return false
}
