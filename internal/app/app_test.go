package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"skillbridge/pkg/domain"
	"skillbridge/pkg/store"
	"skillbridge/pkg/usertoken"
)

type stubGenerator struct {
	text string
	err  error
}

func (g *stubGenerator) GenerateText(_ context.Context, _, _ string) (string, error) {
	return g.text, g.err
}

func newTestApp(t *testing.T) (*App, store.Store) {
	t.Helper()
	s := store.NewMemoryStore()
	if err := store.Seed(s); err != nil {
		t.Fatalf("seed: %v", err)
	}
	tokens, err := usertoken.New(usertoken.Config{Secret: "test-secret"})
	if err != nil {
		t.Fatalf("usertoken.New: %v", err)
	}
	a, err := New(Config{Store: s, Tokens: tokens, Generator: &stubGenerator{text: "advisor says hi"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a, s
}

func TestRegisterAndLogin(t *testing.T) {
	a, _ := newTestApp(t)

	user, token, err := a.Register("Alice", "Alice@Example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email not normalized: %s", user.Email)
	}
	if token == "" {
		t.Error("no token issued on register")
	}

	got, ok := a.UserFromToken(token)
	if !ok || got.ID != user.ID {
		t.Errorf("UserFromToken = %+v, ok=%v", got, ok)
	}

	_, loginToken, err := a.Login("alice@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loginToken == "" {
		t.Error("no token issued on login")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a, _ := newTestApp(t)

	if _, _, err := a.Register("Alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, _, err := a.Register("Other Alice", "alice@example.com", "password456")
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Errorf("duplicate register err = %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	a, _ := newTestApp(t)
	if _, _, err := a.Register("Alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := a.Login("alice@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := a.Login("nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestCreateAssessmentValidation(t *testing.T) {
	a, _ := newTestApp(t)
	user, _, _ := a.Register("Alice", "alice@example.com", "password123")

	if _, err := a.CreateAssessment(user.ID, "role_999", nil); !errors.Is(err, ErrRoleNotFound) {
		t.Errorf("unknown role err = %v, want ErrRoleNotFound", err)
	}
	if _, err := a.CreateAssessment(user.ID, "role_001", []domain.SkillRating{{SkillName: "React", CurrentLevel: 6}}); !errors.Is(err, ErrLevelOutOfRange) {
		t.Errorf("level 6 err = %v, want ErrLevelOutOfRange", err)
	}
	if _, err := a.CreateAssessment(user.ID, "role_001", []domain.SkillRating{{SkillName: " ", CurrentLevel: 3}}); !errors.Is(err, ErrSkillRequired) {
		t.Errorf("blank skill err = %v, want ErrSkillRequired", err)
	}

	created, err := a.CreateAssessment(user.ID, "role_001", []domain.SkillRating{{SkillName: "React", CurrentLevel: 3}})
	if err != nil {
		t.Fatalf("CreateAssessment: %v", err)
	}
	list, err := a.ListAssessments(user.ID)
	if err != nil || len(list) != 1 || list[0].ID != created.ID {
		t.Errorf("ListAssessments = %+v, err=%v", list, err)
	}
}

func TestAnalyzeGapEndToEnd(t *testing.T) {
	a, _ := newTestApp(t)
	user, _, _ := a.Register("Alice", "alice@example.com", "password123")

	assessment, err := a.CreateAssessment(user.ID, "role_001", []domain.SkillRating{
		{SkillName: "JavaScript", CurrentLevel: 3},
		{SkillName: "React", CurrentLevel: 2},
	})
	if err != nil {
		t.Fatalf("CreateAssessment: %v", err)
	}

	analysis, err := a.AnalyzeGap(context.Background(), user.ID, assessment.ID)
	if err != nil {
		t.Fatalf("AnalyzeGap: %v", err)
	}
	if analysis.AIInsights != "advisor says hi" {
		t.Errorf("AIInsights = %q", analysis.AIInsights)
	}
	if analysis.CareerRoleID != "role_001" || analysis.UserID != user.ID {
		t.Errorf("analysis refs = %+v", analysis)
	}
	// Full Stack Developer has 7 required skills, 5 of them unrated here.
	if len(analysis.SkillGaps) != 7 {
		t.Errorf("got %d gaps, want 7", len(analysis.SkillGaps))
	}
	if analysis.ReadinessScore <= 0 || analysis.ReadinessScore >= 100 {
		t.Errorf("ReadinessScore = %v, want strictly between 0 and 100", analysis.ReadinessScore)
	}
}

func TestAnalyzeGapOwnership(t *testing.T) {
	a, _ := newTestApp(t)
	alice, _, _ := a.Register("Alice", "alice@example.com", "password123")
	bob, _, _ := a.Register("Bob", "bob@example.com", "password123")

	assessment, err := a.CreateAssessment(alice.ID, "role_001", []domain.SkillRating{{SkillName: "React", CurrentLevel: 3}})
	if err != nil {
		t.Fatalf("CreateAssessment: %v", err)
	}

	// Another user's assessment reads as missing, never as forbidden.
	if _, err := a.AnalyzeGap(context.Background(), bob.ID, assessment.ID); !errors.Is(err, ErrAssessmentNotFound) {
		t.Errorf("cross-user analyze err = %v, want ErrAssessmentNotFound", err)
	}
}

func TestAnalyzeGapAIFailure(t *testing.T) {
	a, _ := newTestApp(t)
	a.generator = &stubGenerator{err: errors.New("connection refused")}
	user, _, _ := a.Register("Alice", "alice@example.com", "password123")

	assessment, _ := a.CreateAssessment(user.ID, "role_001", []domain.SkillRating{{SkillName: "React", CurrentLevel: 3}})
	if _, err := a.AnalyzeGap(context.Background(), user.ID, assessment.ID); !errors.Is(err, ErrAIUnavailable) {
		t.Errorf("AI failure err = %v, want ErrAIUnavailable", err)
	}
}

func TestGenerateRoadmapEndToEnd(t *testing.T) {
	a, _ := newTestApp(t)
	user, _, _ := a.Register("Alice", "alice@example.com", "password123")

	assessment, _ := a.CreateAssessment(user.ID, "role_001", []domain.SkillRating{
		{SkillName: "JavaScript", CurrentLevel: 3},
		{SkillName: "React", CurrentLevel: 2},
	})
	analysis, err := a.AnalyzeGap(context.Background(), user.ID, assessment.ID)
	if err != nil {
		t.Fatalf("AnalyzeGap: %v", err)
	}

	roadmap, err := a.GenerateRoadmap(context.Background(), user.ID, analysis.ID)
	if err != nil {
		t.Fatalf("GenerateRoadmap: %v", err)
	}
	if len(roadmap.RoadmapItems) != len(analysis.SkillGaps) {
		t.Errorf("got %d items for %d gaps", len(roadmap.RoadmapItems), len(analysis.SkillGaps))
	}
	if !strings.HasSuffix(roadmap.TotalDuration, "months)") {
		t.Errorf("TotalDuration = %q", roadmap.TotalDuration)
	}
	for i := 1; i < len(roadmap.RoadmapItems); i++ {
		if priorityRank(roadmap.RoadmapItems[i-1].Priority) > priorityRank(roadmap.RoadmapItems[i].Priority) {
			t.Errorf("items not sorted by priority at %d", i)
		}
	}

	list, err := a.ListRoadmaps(user.ID)
	if err != nil || len(list) != 1 {
		t.Errorf("ListRoadmaps = %d records, err=%v", len(list), err)
	}

	if _, err := a.GenerateRoadmap(context.Background(), user.ID, "missing"); !errors.Is(err, ErrAnalysisNotFound) {
		t.Errorf("missing analysis err = %v, want ErrAnalysisNotFound", err)
	}
}

func TestUpdateProgressUpsert(t *testing.T) {
	a, _ := newTestApp(t)
	user, _, _ := a.Register("Alice", "alice@example.com", "password123")

	first, err := a.UpdateProgress(user.ID, "role_001", "React", 40, "hooks done")
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if first.OverallProgress != 40 || len(first.SkillProgress) != 1 {
		t.Errorf("first record = %+v", first)
	}

	second, err := a.UpdateProgress(user.ID, "role_001", "Docker", 20, "")
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if len(second.SkillProgress) != 2 || second.OverallProgress != 30 {
		t.Errorf("second record = %+v", second)
	}

	// Same skill again overwrites in place, no duplicate entry.
	third, err := a.UpdateProgress(user.ID, "role_001", "React", 80, "redux too")
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if len(third.SkillProgress) != 2 {
		t.Fatalf("got %d entries after re-update, want 2", len(third.SkillProgress))
	}
	if third.OverallProgress != 50 {
		t.Errorf("OverallProgress = %d, want 50", third.OverallProgress)
	}
	for _, sp := range third.SkillProgress {
		if sp.Skill == "React" && (sp.Progress != 80 || sp.Notes != "redux too") {
			t.Errorf("React entry = %+v", sp)
		}
	}

	list, err := a.ListProgress(user.ID)
	if err != nil || len(list) != 1 {
		t.Errorf("ListProgress = %d records, err=%v", len(list), err)
	}
}

func TestUpdateProgressValidation(t *testing.T) {
	a, _ := newTestApp(t)
	user, _, _ := a.Register("Alice", "alice@example.com", "password123")

	if _, err := a.UpdateProgress(user.ID, "role_001", "", 10, ""); !errors.Is(err, ErrSkillRequired) {
		t.Errorf("blank skill err = %v", err)
	}
	if _, err := a.UpdateProgress(user.ID, "role_001", "React", 101, ""); !errors.Is(err, ErrProgressOutOfRange) {
		t.Errorf("progress 101 err = %v", err)
	}
	if _, err := a.UpdateProgress(user.ID, "role_999", "React", 10, ""); !errors.Is(err, ErrRoleNotFound) {
		t.Errorf("unknown role err = %v", err)
	}
}

func TestGetRoleAndListRoles(t *testing.T) {
	a, _ := newTestApp(t)

	roles, err := a.ListRoles()
	if err != nil || len(roles) != 6 {
		t.Fatalf("ListRoles = %d roles, err=%v", len(roles), err)
	}

	role, err := a.GetRole("role_003")
	if err != nil || role.Title != "UI/UX Designer" {
		t.Errorf("GetRole = %+v, err=%v", role, err)
	}
	if _, err := a.GetRole("role_404"); !errors.Is(err, ErrRoleNotFound) {
		t.Errorf("missing role err = %v", err)
	}
}
