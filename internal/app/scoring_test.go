package app

import (
	"testing"

	"skillbridge/pkg/domain"
)

func TestTargetLevel(t *testing.T) {
	cases := []struct {
		level domain.SkillLevel
		want  int
	}{
		{domain.LevelBeginner, 3},
		{domain.LevelIntermediate, 4},
		{domain.LevelAdvanced, 5},
	}
	for _, tc := range cases {
		if got := targetLevel(tc.level); got != tc.want {
			t.Errorf("targetLevel(%s) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestGapPriorityBoundaries(t *testing.T) {
	cases := []struct {
		gap  int
		want domain.GapPriority
	}{
		{5, domain.PriorityHigh},
		{3, domain.PriorityHigh},
		{2, domain.PriorityMedium},
		{1, domain.PriorityLow},
	}
	for _, tc := range cases {
		if got := gapPriority(tc.gap); got != tc.want {
			t.Errorf("gapPriority(%d) = %s, want %s", tc.gap, got, tc.want)
		}
	}
}

func TestScoreGapsScenario(t *testing.T) {
	required := []domain.Skill{
		{Name: "JavaScript", Category: "Frontend", Level: domain.LevelIntermediate},
		{Name: "React", Category: "Frontend", Level: domain.LevelIntermediate},
	}
	ratings := []domain.SkillRating{
		{SkillName: "JavaScript", CurrentLevel: 3},
		{SkillName: "React", CurrentLevel: 2},
	}

	gaps, readiness := scoreGaps(required, ratings)
	if readiness != 62.5 {
		t.Errorf("readiness = %v, want 62.5", readiness)
	}
	if len(gaps) != 2 {
		t.Fatalf("got %d gaps, want 2", len(gaps))
	}
	if gaps[0].Skill != "JavaScript" || gaps[0].Gap != 1 || gaps[0].Priority != domain.PriorityLow {
		t.Errorf("JavaScript gap = %+v", gaps[0])
	}
	if gaps[1].Skill != "React" || gaps[1].Gap != 2 || gaps[1].Priority != domain.PriorityMedium {
		t.Errorf("React gap = %+v", gaps[1])
	}
}

func TestScoreGapsUnratedSkillCountsAsZero(t *testing.T) {
	required := []domain.Skill{
		{Name: "Kubernetes", Category: "DevOps", Level: domain.LevelAdvanced},
	}

	gaps, readiness := scoreGaps(required, nil)
	if len(gaps) != 1 {
		t.Fatalf("got %d gaps, want 1", len(gaps))
	}
	g := gaps[0]
	if g.CurrentLevel != 0 || g.RequiredLevel != 5 || g.Gap != 5 || g.Priority != domain.PriorityHigh {
		t.Errorf("gap = %+v", g)
	}
	if readiness != 0 {
		t.Errorf("readiness = %v, want 0", readiness)
	}
}

func TestScoreGapsFullReadinessExcludesGaps(t *testing.T) {
	required := []domain.Skill{
		{Name: "Git", Category: "Tools", Level: domain.LevelIntermediate},
		{Name: "Linux", Category: "OS", Level: domain.LevelBeginner},
	}
	ratings := []domain.SkillRating{
		{SkillName: "Git", CurrentLevel: 5},
		{SkillName: "Linux", CurrentLevel: 3},
	}

	gaps, readiness := scoreGaps(required, ratings)
	if len(gaps) != 0 {
		t.Errorf("got %d gaps, want 0", len(gaps))
	}
	if readiness != 100 {
		t.Errorf("readiness = %v, want 100", readiness)
	}
}

func TestScoreGapsOverqualifiedCapsAt100(t *testing.T) {
	required := []domain.Skill{
		{Name: "HTML/CSS", Category: "Frontend", Level: domain.LevelBeginner},
	}
	ratings := []domain.SkillRating{{SkillName: "HTML/CSS", CurrentLevel: 5}}

	gaps, readiness := scoreGaps(required, ratings)
	if len(gaps) != 0 || readiness != 100 {
		t.Errorf("gaps=%d readiness=%v, want 0 and 100", len(gaps), readiness)
	}
}

func TestScoreGapsNoRequiredSkills(t *testing.T) {
	gaps, readiness := scoreGaps(nil, nil)
	if len(gaps) != 0 || readiness != 100 {
		t.Errorf("gaps=%d readiness=%v, want 0 and 100", len(gaps), readiness)
	}
}

func TestScoreGapsRoundsToOneDecimal(t *testing.T) {
	required := []domain.Skill{
		{Name: "A", Level: domain.LevelBeginner},
		{Name: "B", Level: domain.LevelBeginner},
		{Name: "C", Level: domain.LevelBeginner},
	}
	ratings := []domain.SkillRating{
		{SkillName: "A", CurrentLevel: 1},
		{SkillName: "B", CurrentLevel: 1},
		{SkillName: "C", CurrentLevel: 2},
	}

	// (33.333 + 33.333 + 66.667) / 3 = 44.444 -> 44.4
	_, readiness := scoreGaps(required, ratings)
	if readiness != 44.4 {
		t.Errorf("readiness = %v, want 44.4", readiness)
	}
}
