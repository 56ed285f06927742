package app

import (
	"testing"

	"skillbridge/pkg/domain"
)

func TestBuildRoadmapItemsOrderingAndDuration(t *testing.T) {
	gaps := []domain.SkillGap{
		{Skill: "SQL", Gap: 1, Priority: domain.PriorityLow},
		{Skill: "Python", Gap: 3, Priority: domain.PriorityHigh},
		{Skill: "Statistics", Gap: 2, Priority: domain.PriorityMedium},
		{Skill: "Deep Learning", Gap: 3, Priority: domain.PriorityHigh},
	}

	items, total := buildRoadmapItems(gaps)
	if len(items) != 4 {
		t.Fatalf("got %d items, want 4", len(items))
	}

	wantOrder := []string{"Python", "Deep Learning", "Statistics", "SQL"}
	for i, want := range wantOrder {
		if items[i].Skill != want {
			t.Errorf("items[%d].Skill = %s, want %s", i, items[i].Skill, want)
		}
	}

	if items[0].EstimatedTime != "6 weeks" {
		t.Errorf("items[0].EstimatedTime = %s, want 6 weeks", items[0].EstimatedTime)
	}
	// 6+6+4+2 = 18 weeks, 18/4 floors to 4 months.
	if total != "18 weeks (~4 months)" {
		t.Errorf("total = %q, want %q", total, "18 weeks (~4 months)")
	}
}

func TestBuildRoadmapItemsStableOnTies(t *testing.T) {
	gaps := []domain.SkillGap{
		{Skill: "Docker", Gap: 2, Priority: domain.PriorityMedium},
		{Skill: "Kubernetes", Gap: 2, Priority: domain.PriorityMedium},
		{Skill: "CI/CD", Gap: 2, Priority: domain.PriorityMedium},
	}

	items, _ := buildRoadmapItems(gaps)
	wantOrder := []string{"Docker", "Kubernetes", "CI/CD"}
	for i, want := range wantOrder {
		if items[i].Skill != want {
			t.Errorf("items[%d].Skill = %s, want %s", i, items[i].Skill, want)
		}
	}
}

func TestBuildRoadmapItemMilestones(t *testing.T) {
	items, _ := buildRoadmapItems([]domain.SkillGap{
		{Skill: "React", Gap: 2, Priority: domain.PriorityMedium},
	})
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	item := items[0]
	want := []string{
		"Complete beginner tutorials for React",
		"Build 2-3 practice projects using React",
		"Achieve intermediate proficiency in React",
	}
	if len(item.Milestones) != len(want) {
		t.Fatalf("got %d milestones, want %d", len(item.Milestones), len(want))
	}
	for i := range want {
		if item.Milestones[i] != want[i] {
			t.Errorf("milestone[%d] = %q, want %q", i, item.Milestones[i], want[i])
		}
	}
	if item.Resources == nil || len(item.Resources) != 0 {
		t.Errorf("item.Resources = %v, want empty non-nil list", item.Resources)
	}
}

func TestBuildRoadmapItemsEmpty(t *testing.T) {
	items, total := buildRoadmapItems(nil)
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
	if total != "0 weeks (~0 months)" {
		t.Errorf("total = %q", total)
	}
}
