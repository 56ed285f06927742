package app

import (
	"fmt"
	"sort"

	"skillbridge/pkg/domain"
)

func priorityRank(p domain.GapPriority) int {
	switch p {
	case domain.PriorityHigh:
		return 0
	case domain.PriorityMedium:
		return 1
	default:
		return 2
	}
}

// buildRoadmapItems turns a gap list into ordered learning items plus the
// aggregate duration string. Items are stably sorted by priority so highest
// priority gaps come first and ties keep the analysis order. Each gap level
// costs two weeks of study.
func buildRoadmapItems(gaps []domain.SkillGap) ([]domain.RoadmapItem, string) {
	ordered := make([]domain.SkillGap, len(gaps))
	copy(ordered, gaps)
	sort.SliceStable(ordered, func(i, j int) bool {
		return priorityRank(ordered[i].Priority) < priorityRank(ordered[j].Priority)
	})

	items := make([]domain.RoadmapItem, 0, len(ordered))
	totalWeeks := 0
	for _, gap := range ordered {
		weeks := gap.Gap * 2
		totalWeeks += weeks
		items = append(items, domain.RoadmapItem{
			Skill:         gap.Skill,
			Priority:      gap.Priority,
			EstimatedTime: fmt.Sprintf("%d weeks", weeks),
			Resources:     []string{},
			Milestones: []string{
				fmt.Sprintf("Complete beginner tutorials for %s", gap.Skill),
				fmt.Sprintf("Build 2-3 practice projects using %s", gap.Skill),
				fmt.Sprintf("Achieve intermediate proficiency in %s", gap.Skill),
			},
		})
	}

	totalDuration := fmt.Sprintf("%d weeks (~%d months)", totalWeeks, totalWeeks/4)
	return items, totalDuration
}
