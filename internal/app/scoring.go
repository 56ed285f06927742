package app

import (
	"math"

	"skillbridge/pkg/domain"
)

// targetLevel maps a role's declared proficiency to the 1-5 rating scale.
func targetLevel(level domain.SkillLevel) int {
	switch level {
	case domain.LevelBeginner:
		return 3
	case domain.LevelIntermediate:
		return 4
	default:
		return 5
	}
}

func gapPriority(gap int) domain.GapPriority {
	switch {
	case gap >= 3:
		return domain.PriorityHigh
	case gap == 2:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

// scoreGaps computes the per-skill gap list and the aggregate readiness score
// for one assessment against one role. Skills the user never rated count as
// level 0. Only skills with a positive gap appear in the returned list;
// readiness averages over every required skill. Deterministic given its inputs.
func scoreGaps(required []domain.Skill, ratings []domain.SkillRating) ([]domain.SkillGap, float64) {
	current := make(map[string]int, len(ratings))
	for _, r := range ratings {
		current[r.SkillName] = r.CurrentLevel
	}

	// A role without required skills gives the gap scorer nothing to
	// measure; report full readiness rather than dividing by zero.
	if len(required) == 0 {
		return nil, 100
	}

	gaps := make([]domain.SkillGap, 0, len(required))
	readinessSum := 0.0
	for _, req := range required {
		level := current[req.Name]
		target := targetLevel(req.Level)
		gap := target - level
		if gap < 0 {
			gap = 0
		}
		readinessSum += math.Min(float64(level)/float64(target)*100, 100)
		if gap > 0 {
			gaps = append(gaps, domain.SkillGap{
				Skill:         req.Name,
				Category:      req.Category,
				CurrentLevel:  level,
				RequiredLevel: target,
				Gap:           gap,
				Priority:      gapPriority(gap),
			})
		}
	}

	readiness := math.Round(readinessSum/float64(len(required))*10) / 10
	return gaps, readiness
}
