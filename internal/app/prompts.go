package app

import (
	"fmt"
	"strings"

	"skillbridge/pkg/domain"
)

const (
	gapAnalysisSystemPrompt = "You are an expert career advisor and skill gap analyst. Provide detailed, actionable insights."
	roadmapSystemPrompt     = "You are an expert learning path designer. Create structured, realistic learning roadmaps."
)

func gapAnalysisPrompt(role domain.CareerRole, ratings []domain.SkillRating) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the skill gap for a student targeting the %s role.\n\n", role.Title)
	fmt.Fprintf(&b, "Required Skills for %s:\n", role.Title)
	for _, s := range role.RequiredSkills {
		fmt.Fprintf(&b, "- %s (%s): %s\n", s.Name, s.Level, s.Category)
	}
	b.WriteString("\nStudent's Current Skills:\n")
	for _, r := range ratings {
		fmt.Fprintf(&b, "- %s: Level %d/5\n", r.SkillName, r.CurrentLevel)
	}
	b.WriteString("\nProvide:\n")
	b.WriteString("1. Detailed skill gap analysis\n")
	b.WriteString("2. Priority areas for improvement\n")
	b.WriteString("3. Realistic timeline estimate\n")
	b.WriteString("4. Specific actionable advice\n\n")
	b.WriteString("Keep response under 300 words.")
	return b.String()
}

func roadmapPrompt(role domain.CareerRole, gaps []domain.SkillGap) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed learning roadmap for a student targeting %s.\n\n", role.Title)
	b.WriteString("Skill Gaps to Address:\n")
	for _, g := range gaps {
		fmt.Fprintf(&b, "- %s (Gap: %d, Priority: %s)\n", g.Skill, g.Gap, g.Priority)
	}
	b.WriteString("\nFor each skill gap, provide:\n")
	b.WriteString("1. Estimated learning time (be realistic)\n")
	b.WriteString("2. Key milestones (3-4 specific achievements)\n")
	b.WriteString("3. Learning approach recommendation\n\n")
	b.WriteString("Format your response as a structured learning plan. Keep it actionable and motivating.")
	return b.String()
}
