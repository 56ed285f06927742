package store

import (
	"fmt"

	"skillbridge/pkg/domain"
)

// Seed populates the role and resource catalogs when they are empty.
// Idempotent: a non-empty catalog is left untouched.
func Seed(s Store) error {
	roleCount, err := s.RoleCount()
	if err != nil {
		return fmt.Errorf("count roles: %w", err)
	}
	if roleCount == 0 {
		for _, role := range DefaultCareerRoles() {
			if err := s.SaveRole(role); err != nil {
				return fmt.Errorf("seed role %s: %w", role.ID, err)
			}
		}
	}
	resourceCount, err := s.ResourceCount()
	if err != nil {
		return fmt.Errorf("count resources: %w", err)
	}
	if resourceCount == 0 {
		for _, res := range DefaultLearningResources() {
			if err := s.SaveResource(res); err != nil {
				return fmt.Errorf("seed resource %s: %w", res.ID, err)
			}
		}
	}
	return nil
}

// DefaultCareerRoles returns the built-in career role catalog.
func DefaultCareerRoles() []domain.CareerRole {
	return []domain.CareerRole{
		{
			ID:          "role_001",
			Title:       "Full Stack Developer",
			Description: "Build end-to-end web applications with modern technologies. Handle both frontend and backend development.",
			RequiredSkills: []domain.Skill{
				{Name: "HTML/CSS", Category: "Frontend", Level: domain.LevelIntermediate},
				{Name: "JavaScript", Category: "Frontend", Level: domain.LevelAdvanced},
				{Name: "React", Category: "Frontend", Level: domain.LevelIntermediate},
				{Name: "Node.js", Category: "Backend", Level: domain.LevelIntermediate},
				{Name: "REST APIs", Category: "Backend", Level: domain.LevelIntermediate},
				{Name: "MongoDB", Category: "Database", Level: domain.LevelBeginner},
				{Name: "Git", Category: "Tools", Level: domain.LevelIntermediate},
			},
			AverageSalary: "$75,000 - $120,000",
			GrowthRate:    "22% (Much faster than average)",
		},
		{
			ID:          "role_002",
			Title:       "Data Scientist",
			Description: "Analyze complex data to help companies make better decisions using statistical analysis and machine learning.",
			RequiredSkills: []domain.Skill{
				{Name: "Python", Category: "Programming", Level: domain.LevelAdvanced},
				{Name: "Statistics", Category: "Mathematics", Level: domain.LevelAdvanced},
				{Name: "Machine Learning", Category: "AI/ML", Level: domain.LevelIntermediate},
				{Name: "SQL", Category: "Database", Level: domain.LevelIntermediate},
				{Name: "Data Visualization", Category: "Analytics", Level: domain.LevelIntermediate},
				{Name: "Pandas/NumPy", Category: "Libraries", Level: domain.LevelIntermediate},
				{Name: "Deep Learning", Category: "AI/ML", Level: domain.LevelBeginner},
			},
			AverageSalary: "$95,000 - $150,000",
			GrowthRate:    "36% (Much faster than average)",
		},
		{
			ID:          "role_003",
			Title:       "UI/UX Designer",
			Description: "Create user-friendly and visually appealing digital experiences. Focus on user research and interface design.",
			RequiredSkills: []domain.Skill{
				{Name: "Figma", Category: "Design Tools", Level: domain.LevelAdvanced},
				{Name: "User Research", Category: "Research", Level: domain.LevelIntermediate},
				{Name: "Wireframing", Category: "Design", Level: domain.LevelIntermediate},
				{Name: "Prototyping", Category: "Design", Level: domain.LevelIntermediate},
				{Name: "Visual Design", Category: "Design", Level: domain.LevelAdvanced},
				{Name: "HTML/CSS", Category: "Frontend", Level: domain.LevelBeginner},
				{Name: "Design Systems", Category: "Design", Level: domain.LevelIntermediate},
			},
			AverageSalary: "$70,000 - $110,000",
			GrowthRate:    "16% (Much faster than average)",
		},
		{
			ID:          "role_004",
			Title:       "Cloud Engineer",
			Description: "Design and manage cloud infrastructure. Ensure scalability, security, and reliability of cloud systems.",
			RequiredSkills: []domain.Skill{
				{Name: "AWS/Azure/GCP", Category: "Cloud Platforms", Level: domain.LevelIntermediate},
				{Name: "Linux", Category: "Operating Systems", Level: domain.LevelIntermediate},
				{Name: "Docker", Category: "DevOps", Level: domain.LevelIntermediate},
				{Name: "Kubernetes", Category: "DevOps", Level: domain.LevelIntermediate},
				{Name: "CI/CD", Category: "DevOps", Level: domain.LevelIntermediate},
				{Name: "Networking", Category: "Infrastructure", Level: domain.LevelBeginner},
				{Name: "Security", Category: "Infrastructure", Level: domain.LevelBeginner},
			},
			AverageSalary: "$85,000 - $140,000",
			GrowthRate:    "32% (Much faster than average)",
		},
		{
			ID:          "role_005",
			Title:       "Mobile App Developer",
			Description: "Create native or cross-platform mobile applications for iOS and Android. Focus on performance and UX.",
			RequiredSkills: []domain.Skill{
				{Name: "React Native/Flutter", Category: "Mobile", Level: domain.LevelIntermediate},
				{Name: "JavaScript/Dart", Category: "Programming", Level: domain.LevelIntermediate},
				{Name: "Mobile UI/UX", Category: "Design", Level: domain.LevelIntermediate},
				{Name: "REST APIs", Category: "Backend", Level: domain.LevelIntermediate},
				{Name: "State Management", Category: "Architecture", Level: domain.LevelIntermediate},
				{Name: "App Store Publishing", Category: "Deployment", Level: domain.LevelBeginner},
				{Name: "Mobile Testing", Category: "Testing", Level: domain.LevelBeginner},
			},
			AverageSalary: "$80,000 - $130,000",
			GrowthRate:    "22% (Much faster than average)",
		},
		{
			ID:          "role_006",
			Title:       "Cybersecurity Analyst",
			Description: "Protect organizations from cyber threats. Monitor security systems and respond to incidents.",
			RequiredSkills: []domain.Skill{
				{Name: "Network Security", Category: "Security", Level: domain.LevelIntermediate},
				{Name: "Ethical Hacking", Category: "Security", Level: domain.LevelIntermediate},
				{Name: "Security Tools", Category: "Tools", Level: domain.LevelIntermediate},
				{Name: "Incident Response", Category: "Security", Level: domain.LevelIntermediate},
				{Name: "Risk Assessment", Category: "Security", Level: domain.LevelIntermediate},
				{Name: "Cryptography", Category: "Security", Level: domain.LevelBeginner},
				{Name: "Compliance", Category: "Security", Level: domain.LevelBeginner},
			},
			AverageSalary: "$85,000 - $135,000",
			GrowthRate:    "35% (Much faster than average)",
		},
	}
}

// DefaultLearningResources returns the built-in learning resource catalog.
func DefaultLearningResources() []domain.LearningResource {
	return []domain.LearningResource{
		{
			ID:          "res_001",
			Title:       "JavaScript Fundamentals Course",
			Description: "Master JavaScript basics including variables, functions, and DOM manipulation",
			URL:         "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/",
			Type:        "Course",
			Difficulty:  "Beginner",
			Skills:      []string{"JavaScript"},
			Duration:    "300 hours",
		},
		{
			ID:          "res_002",
			Title:       "React Complete Guide",
			Description: "Learn React from scratch including hooks, context, and modern patterns",
			URL:         "https://react.dev/learn",
			Type:        "Tutorial",
			Difficulty:  "Intermediate",
			Skills:      []string{"React", "JavaScript"},
			Duration:    "40 hours",
		},
		{
			ID:          "res_003",
			Title:       "Python for Data Science",
			Description: "Complete Python course focused on data analysis and visualization",
			URL:         "https://www.kaggle.com/learn/python",
			Type:        "Course",
			Difficulty:  "Beginner",
			Skills:      []string{"Python", "Pandas/NumPy"},
			Duration:    "20 hours",
		},
		{
			ID:          "res_004",
			Title:       "Machine Learning Specialization",
			Description: "Andrew Ng's comprehensive machine learning course",
			URL:         "https://www.coursera.org/specializations/machine-learning",
			Type:        "Course",
			Difficulty:  "Intermediate",
			Skills:      []string{"Machine Learning", "Python"},
			Duration:    "3 months",
		},
		{
			ID:          "res_005",
			Title:       "Figma UI Design Tutorial",
			Description: "Learn professional UI design with Figma from basics to advanced",
			URL:         "https://www.youtube.com/watch?v=FTFaQWZBqQ8",
			Type:        "Video",
			Difficulty:  "Beginner",
			Skills:      []string{"Figma", "Visual Design"},
			Duration:    "5 hours",
		},
		{
			ID:          "res_006",
			Title:       "AWS Cloud Practitioner",
			Description: "Get started with AWS cloud services and architecture",
			URL:         "https://aws.amazon.com/training/",
			Type:        "Course",
			Difficulty:  "Beginner",
			Skills:      []string{"AWS/Azure/GCP"},
			Duration:    "20 hours",
		},
		{
			ID:          "res_007",
			Title:       "Docker Mastery",
			Description: "Complete Docker guide for containerization and deployment",
			URL:         "https://docs.docker.com/get-started/",
			Type:        "Tutorial",
			Difficulty:  "Intermediate",
			Skills:      []string{"Docker"},
			Duration:    "15 hours",
		},
		{
			ID:          "res_008",
			Title:       "SQL for Beginners",
			Description: "Learn database queries and data manipulation with SQL",
			URL:         "https://www.khanacademy.org/computing/computer-programming/sql",
			Type:        "Course",
			Difficulty:  "Beginner",
			Skills:      []string{"SQL", "MongoDB"},
			Duration:    "10 hours",
		},
	}
}
