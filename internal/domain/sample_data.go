package domain

// SampleTrends returns the trends shown on a fresh dashboard.
func SampleTrends() []Trend {
	return []Trend{
		{
			ID:                       1,
			Title:                    "AI-Enhanced Personalized Learning",
			Category:                 "Technology",
			AdoptionRate:             68,
			ImpactScore:              4.2,
			Description:              "Using AI to create personalized learning paths for each student based on their performance, preferences, and learning style.",
			ImplementationDifficulty: "Medium",
			ResourcesRequired:        []string{"AI platform subscription", "Teacher training", "Data integration"},
		},
		{
			ID:                       2,
			Title:                    "Microlearning Modules",
			Category:                 "Pedagogy",
			AdoptionRate:             72,
			ImpactScore:              3.8,
			Description:              "Breaking down complex topics into small, focused learning units that can be completed in 5-10 minutes.",
			ImplementationDifficulty: "Low",
			ResourcesRequired:        []string{"Content creation tools", "Learning management system"},
		},
		{
			ID:                       3,
			Title:                    "Project-Based Assessment",
			Category:                 "Assessment",
			AdoptionRate:             65,
			ImpactScore:              4.5,
			Description:              "Replacing traditional tests with comprehensive projects that demonstrate mastery of multiple skills and concepts.",
			ImplementationDifficulty: "Medium",
			ResourcesRequired:        []string{"Assessment rubrics", "Project templates", "Collaboration tools"},
		},
		{
			ID:                       4,
			Title:                    "Social-Emotional Learning Integration",
			Category:                 "Well-being",
			AdoptionRate:             78,
			ImpactScore:              4.7,
			Description:              "Embedding social-emotional learning objectives into academic content across all subjects.",
			ImplementationDifficulty: "Medium",
			ResourcesRequired:        []string{"SEL curriculum", "Teacher training", "Assessment tools"},
		},
		{
			ID:                       5,
			Title:                    "Gamification Elements",
			Category:                 "Engagement",
			AdoptionRate:             81,
			ImpactScore:              4.0,
			Description:              "Incorporating game mechanics like points, badges, and leaderboards to increase student motivation and engagement.",
			ImplementationDifficulty: "Low",
			ResourcesRequired:        []string{"Gamification platform", "Digital badge system"},
		},
	}
}

// SampleUpdates returns the content updates shown on a fresh dashboard.
func SampleUpdates() []ContentUpdate {
	return []ContentUpdate{
		{
			ID:       1,
			Title:    "New Research on Learning Styles",
			Category: "Pedagogy",
			Date:     "2023-05-10",
			Source:   "Journal of Educational Psychology",
			Summary:  "Recent research challenges traditional learning style theories, suggesting more flexible approaches.",
			Impact:   ImpactHigh,
		},
		{
			ID:       2,
			Title:    "Updated Math Standards for Grade 5-8",
			Category: "Curriculum",
			Date:     "2023-04-22",
			Source:   "National Education Board",
			Summary:  "New standards emphasize computational thinking and real-world problem solving.",
			Impact:   ImpactMedium,
		},
		{
			ID:       3,
			Title:    "Digital Literacy Framework",
			Category: "Technology",
			Date:     "2023-05-05",
			Source:   "International Tech Education Association",
			Summary:  "New framework for teaching digital literacy skills across all subject areas.",
			Impact:   ImpactMedium,
		},
		{
			ID:       4,
			Title:    "Social-Emotional Learning Guidelines",
			Category: "Well-being",
			Date:     "2023-05-12",
			Source:   "Child Development Institute",
			Summary:  "Updated guidelines for incorporating SEL into daily classroom activities.",
			Impact:   ImpactHigh,
		},
		{
			ID:       5,
			Title:    "Accessibility Standards Update",
			Category: "Inclusion",
			Date:     "2023-04-30",
			Source:   "Education Accessibility Board",
			Summary:  "New requirements for making educational content accessible to all learners.",
			Impact:   ImpactMedium,
		},
	}
}
