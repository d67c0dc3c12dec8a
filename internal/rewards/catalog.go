package rewards

import "github.com/ocean-explorer/backend/internal/models"

// Catalog returns the fixed reward definitions, seeded at startup and never
// mutated at runtime.
func Catalog() []models.Reward {
	return []models.Reward{
		{
			ID:          "ocean_explorer",
			Title:       "Ocean Explorer",
			Description: "Complete all ocean system explorations",
			Type:        models.RewardTypeBadge,
			Icon:        "trophy",
			Rarity:      models.RarityEpic,
			Requirements: models.RewardRequirements{
				Achievements: []string{"explore_all_systems"},
			},
		},
		{
			ID:          "knowledge_seeker",
			Title:       "Knowledge Seeker",
			Description: "Score 90% or higher on all quizzes",
			Type:        models.RewardTypeAchievement,
			Icon:        "star",
			Rarity:      models.RarityLegendary,
			Requirements: models.RewardRequirements{
				Level: 5,
			},
		},
		{
			ID:          "master_explorer",
			Title:       "Master Explorer",
			Description: "Discover all hidden connections",
			Type:        models.RewardTypeBadge,
			Icon:        "crown",
			Rarity:      models.RarityLegendary,
			Requirements: models.RewardRequirements{
				Level: 10,
			},
		},
		{
			ID:          "insight_finder",
			Title:       "Insight Finder",
			Description: "Find 5 unique parallels",
			Type:        models.RewardTypeAchievement,
			Icon:        "lightbulb",
			Rarity:      models.RarityRare,
			Requirements: models.RewardRequirements{
				Achievements: []string{"find_parallels"},
			},
		},
		{
			ID:          "ocean_guardian",
			Title:       "Ocean Guardian",
			Description: "Complete the conservation challenge",
			Type:        models.RewardTypeBadge,
			Icon:        "award",
			Rarity:      models.RarityEpic,
			Requirements: models.RewardRequirements{
				Challenges: []string{"conservation"},
			},
		},
	}
}
