package content

import "github.com/ocean-explorer/backend/internal/models"

// ParallelSystems returns the fixed table of human-body/ocean system pairs
// the 3D viewer renders. Anchor coordinates position each system's marker on
// the anatomy model.
func ParallelSystems() []models.ParallelSystem {
	return []models.ParallelSystem{
		{
			ID:          "circulatory",
			HumanTitle:  "Heart & Blood Flow",
			OceanTitle:  "Ocean Currents",
			Description: "Just as the heart pumps blood through the body, ocean currents distribute heat and nutrients globally.",
			Icon:        "heart",
			Color:       "#FF6B6B",
			HeightLevel: "mid",
			Anchor:      models.Anchor{X: 0, Y: 0.2, Z: 0},
			Facts: []string{
				"The human heart pumps about 2,000 gallons of blood daily",
				"Ocean currents move over 100 times the global river flow",
				"Both systems transport vital nutrients and regulate temperature",
				"Disruptions in either can lead to systemic problems",
			},
		},
		{
			ID:          "respiratory",
			HumanTitle:  "Lungs & Breathing",
			OceanTitle:  "Ocean-Atmosphere Exchange",
			Description: "Like lungs exchanging gases with air, the ocean surface exchanges oxygen and CO2 with the atmosphere.",
			Icon:        "wind",
			Color:       "#4FC3F7",
			HeightLevel: "high",
			Anchor:      models.Anchor{X: -0.3, Y: 0.3, Z: 0.1},
			Facts: []string{
				"Oceans produce 50-80% of Earth's oxygen",
				"Both systems regulate gas exchange with the atmosphere",
				"Carbon dioxide absorption is crucial in both systems",
				"Temperature affects gas exchange rates",
			},
		},
		{
			ID:          "digestive",
			HumanTitle:  "Digestive System",
			OceanTitle:  "Marine Food Web",
			Description: "Similar to our digestive system breaking down food, the ocean's food web processes and cycles nutrients.",
			Icon:        "activity",
			Color:       "#66BB6A",
			HeightLevel: "low",
			Anchor:      models.Anchor{X: -0.1, Y: -0.2, Z: 0.2},
			Facts: []string{
				"Both break down complex materials into simpler forms",
				"Nutrient cycling is essential in both systems",
				"Microorganisms play crucial roles in both processes",
				"Energy transfer efficiency is similar",
			},
		},
		{
			ID:          "filtration",
			HumanTitle:  "Filtration System",
			OceanTitle:  "Ocean Purification",
			Description: "Like our kidneys and liver filter toxins, ocean organisms and processes purify seawater.",
			Icon:        "droplet",
			Color:       "#26A69A",
			HeightLevel: "mid",
			Anchor:      models.Anchor{X: 0.2, Y: -0.1, Z: 0.1},
			Facts: []string{
				"Both systems filter out harmful substances",
				"Natural filtration occurs continuously",
				"Multiple organisms/organs work together",
				"Capacity can be overwhelmed by excess pollution",
			},
		},
		{
			ID:          "skin",
			HumanTitle:  "Skin System",
			OceanTitle:  "Ocean Surface",
			Description: "The ocean surface, like human skin, regulates temperature and provides protection.",
			Icon:        "layers",
			Color:       "#e67e22",
			HeightLevel: "mid",
			Anchor:      models.Anchor{X: 0.3, Y: 0.1, Z: -0.1},
			Facts: []string{
				"Both act as protective barriers",
				"Temperature regulation is a key function",
				"Both are sensitive to environmental changes",
				"Damage can affect the entire system",
			},
		},
		{
			ID:          "liver",
			HumanTitle:  "Hepatic System",
			OceanTitle:  "Coastal Zones",
			Description: "Coastal zones, like the liver, process and transform materials while maintaining balance.",
			Icon:        "beaker",
			Color:       "#8e44ad",
			HeightLevel: "low",
			Anchor:      models.Anchor{X: -0.1, Y: 0.1, Z: -0.2},
			Facts: []string{
				"Both process and store nutrients",
				"Chemical transformation occurs in both",
				"Both are crucial for system health",
				"Can be damaged by toxic substances",
			},
		},
	}
}

// FindParallelSystem returns the parallel system with the given id.
func FindParallelSystem(id string) (models.ParallelSystem, bool) {
	for _, s := range ParallelSystems() {
		if s.ID == id {
			return s, true
		}
	}
	return models.ParallelSystem{}, false
}
