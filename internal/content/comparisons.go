package content

import "github.com/ocean-explorer/backend/internal/models"

// ComparisonPoints returns the side-by-side comparison cards. Connection
// strings double as the discoverable connection ids tracked per chapter by
// the progress store.
func ComparisonPoints() []models.ComparisonPoint {
	return []models.ComparisonPoint{
		{
			ID: "heart",
			HumanSystem: models.SystemInfo{
				Title:       "Circulatory System",
				Description: "The human circulatory system pumps blood throughout the body, delivering oxygen and nutrients while removing waste.",
				Facts: []string{
					"Pumps 2,000 gallons of blood daily",
					"Creates continuous circulation",
					"Maintains body temperature",
					"Responds to body needs",
				},
			},
			OceanSystem: models.SystemInfo{
				Title:       "Ocean Currents",
				Description: "Ocean currents form a global conveyor belt, moving water, heat, and nutrients around the planet.",
				Facts: []string{
					"Moves water globally",
					"Distributes heat and nutrients",
					"Affects global climate",
					"Creates marine highways",
				},
			},
			Connections: []string{
				"Both systems create continuous circulation",
				"Temperature regulation is crucial",
				"Nutrient distribution is essential",
				"System disruption affects the whole",
			},
		},
		{
			ID: "lungs",
			HumanSystem: models.SystemInfo{
				Title:       "Respiratory System",
				Description: "The respiratory system enables gas exchange between the body and the environment through the lungs.",
				Facts: []string{
					"Exchanges oxygen and CO2",
					"Regulated by pressure differences",
					"Constant adaptation to needs",
					"Filters incoming air",
				},
			},
			OceanSystem: models.SystemInfo{
				Title:       "Ocean-Atmosphere Exchange",
				Description: "The ocean surface constantly exchanges gases with the atmosphere, particularly oxygen and carbon dioxide.",
				Facts: []string{
					"Major oxygen producer",
					"CO2 absorption buffer",
					"Temperature dependent exchange",
					"Vital for global cycles",
				},
			},
			Connections: []string{
				"Gas exchange is fundamental",
				"Both systems are pressure-driven",
				"Temperature affects efficiency",
				"Filtering mechanisms exist in both",
			},
		},
		{
			ID: "skin",
			HumanSystem: models.SystemInfo{
				Title:       "Integumentary System",
				Description: "Skin shields the body from the outside world while regulating temperature and moisture.",
				Facts: []string{
					"Largest human organ",
					"First line of defense",
					"Regulates body temperature",
				},
			},
			OceanSystem: models.SystemInfo{
				Title:       "Ocean Surface Layer",
				Description: "The ocean's surface layer mediates every exchange between sea and sky, buffering what lies beneath.",
				Facts: []string{
					"Absorbs most incoming solar heat",
					"Hosts the air-sea boundary",
					"Shields deeper layers from rapid change",
				},
			},
			Connections: []string{
				"Both act as protective barriers",
				"Both regulate temperature for the whole system",
				"Both show damage from environmental stress first",
			},
		},
	}
}
