package content

import "github.com/ocean-explorer/backend/internal/models"

// ChapterQuizzes returns the builtin quiz catalog, keyed by chapter id.
// Generated questions may be appended at serve time; this table is the fixed
// baseline every deployment ships with.
func ChapterQuizzes() map[string]models.ChapterQuiz {
	return map[string]models.ChapterQuiz{
		"circulation": {
			ChapterID:   "circulation",
			Title:       "Ocean Circulation Systems",
			Description: "Test your knowledge about ocean circulation systems and their impact on marine life",
			Questions: []models.Question{
				{
					ID:   "circ_1",
					Text: "What drives the global ocean conveyor belt?",
					Options: []string{
						"Wind patterns only",
						"Temperature and salinity differences",
						"Earth's rotation",
						"Tidal forces",
					},
					CorrectAnswer: 1,
					Explanation:   "The global ocean conveyor belt is primarily driven by differences in temperature and salinity, a process known as thermohaline circulation.",
					Points:        1,
				},
				{
					ID:   "circ_2",
					Text: "Which of these is a major surface current in the Atlantic Ocean?",
					Options: []string{
						"Kuroshio Current",
						"California Current",
						"Gulf Stream",
						"Humboldt Current",
					},
					CorrectAnswer: 2,
					Explanation:   "The Gulf Stream is a powerful surface current in the Atlantic Ocean that carries warm water from the Gulf of Mexico to Europe.",
					Points:        1,
				},
				{
					ID:   "circ_3",
					Text: "How do ocean currents affect marine ecosystems?",
					Options: []string{
						"They have no effect on marine life",
						"They only affect surface organisms",
						"They transport nutrients and regulate temperature",
						"They only impact coastal regions",
					},
					CorrectAnswer: 2,
					Explanation:   "Ocean currents play a crucial role in transporting nutrients and regulating temperature, which directly impacts marine ecosystems at all depths.",
					Points:        1,
				},
			},
		},
		"ecosystem": {
			ChapterID:   "ecosystem",
			Title:       "Marine Ecosystems",
			Description: "Explore the interconnections between ocean systems and marine life",
			Questions: []models.Question{
				{
					ID:   "eco_1",
					Text: "What role do phytoplankton play in ocean ecosystems?",
					Options: []string{
						"They only serve as food for larger organisms",
						"They produce oxygen and form the base of marine food webs",
						"They only affect surface water temperature",
						"They have no significant impact",
					},
					CorrectAnswer: 1,
					Explanation:   "Phytoplankton are crucial as they produce oxygen through photosynthesis and form the foundation of marine food webs.",
					Points:        1,
				},
				{
					ID:   "eco_2",
					Text: "How do coral reefs benefit ocean ecosystems?",
					Options: []string{
						"They only provide aesthetic value",
						"They only protect coastlines",
						"They provide habitat and support biodiversity",
						"They only affect water chemistry",
					},
					CorrectAnswer: 2,
					Explanation:   "Coral reefs are vital as they provide habitat for numerous species, support biodiversity, protect coastlines, and maintain ocean chemistry.",
					Points:        1,
				},
			},
		},
		"climate": {
			ChapterID:   "climate",
			Title:       "Ocean and Climate",
			Description: "Understand how oceans influence and respond to climate change",
			Questions: []models.Question{
				{
					ID:   "clim_1",
					Text: "How do oceans help regulate Earth's climate?",
					Options: []string{
						"By absorbing heat and CO2",
						"Through wave action only",
						"By reflecting sunlight",
						"They don't affect climate",
					},
					CorrectAnswer: 0,
					Explanation:   "Oceans play a crucial role in climate regulation by absorbing and storing heat and carbon dioxide from the atmosphere.",
					Points:        1,
				},
				{
					ID:   "clim_2",
					Text: "What is ocean acidification?",
					Options: []string{
						"Natural pH fluctuation",
						"Decrease in ocean temperature",
						"Increase in ocean pH",
						"Decrease in ocean pH from absorbed CO2",
					},
					CorrectAnswer: 3,
					Explanation:   "Ocean acidification occurs when the ocean absorbs CO2 from the atmosphere, leading to a decrease in pH levels.",
					Points:        1,
				},
			},
		},
		"ocean_health": {
			ChapterID:   "ocean_health",
			Title:       "Ocean and Human Health",
			Description: "Discover how ocean health connects to the health of your own body",
			Questions: []models.Question{
				{
					ID:   "oh_1",
					Text: "How does ocean health directly impact human respiratory health?",
					Options: []string{
						"Through production of atmospheric oxygen by marine phytoplankton",
						"By regulating air temperature only",
						"Through wave motion",
						"Only through seaside recreation",
					},
					CorrectAnswer: 0,
					Explanation:   "Marine phytoplankton produce about 50-80% of Earth's oxygen, directly affecting the air we breathe. This makes ocean health crucial for human respiratory function.",
					Points:        1,
				},
				{
					ID:   "oh_2",
					Text: "Which ocean-based nutrient is essential for human cardiovascular health?",
					Options: []string{
						"Sand particles",
						"Omega-3 fatty acids from marine life",
						"Salt water",
						"Seaweed cellulose",
					},
					CorrectAnswer: 1,
					Explanation:   "Omega-3 fatty acids, found abundantly in marine life, are essential for heart health and reducing inflammation in the human body.",
					Points:        1,
				},
				{
					ID:   "oh_3",
					Text: "How do ocean temperatures affect human health in coastal communities?",
					Options: []string{
						"Only through recreational activities",
						"By influencing local weather patterns and disease vectors",
						"Through visual effects only",
						"No significant impact",
					},
					CorrectAnswer: 1,
					Explanation:   "Ocean temperatures influence local climate, humidity, and the spread of various diseases, directly impacting human health in coastal regions.",
					Points:        1,
				},
				{
					ID:   "oh_4",
					Text: "What role do healthy coral reefs play in human medicine?",
					Options: []string{
						"No medical applications",
						"Only as tourist attractions",
						"Source of compounds for new medications",
						"Only for water filtration",
					},
					CorrectAnswer: 2,
					Explanation:   "Coral reefs are rich sources of bioactive compounds used in developing new medications, including treatments for cancer, arthritis, and bacterial infections.",
					Points:        1,
				},
				{
					ID:   "oh_5",
					Text: "How does ocean pollution affect human endocrine health?",
					Options: []string{
						"It has no effect on hormones",
						"Through microplastics and chemical disruption of hormone systems",
						"Only through visual stress",
						"Through temperature changes only",
					},
					CorrectAnswer: 1,
					Explanation:   "Ocean pollutants, especially microplastics and industrial chemicals, can act as endocrine disruptors, affecting human hormone systems through the food chain.",
					Points:        1,
				},
			},
		},
	}
}
