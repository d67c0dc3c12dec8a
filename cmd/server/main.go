package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/ocean-explorer/backend/internal/config"
	"github.com/ocean-explorer/backend/internal/content"
	"github.com/ocean-explorer/backend/internal/database"
	"github.com/ocean-explorer/backend/internal/gamification"
	"github.com/ocean-explorer/backend/internal/generator"
	"github.com/ocean-explorer/backend/internal/models"
	"github.com/ocean-explorer/backend/internal/progress"
	"github.com/ocean-explorer/backend/internal/quiz"
	"github.com/ocean-explorer/backend/internal/rewards"
	"github.com/ocean-explorer/backend/internal/session"
	"github.com/ocean-explorer/backend/internal/summary"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Sessions and stores
	sessions := session.NewManager(progress.NewSnapshotStore(db))

	// Quiz service with LLM-backed generation
	gen := generator.NewGenerator(generator.Options{
		Mock:    cfg.Generator.Mock,
		CLIPath: cfg.Generator.CLIPath,
		APIKey:  cfg.Generator.APIKey,
		Model:   cfg.Generator.Model,
	})
	quizService := quiz.NewService(content.ChapterQuizzes(), quiz.NewStore(db), gen, cfg.Quiz.QuestionTime)

	// Handlers
	progressHandler := progress.NewHandler(func(r *http.Request) (*progress.Store, bool) {
		s, ok := session.FromRequest(r)
		if !ok {
			return nil, false
		}
		return s.Progress, true
	})
	gamificationHandler := gamification.NewHandler(func(r *http.Request) (*gamification.Store, bool) {
		s, ok := session.FromRequest(r)
		if !ok {
			return nil, false
		}
		return s.Gamification, true
	})
	rewardsHandler := rewards.NewHandler(
		func(r *http.Request) (*rewards.Store, bool) {
			s, ok := session.FromRequest(r)
			if !ok {
				return nil, false
			}
			return s.Rewards, true
		},
		func(r *http.Request) (models.UserSnapshot, bool) {
			s, ok := session.FromRequest(r)
			if !ok {
				return models.UserSnapshot{}, false
			}
			return s.Snapshot(), true
		},
	)
	quizHandler := quiz.NewHandler(quizService, func(r *http.Request) (*progress.Store, *gamification.Store, bool) {
		s, ok := session.FromRequest(r)
		if !ok {
			return nil, nil, false
		}
		return s.Progress, s.Gamification, true
	})
	contentHandler := content.NewHandler()
	summaryHandler := summary.NewHandler()

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(sessions.Middleware)

	// Content
	api.HandleFunc("/content/parallels", contentHandler.ListParallels).Methods("GET")
	api.HandleFunc("/content/parallels/{systemID}", contentHandler.GetParallel).Methods("GET")
	api.HandleFunc("/content/comparisons", contentHandler.ListComparisons).Methods("GET")

	// Quizzes
	api.HandleFunc("/chapters", quizHandler.ListChapters).Methods("GET")
	api.HandleFunc("/chapters/{chapterID}", quizHandler.GetChapter).Methods("GET")
	api.HandleFunc("/quiz/{chapterID}/start", quizHandler.Start).Methods("POST")
	api.HandleFunc("/quiz/sessions/{sessionID}", quizHandler.Get).Methods("GET")
	api.HandleFunc("/quiz/sessions/{sessionID}/answer", quizHandler.Answer).Methods("POST")
	api.HandleFunc("/quiz/sessions/{sessionID}/timeout", quizHandler.Timeout).Methods("POST")
	api.HandleFunc("/quiz/sessions/{sessionID}/advance", quizHandler.Advance).Methods("POST")

	// Progress
	api.HandleFunc("/progress", progressHandler.GetProgress).Methods("GET")
	api.HandleFunc("/progress/chapters/{chapterID}/complete", progressHandler.CompleteChapter).Methods("POST")
	api.HandleFunc("/progress/connections", progressHandler.FindConnection).Methods("POST")
	api.HandleFunc("/progress/points", progressHandler.AddPoints).Methods("POST")
	api.HandleFunc("/progress/time", progressHandler.UpdateTime).Methods("POST")
	api.HandleFunc("/progress/achievements/{achievementID}", progressHandler.UnlockAchievement).Methods("POST")

	// Gamification
	api.HandleFunc("/gamification", gamificationHandler.GetGamification).Methods("GET")
	api.HandleFunc("/gamification/experience", gamificationHandler.AddExperience).Methods("POST")
	api.HandleFunc("/gamification/challenges/{challengeID}/complete", gamificationHandler.CompleteChallenge).Methods("POST")
	api.HandleFunc("/gamification/challenges/{challengeID}/progress", gamificationHandler.SetChallengeProgress).Methods("POST")
	api.HandleFunc("/gamification/achievements/{achievementID}", gamificationHandler.UnlockAchievement).Methods("POST")
	api.HandleFunc("/gamification/badges/{badgeID}", gamificationHandler.EarnBadge).Methods("POST")

	// Rewards
	api.HandleFunc("/rewards", rewardsHandler.GetRewards).Methods("GET")
	api.HandleFunc("/rewards/{rewardID}/unlock", rewardsHandler.UnlockReward).Methods("POST")
	api.HandleFunc("/rewards/{rewardID}/claim", rewardsHandler.ClaimReward).Methods("POST")
	api.HandleFunc("/rewards/{rewardID}/activate", rewardsHandler.ActivateReward).Methods("POST")
	api.HandleFunc("/rewards/{rewardID}/deactivate", rewardsHandler.DeactivateReward).Methods("POST")

	// Summary
	api.HandleFunc("/summary", summaryHandler.GetSummary).Methods("GET")

	// Admin
	api.HandleFunc("/admin/generate/{chapterID}", quizHandler.Generate).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", session.HeaderName},
		ExposedHeaders:   []string{session.HeaderName},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	log.Printf("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
