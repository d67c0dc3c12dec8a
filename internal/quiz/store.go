package quiz

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/ocean-explorer/backend/internal/models"
)

// Store persists generated quiz questions. Builtin chapter content lives in
// code; only LLM-generated questions go through the database.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Insert saves a batch of generated questions for a chapter.
func (s *Store) Insert(chapterID string, questions []models.Question) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, q := range questions {
		_, err := tx.Exec(
			`INSERT INTO generated_questions
			 (id, chapter_id, question_text, options, correct_answer, explanation, points)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			q.ID, chapterID, q.Text, pq.Array(q.Options), q.CorrectAnswer, q.Explanation, q.Points,
		)
		if err != nil {
			return fmt.Errorf("insert question %s: %w", q.ID, err)
		}
	}
	return tx.Commit()
}

// ListByChapter returns all generated questions for a chapter, oldest first.
func (s *Store) ListByChapter(chapterID string) ([]models.Question, error) {
	rows, err := s.db.Query(
		`SELECT id, question_text, options, correct_answer, explanation, points
		 FROM generated_questions
		 WHERE chapter_id = $1
		 ORDER BY created_at`,
		chapterID,
	)
	if err != nil {
		return nil, fmt.Errorf("list generated questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Text, pq.Array(&q.Options), &q.CorrectAnswer, &q.Explanation, &q.Points); err != nil {
			return nil, fmt.Errorf("scan generated question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// Delete removes a generated question.
func (s *Store) Delete(id string) error {
	result, err := s.db.Exec(`DELETE FROM generated_questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete generated question: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return sql.ErrNoRows
	}
	return nil
}
