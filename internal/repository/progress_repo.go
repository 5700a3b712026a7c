package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/icannDevTeam/language-hub/internal/models"
)

type ProgressRepo struct {
	pool *pgxpool.Pool
}

func NewProgressRepo(pool *pgxpool.Pool) *ProgressRepo {
	return &ProgressRepo{pool: pool}
}

// Save upserts on (student_name, lesson_id) so repeat saves for the same
// lesson replace the earlier record.
func (r *ProgressRepo) Save(ctx context.Context, p *models.StudentProgress) error {
	query := `
		INSERT INTO student_progress (id, student_name, lesson_id, xp_earned, achievements, last_activity)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (student_name, lesson_id)
		DO UPDATE SET xp_earned = EXCLUDED.xp_earned,
			achievements = EXCLUDED.achievements,
			last_activity = NOW()
		RETURNING id, last_activity`

	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	return r.pool.QueryRow(ctx, query,
		uuid.New(), p.StudentName, p.LessonID, p.XPEarned, p.Achievements,
	).Scan(&p.ID, &p.LastActivity)
}

func (r *ProgressRepo) ListByStudent(ctx context.Context, studentName string) ([]models.StudentProgress, error) {
	query := `SELECT id, student_name, lesson_id, xp_earned, achievements, last_activity
		FROM student_progress WHERE student_name = $1 ORDER BY last_activity DESC`

	rows, err := r.pool.Query(ctx, query, studentName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	progress := []models.StudentProgress{}
	for rows.Next() {
		var p models.StudentProgress
		if err := rows.Scan(&p.ID, &p.StudentName, &p.LessonID, &p.XPEarned, &p.Achievements, &p.LastActivity); err != nil {
			return nil, err
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}
