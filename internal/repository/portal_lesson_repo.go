package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/icannDevTeam/language-hub/internal/models"
)

type PortalLessonRepo struct {
	pool *pgxpool.Pool
}

func NewPortalLessonRepo(pool *pgxpool.Pool) *PortalLessonRepo {
	return &PortalLessonRepo{pool: pool}
}

func (r *PortalLessonRepo) Create(ctx context.Context, l *models.PortalLesson) error {
	query := `
		INSERT INTO portal_lessons (id, teacher_email, title, type, text, is_public)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	l.ID = uuid.New()
	return r.pool.QueryRow(ctx, query,
		l.ID, l.TeacherEmail, l.Title, l.Type, l.Text, l.IsPublic,
	).Scan(&l.CreatedAt)
}

func (r *PortalLessonRepo) ListByTeacher(ctx context.Context, teacherEmail string) ([]models.PortalLesson, error) {
	query := `SELECT id, teacher_email, title, type, text, is_public, created_at
		FROM portal_lessons WHERE teacher_email = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, teacherEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPortalLessons(rows)
}

func (r *PortalLessonRepo) ListPublic(ctx context.Context) ([]models.PortalLesson, error) {
	query := `SELECT id, teacher_email, title, type, text, is_public, created_at
		FROM portal_lessons WHERE is_public = TRUE ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPortalLessons(rows)
}

func scanPortalLessons(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]models.PortalLesson, error) {
	lessons := []models.PortalLesson{}
	for rows.Next() {
		var l models.PortalLesson
		if err := rows.Scan(&l.ID, &l.TeacherEmail, &l.Title, &l.Type, &l.Text, &l.IsPublic, &l.CreatedAt); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}
