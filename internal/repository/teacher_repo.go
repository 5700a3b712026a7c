package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/icannDevTeam/language-hub/internal/models"
)

type TeacherRepo struct {
	pool *pgxpool.Pool
}

func NewTeacherRepo(pool *pgxpool.Pool) *TeacherRepo {
	return &TeacherRepo{pool: pool}
}

func (r *TeacherRepo) Create(ctx context.Context, t *models.TeacherAccount) error {
	query := `
		INSERT INTO teachers (id, email, name, status, password_hash, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	t.ID = uuid.New()
	return r.pool.QueryRow(ctx, query,
		t.ID, t.Email, t.Name, t.Status, t.PasswordHash, t.ApprovedAt,
	).Scan(&t.CreatedAt)
}

func (r *TeacherRepo) GetByEmail(ctx context.Context, email string) (*models.TeacherAccount, error) {
	t := &models.TeacherAccount{}
	query := `SELECT id, email, name, status, password_hash, created_at, approved_at
		FROM teachers WHERE email = $1`

	err := r.pool.QueryRow(ctx, query, email).Scan(
		&t.ID, &t.Email, &t.Name, &t.Status, &t.PasswordHash, &t.CreatedAt, &t.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetApprovedByEmail only matches approved accounts; pending teachers are
// invisible to the directory.
func (r *TeacherRepo) GetApprovedByEmail(ctx context.Context, email string) (*models.TeacherAccount, error) {
	t := &models.TeacherAccount{}
	query := `SELECT id, email, name, status, password_hash, created_at, approved_at
		FROM teachers WHERE email = $1 AND status = $2`

	err := r.pool.QueryRow(ctx, query, email, models.TeacherStatusApproved).Scan(
		&t.ID, &t.Email, &t.Name, &t.Status, &t.PasswordHash, &t.CreatedAt, &t.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TeacherRepo) List(ctx context.Context) ([]models.TeacherAccount, error) {
	query := `SELECT id, email, name, status, password_hash, created_at, approved_at
		FROM teachers ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teachers := []models.TeacherAccount{}
	for rows.Next() {
		var t models.TeacherAccount
		if err := rows.Scan(&t.ID, &t.Email, &t.Name, &t.Status, &t.PasswordHash, &t.CreatedAt, &t.ApprovedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}
