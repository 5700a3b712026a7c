package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/icannDevTeam/language-hub/internal/middleware"
	"github.com/icannDevTeam/language-hub/internal/models"
	"github.com/icannDevTeam/language-hub/internal/repository"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// PortalAuthService manages teacher accounts for the database-backed portal.
// Accounts on the approved domain are activated immediately; everyone else
// waits for manual approval.
type PortalAuthService struct {
	teachers       *repository.TeacherRepo
	jwt            *middleware.JWTAuth
	approvedDomain string
}

func NewPortalAuthService(teachers *repository.TeacherRepo, jwt *middleware.JWTAuth, approvedDomain string) *PortalAuthService {
	return &PortalAuthService{
		teachers:       teachers,
		jwt:            jwt,
		approvedDomain: approvedDomain,
	}
}

func (s *PortalAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.TeacherAccount, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, &ValidationError{Message: "Missing required fields"}
	}
	if !emailRegex.MatchString(req.Email) {
		return nil, &ValidationError{Message: "Invalid email format"}
	}
	if len(req.Password) < 8 {
		return nil, &ValidationError{Message: "Password must be at least 8 characters"}
	}

	email := strings.ToLower(req.Email)
	if _, err := s.teachers.GetByEmail(ctx, email); err == nil {
		return nil, &ConflictError{Message: "An account with this email already exists"}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	teacher := &models.TeacherAccount{
		Email:        email,
		Name:         req.Name,
		Status:       models.TeacherStatusPending,
		PasswordHash: string(hash),
	}
	if autoApproved(email, s.approvedDomain) {
		now := time.Now().UTC()
		teacher.Status = models.TeacherStatusApproved
		teacher.ApprovedAt = &now
	}

	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *PortalAuthService) SignIn(ctx context.Context, req models.SignInRequest) (string, *models.TeacherAccount, error) {
	if req.Email == "" || req.Password == "" {
		return "", nil, &ValidationError{Message: "Missing required fields"}
	}

	teacher, err := s.teachers.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, &UnauthorizedError{Message: "Invalid email or password"}
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, &UnauthorizedError{Message: "Invalid email or password"}
	}
	if teacher.Status != models.TeacherStatusApproved {
		return "", nil, &UnauthorizedError{Message: "Account is pending approval"}
	}

	token, err := s.jwt.GenerateToken(teacher.ID, teacher.Email)
	if err != nil {
		return "", nil, err
	}
	return token, teacher, nil
}

func (s *PortalAuthService) CurrentTeacher(ctx context.Context, email string) (*models.TeacherAccount, error) {
	teacher, err := s.teachers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Teacher not found"}
		}
		return nil, err
	}
	return teacher, nil
}

func autoApproved(email, domain string) bool {
	if domain == "" {
		return false
	}
	return strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(domain))
}
