package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const (
	TeacherIDKey    contextKey = "teacher_id"
	TeacherEmailKey contextKey = "teacher_email"
)

type JWTAuth struct {
	Secret []byte
}

func NewJWTAuth(secret string) *JWTAuth {
	return &JWTAuth{Secret: []byte(secret)}
}

// GenerateToken creates a portal session JWT with 24 hour expiry.
func (j *JWTAuth) GenerateToken(teacherID uuid.UUID, email string) (string, error) {
	claims := jwt.MapClaims{
		"teacher_id": teacherID.String(),
		"email":      email,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Middleware validates the bearer token and attaches the teacher identity to
// the request context.
func (j *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "Missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(w, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return j.Secret, nil
		})
		if err != nil {
			if strings.Contains(err.Error(), "expired") {
				writeError(w, http.StatusUnauthorized, "Token has expired")
			} else {
				writeError(w, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			writeError(w, http.StatusUnauthorized, "Invalid token claims")
			return
		}

		teacherIDStr, _ := claims["teacher_id"].(string)
		teacherID, err := uuid.Parse(teacherIDStr)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid teacher ID in token")
			return
		}
		email, ok := claims["email"].(string)
		if !ok || email == "" {
			writeError(w, http.StatusUnauthorized, "Invalid email in token")
			return
		}

		ctx := context.WithValue(r.Context(), TeacherIDKey, teacherID)
		ctx = context.WithValue(ctx, TeacherEmailKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTeacherID extracts the teacher id from the request context.
func GetTeacherID(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(TeacherIDKey).(uuid.UUID)
	return id
}

// GetTeacherEmail extracts the teacher email from the request context.
func GetTeacherEmail(ctx context.Context) string {
	email, _ := ctx.Value(TeacherEmailKey).(string)
	return email
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
