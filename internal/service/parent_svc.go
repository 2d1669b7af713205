package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/deboragomesrs/kidsafe-browser/internal/repository"
	"github.com/deboragomesrs/kidsafe-browser/pkg/hash"
)

var (
	ErrInvalidPIN = errors.New("PIN must be 4 to 8 digits")
	ErrNoPINSet   = errors.New("no parent PIN has been set")
)

var pinRe = regexp.MustCompile(`^\d{4,8}$`)

// ParentService owns the parent-mode PIN gate. The PIN is stored as a
// salted, iterated SHA256 hash; the raw PIN never touches disk or logs.
type ParentService struct {
	repo *repository.ParentRepo
}

func NewParentService(repo *repository.ParentRepo) *ParentService {
	return &ParentService{repo: repo}
}

// SetPIN validates and stores a new parent PIN, replacing any previous one.
func (s *ParentService) SetPIN(ctx context.Context, pin string) error {
	if !pinRe.MatchString(pin) {
		return ErrInvalidPIN
	}
	salt := uuid.NewString()
	return s.repo.SavePIN(ctx, hash.HashPIN(pin, salt), salt)
}

// VerifyPIN reports whether the candidate PIN matches the stored one.
func (s *ParentService) VerifyPIN(ctx context.Context, pin string) (bool, error) {
	stored, salt, err := s.repo.LoadPIN(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrNoPINSet
		}
		return false, err
	}
	return hash.VerifyPIN(pin, salt, stored), nil
}
