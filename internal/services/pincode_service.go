package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ShivChilu/chicken-shop/internal/domain"
	"github.com/ShivChilu/chicken-shop/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrPincodeNotFound = domain.NotFound("Pincode not found")
	ErrPincodeExists   = domain.Conflict("Pincode already exists")
)

type PincodeService struct {
	pincodes repository.PincodeRepository
}

func NewPincodeService(p repository.PincodeRepository) *PincodeService {
	return &PincodeService{pincodes: p}
}

func (s *PincodeService) List(ctx context.Context) ([]domain.Pincode, error) {
	return s.pincodes.List(ctx)
}

// Create rejects a code that already exists, compared case-sensitively.
// active defaults to true when nil.
func (s *PincodeService) Create(ctx context.Context, code string, active *bool) (*domain.Pincode, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domain.Validation("Code is required")
	}

	existing, err := s.pincodes.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPincodeExists
	}

	p := &domain.Pincode{ID: uuid.NewString(), Code: code, Active: true}
	if active != nil {
		p.Active = *active
	}
	if err := s.pincodes.Save(ctx, p); err != nil {
		// Lost a race with a concurrent create of the same code.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrPincodeExists
		}
		return nil, err
	}
	return p, nil
}

func (s *PincodeService) Delete(ctx context.Context, id string) error {
	ok, err := s.pincodes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPincodeNotFound
	}
	return nil
}

// Verify reports whether deliveries are accepted for code. Unknown codes are
// simply not valid.
func (s *PincodeService) Verify(ctx context.Context, code string) (bool, error) {
	p, err := s.pincodes.FindByCode(ctx, code)
	if err != nil {
		return false, err
	}
	return p != nil && p.Active, nil
}
