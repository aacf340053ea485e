package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/apperror"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/model"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/repository"
)

// InstitutionService serves the read-only catalog. Create exists for the
// startup seeder; nothing else writes institutions.
type InstitutionService struct {
	repo   repository.InstitutionRepository
	logger *slog.Logger
}

func NewInstitutionService(repo repository.InstitutionRepository, logger *slog.Logger) *InstitutionService {
	return &InstitutionService{
		repo:   repo,
		logger: logger,
	}
}

// List returns every institution in insertion order.
func (s *InstitutionService) List(ctx context.Context) ([]model.Institution, error) {
	institutions, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/institution: listing: %w", err)
	}
	return institutions, nil
}

// Create stores a new catalog record. Name and category are the only
// required fields; everything else may be empty.
func (s *InstitutionService) Create(ctx context.Context, inst *model.Institution) error {
	if strings.TrimSpace(inst.Name) == "" {
		return apperror.ValidationFailed("name", "institution name is required")
	}
	if strings.TrimSpace(inst.Category) == "" {
		return apperror.ValidationFailed("type", "institution type is required")
	}

	if err := s.repo.Create(ctx, inst); err != nil {
		return fmt.Errorf("service/institution: creating %q: %w", inst.Name, err)
	}

	return nil
}
