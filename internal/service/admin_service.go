package service

import (
	"strings"

	"turnero/internal/db"
	"turnero/internal/entities"
	apperrors "turnero/internal/errors"
	"turnero/internal/repository"
)

// AdminService covers the administrative surface: identity seeding and
// reservation oversight. Providers and clients are immutable once created.
type AdminService struct {
	providerRepo *repository.ProviderRepository
	clientRepo   *repository.ClientRepository
	adminRepo    *repository.AdminRepository
}

func NewAdminService(providerRepo *repository.ProviderRepository, clientRepo *repository.ClientRepository, adminRepo *repository.AdminRepository) *AdminService {
	return &AdminService{
		providerRepo: providerRepo,
		clientRepo:   clientRepo,
		adminRepo:    adminRepo,
	}
}

func (s *AdminService) CreateProvider(name string) (*db.Provider, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ErrInvalidRequest("provider name cannot be empty")
	}
	return s.providerRepo.Create(name)
}

func (s *AdminService) CreateClient(name, email string) (*db.Client, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return nil, apperrors.ErrInvalidRequest("client name and email cannot be empty")
	}
	return s.clientRepo.Create(name, email)
}

func (s *AdminService) ListReservations(date, providerName string) ([]entities.ReservationListItem, error) {
	return s.adminRepo.ListReservations(date, providerName)
}
