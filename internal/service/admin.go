package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository"
)

var (
	ErrAdminNotFound   = repository.ErrAdminNotFound
	ErrUserEmailExists = repository.ErrUserEmailExists
)

type AdminRepository interface {
	Create(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	FindByID(ctx context.Context, id uint) (domain.Admin, error)
	FindByUserID(ctx context.Context, userID uint) (domain.Admin, error)
	FindAll(ctx context.Context, query domain.PageQuery) ([]domain.Admin, int64, error)
	Update(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	Delete(ctx context.Context, id uint) error
}

type AdminService struct {
	repo AdminRepository
}

func NewAdminService(repo AdminRepository) *AdminService {
	return &AdminService{
		repo: repo,
	}
}

func (s *AdminService) CreateAdmin(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	admin.Password = string(hash)

	created, err := s.repo.Create(ctx, admin)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AdminService) GetAdmin(ctx context.Context, id uint) (domain.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return admin, nil
}

func (s *AdminService) GetAdminByUserID(ctx context.Context, userID uint) (domain.Admin, error) {
	admin, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return admin, nil
}

func (s *AdminService) ListAdmins(ctx context.Context, query domain.PageQuery) (domain.Page[domain.Admin], error) {
	query = query.Normalize()

	admins, total, err := s.repo.FindAll(ctx, query)
	if err != nil {
		return domain.Page[domain.Admin]{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.NewPage(admins, query, total), nil
}

func (s *AdminService) UpdateAdmin(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	existing, err := s.repo.FindByID(ctx, admin.ID)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	admin.UserID = existing.UserID

	updated, err := s.repo.Update(ctx, admin)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AdminService) DeleteAdmin(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
