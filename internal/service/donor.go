package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository"
)

var (
	ErrDonorNotFound  = repository.ErrDonorNotFound
	ErrDonorCPFExists = repository.ErrDonorCPFExists
	ErrDonorForbidden = errors.New("donor does not own this resource")
)

type DonorRepository interface {
	Create(ctx context.Context, donor domain.Donor) (domain.Donor, error)
	FindByID(ctx context.Context, id uint) (domain.Donor, error)
	FindByUserID(ctx context.Context, userID uint) (domain.Donor, error)
	FindAll(ctx context.Context, query domain.PageQuery) ([]domain.Donor, int64, error)
	TotalDonatedByDonorID(ctx context.Context, donorID uint) (float64, error)
	Update(ctx context.Context, donor domain.Donor) (domain.Donor, error)
	Delete(ctx context.Context, id uint) error
}

type DonorService struct {
	repo DonorRepository
}

func NewDonorService(repo DonorRepository) *DonorService {
	return &DonorService{
		repo: repo,
	}
}

// SignupDonor registers a donor from the public signup form.
func (s *DonorService) SignupDonor(ctx context.Context, donor domain.Donor) (domain.Donor, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(donor.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	donor.Password = string(hash)

	created, err := s.repo.Create(ctx, donor)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// GetDonor returns a donor with its donation total. A donor may only read
// its own record; admins may read any.
func (s *DonorService) GetDonor(ctx context.Context, id uint, requesterUserID uint, requesterRole string) (domain.Donor, error) {
	donor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if requesterRole != domain.RoleAdmin && donor.UserID != requesterUserID {
		return domain.Donor{}, ErrDonorForbidden
	}

	total, err := s.repo.TotalDonatedByDonorID(ctx, donor.ID)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("s.repo.TotalDonatedByDonorID -> %w", err)
	}
	donor.TotalDonated = total

	return donor, nil
}

func (s *DonorService) GetDonorByUserID(ctx context.Context, userID uint) (domain.Donor, error) {
	donor, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return donor, nil
}

// ListDonors pages through donors, each entry carrying its donated total.
func (s *DonorService) ListDonors(ctx context.Context, query domain.PageQuery) (domain.Page[domain.Donor], error) {
	query = query.Normalize()

	donors, total, err := s.repo.FindAll(ctx, query)
	if err != nil {
		return domain.Page[domain.Donor]{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.NewPage(donors, query, total), nil
}

func (s *DonorService) UpdateDonor(ctx context.Context, donor domain.Donor, requesterUserID uint, requesterRole string) (domain.Donor, error) {
	existing, err := s.repo.FindByID(ctx, donor.ID)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if requesterRole != domain.RoleAdmin && existing.UserID != requesterUserID {
		return domain.Donor{}, ErrDonorForbidden
	}
	donor.UserID = existing.UserID

	updated, err := s.repo.Update(ctx, donor)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *DonorService) DeleteDonor(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
