package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository"
)

var (
	ErrDonationNotFound  = repository.ErrDonationNotFound
	ErrDonationForbidden = errors.New("donation belongs to another donor")
)

type DonationRepository interface {
	Create(ctx context.Context, donation domain.Donation, payment domain.Payment) (domain.Donation, error)
	FindByID(ctx context.Context, id uint) (domain.Donation, error)
	FindAll(ctx context.Context, query domain.PageQuery) ([]domain.Donation, int64, error)
	FindAllByDonorID(ctx context.Context, donorID uint, query domain.PageQuery) ([]domain.Donation, int64, error)
}

type DonationCampaignRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Campaign, error)
}

type DonationDonorRepository interface {
	FindByUserID(ctx context.Context, userID uint) (domain.Donor, error)
}

type DonationService struct {
	repo      DonationRepository
	campaigns DonationCampaignRepository
	donors    DonationDonorRepository
}

func NewDonationService(repo DonationRepository, campaigns DonationCampaignRepository, donors DonationDonorRepository) *DonationService {
	return &DonationService{
		repo:      repo,
		campaigns: campaigns,
		donors:    donors,
	}
}

type CreateDonationInput struct {
	Amount      float64
	Periodicity *domain.Periodicity
	CampaignID  *uint
	Method      domain.PaymentMethod
}

// CreateDonation registers the donation and its payment for the calling
// donor. The two rows are written in one storage transaction.
func (s *DonationService) CreateDonation(ctx context.Context, donorUserID uint, input CreateDonationInput) (domain.Donation, error) {
	donor, err := s.donors.FindByUserID(ctx, donorUserID)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("s.donors.FindByUserID -> %w", err)
	}

	if input.CampaignID != nil {
		if _, err := s.campaigns.FindByID(ctx, *input.CampaignID); err != nil {
			return domain.Donation{}, fmt.Errorf("s.campaigns.FindByID -> %w", err)
		}
	}

	donation := domain.Donation{
		Amount:      input.Amount,
		Periodicity: input.Periodicity,
		CampaignID:  input.CampaignID,
		DonorID:     donor.ID,
	}
	payment := domain.Payment{
		Method: input.Method,
		Status: domain.PaymentStatusPending,
		Amount: input.Amount,
	}

	created, err := s.repo.Create(ctx, donation, payment)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// GetDonation enforces ownership: donors see only their own donations,
// admins see all.
func (s *DonationService) GetDonation(ctx context.Context, id uint, requesterUserID uint, requesterRole string) (domain.Donation, error) {
	donation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if requesterRole != domain.RoleAdmin {
		donor, err := s.donors.FindByUserID(ctx, requesterUserID)
		if err != nil {
			return domain.Donation{}, fmt.Errorf("s.donors.FindByUserID -> %w", err)
		}

		if donation.DonorID != donor.ID {
			return domain.Donation{}, ErrDonationForbidden
		}
	}

	return donation, nil
}

func (s *DonationService) ListDonations(ctx context.Context, query domain.PageQuery) (domain.Page[domain.Donation], error) {
	query = query.Normalize()

	donations, total, err := s.repo.FindAll(ctx, query)
	if err != nil {
		return domain.Page[domain.Donation]{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.NewPage(donations, query, total), nil
}

func (s *DonationService) ListDonationsByDonor(ctx context.Context, donorUserID uint, query domain.PageQuery) (domain.Page[domain.Donation], error) {
	donor, err := s.donors.FindByUserID(ctx, donorUserID)
	if err != nil {
		return domain.Page[domain.Donation]{}, fmt.Errorf("s.donors.FindByUserID -> %w", err)
	}

	query = query.Normalize()

	donations, total, err := s.repo.FindAllByDonorID(ctx, donor.ID, query)
	if err != nil {
		return domain.Page[domain.Donation]{}, fmt.Errorf("s.repo.FindAllByDonorID -> %w", err)
	}

	return domain.NewPage(donations, query, total), nil
}
