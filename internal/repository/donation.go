package repository

import (
	"context"
	"fmt"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository/dao"
)

var ErrDonationNotFound = dao.ErrDonationNotFound

type DonationDAO interface {
	InsertWithPayment(ctx context.Context, donation dao.Donation, payment dao.Payment) (dao.Donation, error)
	FindByID(ctx context.Context, id uint) (dao.Donation, error)
	List(ctx context.Context, limit, offset int) ([]dao.Donation, int64, error)
	ListByDonorID(ctx context.Context, donorID uint, limit, offset int) ([]dao.Donation, int64, error)
}

type DonationRepository struct {
	dao DonationDAO
}

func NewDonationRepository(dao DonationDAO) *DonationRepository {
	return &DonationRepository{
		dao: dao,
	}
}

// Create persists the donation and its initial payment atomically.
func (r *DonationRepository) Create(ctx context.Context, donation domain.Donation, payment domain.Payment) (domain.Donation, error) {
	daoDonation := dao.Donation{
		Amount:     donation.Amount,
		CampaignID: donation.CampaignID,
		DonorID:    donation.DonorID,
	}
	if donation.Periodicity != nil {
		periodicity := string(*donation.Periodicity)
		daoDonation.Periodicity = &periodicity
	}

	daoPayment := dao.Payment{
		Method: string(payment.Method),
		Status: string(payment.Status),
		Amount: payment.Amount,
		PaidAt: payment.PaidAt,
	}

	created, err := r.dao.InsertWithPayment(ctx, daoDonation, daoPayment)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("r.dao.InsertWithPayment -> %w", err)
	}

	return donationDaoToDomain(created), nil
}

func (r *DonationRepository) FindByID(ctx context.Context, id uint) (domain.Donation, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return donationDaoToDomain(found), nil
}

func (r *DonationRepository) FindAll(ctx context.Context, query domain.PageQuery) ([]domain.Donation, int64, error) {
	rows, total, err := r.dao.List(ctx, query.PageSize, query.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	return donationsDaoToDomain(rows), total, nil
}

func (r *DonationRepository) FindAllByDonorID(ctx context.Context, donorID uint, query domain.PageQuery) ([]domain.Donation, int64, error) {
	rows, total, err := r.dao.ListByDonorID(ctx, donorID, query.PageSize, query.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.ListByDonorID -> %w", err)
	}

	return donationsDaoToDomain(rows), total, nil
}

func donationsDaoToDomain(rows []dao.Donation) []domain.Donation {
	donations := make([]domain.Donation, 0, len(rows))
	for _, row := range rows {
		donations = append(donations, donationDaoToDomain(row))
	}

	return donations
}

func donationDaoToDomain(d dao.Donation) domain.Donation {
	donation := domain.Donation{
		ID:         d.ID,
		Amount:     d.Amount,
		CampaignID: d.CampaignID,
		DonorID:    d.DonorID,
		DonorName:  d.Donor.User.FullName,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if d.Periodicity != nil {
		periodicity := domain.Periodicity(*d.Periodicity)
		donation.Periodicity = &periodicity
	}

	for _, p := range d.Payments {
		donation.Payments = append(donation.Payments, paymentDaoToDomain(p))
	}

	return donation
}

func paymentDaoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:         p.ID,
		DonationID: p.DonationID,
		Method:     domain.PaymentMethod(p.Method),
		Status:     domain.PaymentStatus(p.Status),
		Amount:     p.Amount,
		PaidAt:     p.PaidAt,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
