package repository

import (
	"context"
	"fmt"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository/dao"
)

var (
	ErrDonorNotFound  = dao.ErrDonorNotFound
	ErrDonorCPFExists = dao.ErrDonorCPFExists
)

type DonorDAO interface {
	Insert(ctx context.Context, user dao.User, donor dao.Donor) (dao.Donor, error)
	FindByID(ctx context.Context, id uint) (dao.Donor, error)
	FindByUserID(ctx context.Context, userID uint) (dao.Donor, error)
	List(ctx context.Context, limit, offset int) ([]dao.Donor, int64, error)
	TotalDonatedByDonorID(ctx context.Context, donorID uint) (float64, error)
	TotalsDonatedByDonorIDs(ctx context.Context, donorIDs []uint) (map[uint]float64, error)
	Update(ctx context.Context, donor dao.Donor) (dao.Donor, error)
	Delete(ctx context.Context, id uint) error
}

type DonorRepository struct {
	dao DonorDAO
}

func NewDonorRepository(dao DonorDAO) *DonorRepository {
	return &DonorRepository{
		dao: dao,
	}
}

func (r *DonorRepository) Create(ctx context.Context, donor domain.Donor) (domain.Donor, error) {
	daoUser := dao.User{
		FullName: donor.FullName,
		Email:    donor.Email,
		Password: donor.Password,
		Role:     domain.RoleDonor,
	}
	daoDonor := dao.Donor{
		BirthDate: donor.BirthDate,
		Gender:    donor.Gender,
		Phone:     donor.Phone,
		CPF:       donor.CPF,
	}

	created, err := r.dao.Insert(ctx, daoUser, daoDonor)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return donorDaoToDomain(created), nil
}

func (r *DonorRepository) FindByID(ctx context.Context, id uint) (domain.Donor, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return donorDaoToDomain(found), nil
}

func (r *DonorRepository) FindByUserID(ctx context.Context, userID uint) (domain.Donor, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	return donorDaoToDomain(found), nil
}

// FindAll lists a page of donors with their donation totals attached.
// Donors without donations carry a 0 total.
func (r *DonorRepository) FindAll(ctx context.Context, query domain.PageQuery) ([]domain.Donor, int64, error) {
	rows, total, err := r.dao.List(ctx, query.PageSize, query.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	totals, err := r.dao.TotalsDonatedByDonorIDs(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.TotalsDonatedByDonorIDs -> %w", err)
	}

	donors := make([]domain.Donor, 0, len(rows))
	for _, row := range rows {
		donor := donorDaoToDomain(row)
		donor.TotalDonated = totals[row.ID]
		donors = append(donors, donor)
	}

	return donors, total, nil
}

func (r *DonorRepository) TotalDonatedByDonorID(ctx context.Context, donorID uint) (float64, error) {
	total, err := r.dao.TotalDonatedByDonorID(ctx, donorID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.TotalDonatedByDonorID -> %w", err)
	}

	return total, nil
}

func (r *DonorRepository) Update(ctx context.Context, donor domain.Donor) (domain.Donor, error) {
	updated, err := r.dao.Update(ctx, dao.Donor{
		ID:        donor.ID,
		UserID:    donor.UserID,
		BirthDate: donor.BirthDate,
		Gender:    donor.Gender,
		Phone:     donor.Phone,
		User: dao.User{
			FullName: donor.FullName,
			Email:    donor.Email,
		},
	})
	if err != nil {
		return domain.Donor{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return donorDaoToDomain(updated), nil
}

func (r *DonorRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func donorDaoToDomain(d dao.Donor) domain.Donor {
	return domain.Donor{
		User:      userDaoToDomain(d.User),
		ID:        d.ID,
		UserID:    d.UserID,
		BirthDate: d.BirthDate,
		Gender:    d.Gender,
		Phone:     d.Phone,
		CPF:       d.CPF,
	}
}
