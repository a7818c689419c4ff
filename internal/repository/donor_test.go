package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository/dao"
)

type fakeDonorDAO struct {
	rows    []dao.Donor
	totals  map[uint]float64
	updated *dao.Donor
}

func (f *fakeDonorDAO) Insert(_ context.Context, user dao.User, donor dao.Donor) (dao.Donor, error) {
	donor.ID = uint(len(f.rows) + 1)
	donor.User = user
	f.rows = append(f.rows, donor)

	return donor, nil
}

func (f *fakeDonorDAO) FindByID(_ context.Context, id uint) (dao.Donor, error) {
	for _, row := range f.rows {
		if row.ID == id {
			return row, nil
		}
	}

	return dao.Donor{}, dao.ErrDonorNotFound
}

func (f *fakeDonorDAO) FindByUserID(_ context.Context, userID uint) (dao.Donor, error) {
	for _, row := range f.rows {
		if row.UserID == userID {
			return row, nil
		}
	}

	return dao.Donor{}, dao.ErrDonorNotFound
}

func (f *fakeDonorDAO) List(_ context.Context, limit, offset int) ([]dao.Donor, int64, error) {
	return f.rows, int64(len(f.rows)), nil
}

func (f *fakeDonorDAO) TotalDonatedByDonorID(_ context.Context, donorID uint) (float64, error) {
	return f.totals[donorID], nil
}

func (f *fakeDonorDAO) TotalsDonatedByDonorIDs(_ context.Context, donorIDs []uint) (map[uint]float64, error) {
	out := make(map[uint]float64)
	for _, id := range donorIDs {
		if total, ok := f.totals[id]; ok {
			out[id] = total
		}
	}

	return out, nil
}

func (f *fakeDonorDAO) Update(_ context.Context, donor dao.Donor) (dao.Donor, error) {
	f.updated = &donor

	return donor, nil
}

func (f *fakeDonorDAO) Delete(_ context.Context, id uint) error {
	return nil
}

func TestDonorFindAllAttachesTotals(t *testing.T) {
	fake := &fakeDonorDAO{
		rows: []dao.Donor{
			{ID: 1, UserID: 10, User: dao.User{FullName: "Ana"}},
			{ID: 2, UserID: 20, User: dao.User{FullName: "Bia"}},
		},
		totals: map[uint]float64{1: 120.5},
	}
	repo := NewDonorRepository(fake)

	donors, total, err := repo.FindAll(context.Background(), domain.PageQuery{Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, donors, 2)
	assert.Equal(t, 120.5, donors[0].TotalDonated)
	assert.Zero(t, donors[1].TotalDonated, "donor without donations carries a 0 total")
}

func TestDonorUpdatePassesEmailThrough(t *testing.T) {
	fake := &fakeDonorDAO{}
	repo := NewDonorRepository(fake)

	donor := domain.Donor{ID: 1, UserID: 10, Gender: "female"}
	donor.FullName = "Ana Souza"
	donor.Email = "ana@example.com"

	_, err := repo.Update(context.Background(), donor)

	require.NoError(t, err)
	require.NotNil(t, fake.updated)
	assert.Equal(t, "ana@example.com", fake.updated.User.Email)
	assert.Equal(t, "Ana Souza", fake.updated.User.FullName)
}
