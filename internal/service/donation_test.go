package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository"
)

type mockDonationRepo struct {
	donations map[uint]domain.Donation
	payments  map[uint]domain.Payment
}

func newMockDonationRepo(donations ...domain.Donation) *mockDonationRepo {
	repo := &mockDonationRepo{
		donations: make(map[uint]domain.Donation),
		payments:  make(map[uint]domain.Payment),
	}
	for _, d := range donations {
		repo.donations[d.ID] = d
	}

	return repo
}

func (m *mockDonationRepo) Create(_ context.Context, donation domain.Donation, payment domain.Payment) (domain.Donation, error) {
	donation.ID = uint(len(m.donations) + 1)
	payment.DonationID = donation.ID
	donation.Payments = []domain.Payment{payment}
	m.donations[donation.ID] = donation
	m.payments[donation.ID] = payment

	return donation, nil
}

func (m *mockDonationRepo) FindByID(_ context.Context, id uint) (domain.Donation, error) {
	donation, ok := m.donations[id]
	if !ok {
		return domain.Donation{}, repository.ErrDonationNotFound
	}

	return donation, nil
}

func (m *mockDonationRepo) FindAll(_ context.Context, query domain.PageQuery) ([]domain.Donation, int64, error) {
	var out []domain.Donation
	for _, d := range m.donations {
		out = append(out, d)
	}

	return out, int64(len(out)), nil
}

func (m *mockDonationRepo) FindAllByDonorID(_ context.Context, donorID uint, query domain.PageQuery) ([]domain.Donation, int64, error) {
	var out []domain.Donation
	for _, d := range m.donations {
		if d.DonorID == donorID {
			out = append(out, d)
		}
	}

	return out, int64(len(out)), nil
}

type mockDonationCampaignRepo struct {
	ids map[uint]bool
}

func (m *mockDonationCampaignRepo) FindByID(_ context.Context, id uint) (domain.Campaign, error) {
	if !m.ids[id] {
		return domain.Campaign{}, repository.ErrCampaignNotFound
	}

	return domain.Campaign{ID: id}, nil
}

type mockDonationDonorRepo struct {
	byUserID map[uint]domain.Donor
}

func (m *mockDonationDonorRepo) FindByUserID(_ context.Context, userID uint) (domain.Donor, error) {
	donor, ok := m.byUserID[userID]
	if !ok {
		return domain.Donor{}, repository.ErrDonorNotFound
	}

	return donor, nil
}

func newDonationService(repo *mockDonationRepo, campaignIDs []uint, donors map[uint]domain.Donor) *DonationService {
	ids := make(map[uint]bool)
	for _, id := range campaignIDs {
		ids[id] = true
	}

	return NewDonationService(repo, &mockDonationCampaignRepo{ids: ids}, &mockDonationDonorRepo{byUserID: donors})
}

func TestCreateDonation(t *testing.T) {
	repo := newMockDonationRepo()
	donors := map[uint]domain.Donor{10: {ID: 3, UserID: 10}}
	svc := newDonationService(repo, []uint{1}, donors)

	campaignID := uint(1)
	monthly := domain.PeriodicityMonthly
	created, err := svc.CreateDonation(context.Background(), 10, CreateDonationInput{
		Amount:      50,
		Periodicity: &monthly,
		CampaignID:  &campaignID,
		Method:      domain.PaymentMethodPix,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), created.DonorID, "donation must belong to the donor row, not the user")
	require.Len(t, created.Payments, 1)
	assert.Equal(t, domain.PaymentStatusPending, created.Payments[0].Status)
	assert.Equal(t, domain.PaymentMethodPix, created.Payments[0].Method)
	assert.Equal(t, float64(50), created.Payments[0].Amount)
}

func TestCreateDonationUnknownCampaign(t *testing.T) {
	donors := map[uint]domain.Donor{10: {ID: 3, UserID: 10}}
	svc := newDonationService(newMockDonationRepo(), nil, donors)

	campaignID := uint(99)
	_, err := svc.CreateDonation(context.Background(), 10, CreateDonationInput{
		Amount:     50,
		CampaignID: &campaignID,
		Method:     domain.PaymentMethodPix,
	})

	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestCreateDonationWithoutCampaign(t *testing.T) {
	donors := map[uint]domain.Donor{10: {ID: 3, UserID: 10}}
	svc := newDonationService(newMockDonationRepo(), nil, donors)

	created, err := svc.CreateDonation(context.Background(), 10, CreateDonationInput{
		Amount: 25,
		Method: domain.PaymentMethodBoleto,
	})

	require.NoError(t, err)
	assert.Nil(t, created.CampaignID)
}

func TestGetDonationOwnership(t *testing.T) {
	repo := newMockDonationRepo(domain.Donation{ID: 1, DonorID: 3, Amount: 50})
	donors := map[uint]domain.Donor{
		10: {ID: 3, UserID: 10},
		20: {ID: 4, UserID: 20},
	}
	svc := newDonationService(repo, nil, donors)

	t.Run("owner reads own donation", func(t *testing.T) {
		donation, err := svc.GetDonation(context.Background(), 1, 10, domain.RoleDonor)

		require.NoError(t, err)
		assert.Equal(t, uint(1), donation.ID)
	})

	t.Run("other donor is refused", func(t *testing.T) {
		_, err := svc.GetDonation(context.Background(), 1, 20, domain.RoleDonor)

		assert.ErrorIs(t, err, ErrDonationForbidden)
	})

	t.Run("admin reads any donation", func(t *testing.T) {
		donation, err := svc.GetDonation(context.Background(), 1, 999, domain.RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, uint(1), donation.ID)
	})
}

func TestListDonationsByDonor(t *testing.T) {
	repo := newMockDonationRepo(
		domain.Donation{ID: 1, DonorID: 3},
		domain.Donation{ID: 2, DonorID: 4},
		domain.Donation{ID: 3, DonorID: 3},
	)
	donors := map[uint]domain.Donor{10: {ID: 3, UserID: 10}}
	svc := newDonationService(repo, nil, donors)

	page, err := svc.ListDonationsByDonor(context.Background(), 10, domain.PageQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 1, page.Page)
}
