package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository"
)

type mockDonorRepo struct {
	donors map[uint]domain.Donor
	totals map[uint]float64
}

func newMockDonorRepo(donors ...domain.Donor) *mockDonorRepo {
	repo := &mockDonorRepo{
		donors: make(map[uint]domain.Donor),
		totals: make(map[uint]float64),
	}
	for _, d := range donors {
		repo.donors[d.ID] = d
	}

	return repo
}

func (m *mockDonorRepo) Create(_ context.Context, donor domain.Donor) (domain.Donor, error) {
	for _, existing := range m.donors {
		if existing.CPF == donor.CPF {
			return domain.Donor{}, repository.ErrDonorCPFExists
		}
	}

	donor.ID = uint(len(m.donors) + 1)
	m.donors[donor.ID] = donor

	return donor, nil
}

func (m *mockDonorRepo) FindByID(_ context.Context, id uint) (domain.Donor, error) {
	donor, ok := m.donors[id]
	if !ok {
		return domain.Donor{}, repository.ErrDonorNotFound
	}

	return donor, nil
}

func (m *mockDonorRepo) FindByUserID(_ context.Context, userID uint) (domain.Donor, error) {
	for _, d := range m.donors {
		if d.UserID == userID {
			return d, nil
		}
	}

	return domain.Donor{}, repository.ErrDonorNotFound
}

func (m *mockDonorRepo) FindAll(_ context.Context, query domain.PageQuery) ([]domain.Donor, int64, error) {
	var out []domain.Donor
	for _, d := range m.donors {
		out = append(out, d)
	}

	return out, int64(len(out)), nil
}

func (m *mockDonorRepo) TotalDonatedByDonorID(_ context.Context, donorID uint) (float64, error) {
	return m.totals[donorID], nil
}

func (m *mockDonorRepo) Update(_ context.Context, donor domain.Donor) (domain.Donor, error) {
	m.donors[donor.ID] = donor

	return donor, nil
}

func (m *mockDonorRepo) Delete(_ context.Context, id uint) error {
	delete(m.donors, id)

	return nil
}

func TestSignupDonorHashesPassword(t *testing.T) {
	repo := newMockDonorRepo()
	svc := NewDonorService(repo)

	donor := domain.Donor{CPF: "12345678901"}
	donor.FullName = "Ana Souza"
	donor.Email = "ana@example.com"
	donor.Password = "secret123"

	created, err := svc.SignupDonor(context.Background(), donor)

	require.NoError(t, err)
	assert.NotEqual(t, "secret123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))
}

func TestSignupDonorDuplicateCPF(t *testing.T) {
	existing := domain.Donor{ID: 1, CPF: "12345678901"}
	svc := NewDonorService(newMockDonorRepo(existing))

	donor := domain.Donor{CPF: "12345678901"}
	donor.Password = "secret123"

	_, err := svc.SignupDonor(context.Background(), donor)

	assert.ErrorIs(t, err, ErrDonorCPFExists)
}

func TestGetDonor(t *testing.T) {
	repo := newMockDonorRepo(domain.Donor{ID: 3, UserID: 10})
	repo.totals[3] = 150.5
	svc := NewDonorService(repo)

	t.Run("owner sees donated total", func(t *testing.T) {
		donor, err := svc.GetDonor(context.Background(), 3, 10, domain.RoleDonor)

		require.NoError(t, err)
		assert.Equal(t, 150.5, donor.TotalDonated)
	})

	t.Run("other donor is refused", func(t *testing.T) {
		_, err := svc.GetDonor(context.Background(), 3, 99, domain.RoleDonor)

		assert.ErrorIs(t, err, ErrDonorForbidden)
	})

	t.Run("admin reads any donor", func(t *testing.T) {
		donor, err := svc.GetDonor(context.Background(), 3, 99, domain.RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, uint(3), donor.ID)
	})

	t.Run("unknown donor", func(t *testing.T) {
		_, err := svc.GetDonor(context.Background(), 42, 10, domain.RoleAdmin)

		assert.ErrorIs(t, err, ErrDonorNotFound)
	})
}

func TestUpdateDonorKeepsUserID(t *testing.T) {
	repo := newMockDonorRepo(domain.Donor{ID: 3, UserID: 10})
	svc := NewDonorService(repo)

	update := domain.Donor{ID: 3, Gender: "female"}
	update.FullName = "Ana Souza"

	updated, err := svc.UpdateDonor(context.Background(), update, 10, domain.RoleDonor)

	require.NoError(t, err)
	assert.Equal(t, uint(10), updated.UserID, "user link must survive updates")
}

func TestUpdateDonorForbidden(t *testing.T) {
	repo := newMockDonorRepo(domain.Donor{ID: 3, UserID: 10})
	svc := NewDonorService(repo)

	_, err := svc.UpdateDonor(context.Background(), domain.Donor{ID: 3}, 99, domain.RoleDonor)

	assert.ErrorIs(t, err, ErrDonorForbidden)
}
