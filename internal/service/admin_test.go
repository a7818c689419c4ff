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

type mockAdminRepo struct {
	admins map[uint]domain.Admin
}

func newMockAdminRepo(admins ...domain.Admin) *mockAdminRepo {
	repo := &mockAdminRepo{admins: make(map[uint]domain.Admin)}
	for _, a := range admins {
		repo.admins[a.ID] = a
	}

	return repo
}

func (m *mockAdminRepo) Create(_ context.Context, admin domain.Admin) (domain.Admin, error) {
	for _, existing := range m.admins {
		if existing.Email == admin.Email {
			return domain.Admin{}, repository.ErrUserEmailExists
		}
	}

	admin.ID = uint(len(m.admins) + 1)
	m.admins[admin.ID] = admin

	return admin, nil
}

func (m *mockAdminRepo) FindByID(_ context.Context, id uint) (domain.Admin, error) {
	admin, ok := m.admins[id]
	if !ok {
		return domain.Admin{}, repository.ErrAdminNotFound
	}

	return admin, nil
}

func (m *mockAdminRepo) FindByUserID(_ context.Context, userID uint) (domain.Admin, error) {
	for _, a := range m.admins {
		if a.UserID == userID {
			return a, nil
		}
	}

	return domain.Admin{}, repository.ErrAdminNotFound
}

func (m *mockAdminRepo) FindAll(_ context.Context, query domain.PageQuery) ([]domain.Admin, int64, error) {
	var out []domain.Admin
	for _, a := range m.admins {
		out = append(out, a)
	}

	return out, int64(len(out)), nil
}

func (m *mockAdminRepo) Update(_ context.Context, admin domain.Admin) (domain.Admin, error) {
	m.admins[admin.ID] = admin

	return admin, nil
}

func (m *mockAdminRepo) Delete(_ context.Context, id uint) error {
	delete(m.admins, id)

	return nil
}

func TestCreateAdminHashesPassword(t *testing.T) {
	svc := NewAdminService(newMockAdminRepo())

	admin := domain.Admin{}
	admin.FullName = "Carla Lima"
	admin.Email = "carla@example.com"
	admin.Password = "secret123"

	created, err := svc.CreateAdmin(context.Background(), admin)

	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))
}

func TestCreateAdminDuplicateEmail(t *testing.T) {
	existing := domain.Admin{ID: 1}
	existing.Email = "carla@example.com"
	svc := NewAdminService(newMockAdminRepo(existing))

	admin := domain.Admin{}
	admin.Email = "carla@example.com"
	admin.Password = "secret123"

	_, err := svc.CreateAdmin(context.Background(), admin)

	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestUpdateAdminKeepsUserID(t *testing.T) {
	existing := domain.Admin{ID: 1, UserID: 10}
	svc := NewAdminService(newMockAdminRepo(existing))

	update := domain.Admin{ID: 1, IsRoot: true}
	update.FullName = "Carla Lima"

	updated, err := svc.UpdateAdmin(context.Background(), update)

	require.NoError(t, err)
	assert.Equal(t, uint(10), updated.UserID)
	assert.True(t, updated.IsRoot)
}

func TestDeleteAdminUnknownID(t *testing.T) {
	svc := NewAdminService(newMockAdminRepo())

	err := svc.DeleteAdmin(context.Background(), 42)

	assert.ErrorIs(t, err, ErrAdminNotFound)
}
