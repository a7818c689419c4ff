package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/mail"
	"github.com/doarbem/donation-api/internal/repository"
)

type mockUserRepo struct {
	users     map[string]domain.User
	passwords map[uint]string
}

func newMockUserRepo(users ...domain.User) *mockUserRepo {
	repo := &mockUserRepo{
		users:     make(map[string]domain.User),
		passwords: make(map[uint]string),
	}
	for _, u := range users {
		repo.users[u.Email] = u
	}

	return repo
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := m.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id uint, hashed string) error {
	m.passwords[id] = hashed

	return nil
}

type mockTokenRepo struct {
	tokens  map[string]domain.PasswordResetToken
	deleted []uint
}

func newMockTokenRepo(tokens ...domain.PasswordResetToken) *mockTokenRepo {
	repo := &mockTokenRepo{tokens: make(map[string]domain.PasswordResetToken)}
	for _, tok := range tokens {
		repo.tokens[tok.Token] = tok
	}

	return repo
}

func (m *mockTokenRepo) Create(_ context.Context, token domain.PasswordResetToken) (domain.PasswordResetToken, error) {
	token.ID = uint(len(m.tokens) + 1)
	m.tokens[token.Token] = token

	return token, nil
}

func (m *mockTokenRepo) FindByToken(_ context.Context, token string) (domain.PasswordResetToken, error) {
	tok, ok := m.tokens[token]
	if !ok {
		return domain.PasswordResetToken{}, repository.ErrResetTokenNotFound
	}

	return tok, nil
}

func (m *mockTokenRepo) DeleteByUserID(_ context.Context, userID uint) error {
	m.deleted = append(m.deleted, userID)
	for code, tok := range m.tokens {
		if tok.UserID == userID {
			delete(m.tokens, code)
		}
	}

	return nil
}

type mockMailQueue struct {
	messages []mail.Message
}

func (m *mockMailQueue) Enqueue(_ context.Context, msg mail.Message) error {
	m.messages = append(m.messages, msg)

	return nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestLogin(t *testing.T) {
	users := newMockUserRepo(domain.User{
		ID:       7,
		Email:    "ana@example.com",
		Password: hashPassword(t, "secret123"),
		Role:     domain.RoleDonor,
	})
	svc := NewAuthService(users, newMockTokenRepo(), &mockMailQueue{})

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "ana@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ana@example.com", "nope12345")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ghost@example.com", "secret123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestSendPasswordResetToken(t *testing.T) {
	users := newMockUserRepo(domain.User{ID: 7, Email: "ana@example.com", FullName: "Ana"})
	tokens := newMockTokenRepo()
	queue := &mockMailQueue{}
	svc := NewAuthService(users, tokens, queue)

	err := svc.SendPasswordResetToken(context.Background(), "ana@example.com")

	require.NoError(t, err)
	require.Len(t, tokens.tokens, 1)
	require.Len(t, queue.messages, 1)

	var code string
	for c := range tokens.tokens {
		code = c
	}
	assert.Len(t, code, 6)
	assert.Contains(t, queue.messages[0].Body, code, "mail body must carry the code")
	assert.Equal(t, "ana@example.com", queue.messages[0].To)
}

func TestSendPasswordResetTokenUnknownEmail(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), newMockTokenRepo(), &mockMailQueue{})

	err := svc.SendPasswordResetToken(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestVerifyCode(t *testing.T) {
	users := newMockUserRepo(
		domain.User{ID: 7, Email: "ana@example.com"},
		domain.User{ID: 8, Email: "bia@example.com"},
	)
	tokens := newMockTokenRepo(
		domain.PasswordResetToken{UserID: 7, Token: "ABC123", ExpiresAt: time.Now().Add(10 * time.Minute)},
		domain.PasswordResetToken{UserID: 7, Token: "OLD999", ExpiresAt: time.Now().Add(-time.Minute)},
	)
	svc := NewAuthService(users, tokens, &mockMailQueue{})

	tests := []struct {
		name    string
		email   string
		code    string
		wantErr error
	}{
		{name: "valid code", email: "ana@example.com", code: "ABC123", wantErr: nil},
		{name: "unknown code", email: "ana@example.com", code: "ZZZZZZ", wantErr: ErrInvalidResetCode},
		{name: "another user's code", email: "bia@example.com", code: "ABC123", wantErr: ErrInvalidResetCode},
		{name: "unknown email", email: "ghost@example.com", code: "ABC123", wantErr: ErrInvalidResetCode},
		{name: "expired code", email: "ana@example.com", code: "OLD999", wantErr: ErrResetCodeExpired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.VerifyCode(context.Background(), tc.email, tc.code)

			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestResetPassword(t *testing.T) {
	users := newMockUserRepo(domain.User{ID: 7, Email: "ana@example.com"})
	tokens := newMockTokenRepo(domain.PasswordResetToken{
		UserID:    7,
		Token:     "ABC123",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	})
	svc := NewAuthService(users, tokens, &mockMailQueue{})

	err := svc.ResetPassword(context.Background(), "ana@example.com", "ABC123", "newpass99")

	require.NoError(t, err)
	require.Contains(t, users.passwords, uint(7))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.passwords[7]), []byte("newpass99")))
	assert.Equal(t, []uint{7}, tokens.deleted, "outstanding tokens must be discarded")
}

func TestResetPasswordInvalidCode(t *testing.T) {
	users := newMockUserRepo(domain.User{ID: 7, Email: "ana@example.com"})
	svc := NewAuthService(users, newMockTokenRepo(), &mockMailQueue{})

	err := svc.ResetPassword(context.Background(), "ana@example.com", "ZZZZZZ", "newpass99")

	assert.ErrorIs(t, err, ErrInvalidResetCode)
	assert.Empty(t, users.passwords)
}

func TestGenerateResetCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := generateResetCode()

		require.NoError(t, err)
		assert.Len(t, code, resetCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(resetCodeAlphabet, r), "unexpected symbol %q", r)
		}
		seen[code] = true
	}

	assert.Greater(t, len(seen), 1, "codes must not repeat constantly")
}
