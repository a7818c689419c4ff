package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/mail"
	"github.com/doarbem/donation-api/internal/repository"
)

const (
	resetCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	resetCodeLength   = 6
	resetTokenTTL     = 15 * time.Minute
)

var (
	ErrUserNotFound     = repository.ErrUserNotFound
	ErrWrongPassword    = errors.New("wrong password")
	ErrInvalidResetCode = errors.New("invalid reset code")
	ErrResetCodeExpired = errors.New("reset code expired")
)

type AuthUserRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	UpdatePassword(ctx context.Context, id uint, hashed string) error
}

type AuthResetTokenRepository interface {
	Create(ctx context.Context, token domain.PasswordResetToken) (domain.PasswordResetToken, error)
	FindByToken(ctx context.Context, token string) (domain.PasswordResetToken, error)
	DeleteByUserID(ctx context.Context, userID uint) error
}

type AuthService struct {
	users  AuthUserRepository
	tokens AuthResetTokenRepository
	queue  mail.Queue
}

func NewAuthService(users AuthUserRepository, tokens AuthResetTokenRepository, queue mail.Queue) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		queue:  queue,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.users.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}

// SendPasswordResetToken issues a short reset code to the user's email. The
// code itself travels only through the mail queue.
func (s *AuthService) SendPasswordResetToken(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}

		return fmt.Errorf("s.users.FindByEmail -> %w", err)
	}

	code, err := generateResetCode()
	if err != nil {
		return fmt.Errorf("generateResetCode -> %w", err)
	}

	_, err = s.tokens.Create(ctx, domain.PasswordResetToken{
		UserID:    user.ID,
		Token:     code,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	})
	if err != nil {
		return fmt.Errorf("s.tokens.Create -> %w", err)
	}

	msg := mail.NewMessage(
		user.Email,
		"Seu código de recuperação de senha",
		fmt.Sprintf("Olá %s,\n\nUse o código %s para redefinir sua senha. Ele expira em 15 minutos.\n", user.FullName, code),
	)
	if err := s.queue.Enqueue(ctx, msg); err != nil {
		return fmt.Errorf("s.queue.Enqueue -> %w", err)
	}

	return nil
}

// VerifyCode validates a reset code for the given user. The checks run in
// order: code exists, code belongs to the user, code not expired.
func (s *AuthService) VerifyCode(ctx context.Context, email, code string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidResetCode
		}

		return fmt.Errorf("s.users.FindByEmail -> %w", err)
	}

	token, err := s.tokens.FindByToken(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return ErrInvalidResetCode
		}

		return fmt.Errorf("s.tokens.FindByToken -> %w", err)
	}

	if token.UserID != user.ID {
		return ErrInvalidResetCode
	}

	if token.IsExpired(time.Now()) {
		return ErrResetCodeExpired
	}

	return nil
}

// ResetPassword verifies the code, stores the new password hash and discards
// every outstanding token for the user.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := s.VerifyCode(ctx, email, code); err != nil {
		return err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("s.users.FindByEmail -> %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("s.users.UpdatePassword -> %w", err)
	}

	if err := s.tokens.DeleteByUserID(ctx, user.ID); err != nil {
		return fmt.Errorf("s.tokens.DeleteByUserID -> %w", err)
	}

	return nil
}

// generateResetCode draws resetCodeLength symbols from resetCodeAlphabet
// using crypto/rand. The modulo mapping is slightly biased but fine for a
// 36-symbol alphabet.
func generateResetCode() (string, error) {
	buf := make([]byte, resetCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	code := make([]byte, resetCodeLength)
	for i, b := range buf {
		code[i] = resetCodeAlphabet[int(b)%len(resetCodeAlphabet)]
	}

	return string(code), nil
}
