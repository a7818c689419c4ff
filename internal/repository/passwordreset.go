package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository/dao"
)

var ErrResetTokenNotFound = dao.ErrResetTokenNotFound

type PasswordResetTokenDAO interface {
	Insert(ctx context.Context, token dao.PasswordResetToken) (dao.PasswordResetToken, error)
	FindByToken(ctx context.Context, token string) (dao.PasswordResetToken, error)
	DeleteByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type PasswordResetTokenRepository struct {
	dao PasswordResetTokenDAO
}

func NewPasswordResetTokenRepository(dao PasswordResetTokenDAO) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{
		dao: dao,
	}
}

func (r *PasswordResetTokenRepository) Create(ctx context.Context, token domain.PasswordResetToken) (domain.PasswordResetToken, error) {
	created, err := r.dao.Insert(ctx, dao.PasswordResetToken{
		UserID:    token.UserID,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	})
	if err != nil {
		return domain.PasswordResetToken{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return resetTokenDaoToDomain(created), nil
}

func (r *PasswordResetTokenRepository) FindByToken(ctx context.Context, token string) (domain.PasswordResetToken, error) {
	found, err := r.dao.FindByToken(ctx, token)
	if err != nil {
		return domain.PasswordResetToken{}, fmt.Errorf("r.dao.FindByToken -> %w", err)
	}

	return resetTokenDaoToDomain(found), nil
}

func (r *PasswordResetTokenRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if err := r.dao.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("r.dao.DeleteByUserID -> %w", err)
	}

	return nil
}

func (r *PasswordResetTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.dao.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("r.dao.DeleteExpired -> %w", err)
	}

	return n, nil
}

func resetTokenDaoToDomain(t dao.PasswordResetToken) domain.PasswordResetToken {
	return domain.PasswordResetToken{
		ID:        t.ID,
		UserID:    t.UserID,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}
