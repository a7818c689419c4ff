package repository

import (
	"context"
	"fmt"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository/dao"
)

var ErrAdminNotFound = dao.ErrAdminNotFound

type AdminDAO interface {
	Insert(ctx context.Context, user dao.User, admin dao.Admin) (dao.Admin, error)
	FindByID(ctx context.Context, id uint) (dao.Admin, error)
	FindByUserID(ctx context.Context, userID uint) (dao.Admin, error)
	List(ctx context.Context, limit, offset int) ([]dao.Admin, int64, error)
	Update(ctx context.Context, admin dao.Admin) (dao.Admin, error)
	Delete(ctx context.Context, id uint) error
}

type AdminRepository struct {
	dao AdminDAO
}

func NewAdminRepository(dao AdminDAO) *AdminRepository {
	return &AdminRepository{
		dao: dao,
	}
}

func (r *AdminRepository) Create(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	daoUser := dao.User{
		FullName: admin.FullName,
		Email:    admin.Email,
		Password: admin.Password,
		Role:     domain.RoleAdmin,
	}
	daoAdmin := dao.Admin{
		IsRoot: admin.IsRoot,
	}

	created, err := r.dao.Insert(ctx, daoUser, daoAdmin)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return adminDaoToDomain(created), nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id uint) (domain.Admin, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return adminDaoToDomain(found), nil
}

func (r *AdminRepository) FindByUserID(ctx context.Context, userID uint) (domain.Admin, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	return adminDaoToDomain(found), nil
}

func (r *AdminRepository) FindAll(ctx context.Context, query domain.PageQuery) ([]domain.Admin, int64, error) {
	rows, total, err := r.dao.List(ctx, query.PageSize, query.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	admins := make([]domain.Admin, 0, len(rows))
	for _, row := range rows {
		admins = append(admins, adminDaoToDomain(row))
	}

	return admins, total, nil
}

func (r *AdminRepository) Update(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	updated, err := r.dao.Update(ctx, dao.Admin{
		ID:     admin.ID,
		UserID: admin.UserID,
		IsRoot: admin.IsRoot,
		User: dao.User{
			FullName: admin.FullName,
			Email:    admin.Email,
		},
	})
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return adminDaoToDomain(updated), nil
}

func (r *AdminRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func adminDaoToDomain(a dao.Admin) domain.Admin {
	return domain.Admin{
		User:   userDaoToDomain(a.User),
		ID:     a.ID,
		UserID: a.UserID,
		IsRoot: a.IsRoot,
	}
}
