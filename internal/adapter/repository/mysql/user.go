package mysql

import (
	"context"

	userDomain "claims-backoffice/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return duplicate(r.db.WithContext(ctx).Create(u).Error, "email "+u.Email+" already registered")
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*userDomain.User, error) {
	var out userDomain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, notFound(err, "user "+id)
	}
	return &out, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&out).Error; err != nil {
		return nil, notFound(err, "user "+email)
	}
	return &out, nil
}

func (r *UserRepository) List(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *UserRepository) SearchByEmail(ctx context.Context, fragment string, limit int) ([]userDomain.User, error) {
	var out []userDomain.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) LIKE ? "+likeEscape, likePattern(fragment)).
		Order("email ASC").
		Limit(clampLimit(limit)).
		Find(&out).Error
	return out, err
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return duplicate(r.db.WithContext(ctx).Save(u).Error, "email "+u.Email+" already registered")
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userDomain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "user "+id)
	}
	return nil
}
