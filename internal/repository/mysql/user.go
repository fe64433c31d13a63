package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adiwarman/forum-api/domain"
	"github.com/adiwarman/forum-api/internal/repository/mysql/model"
)

type userRepository struct {
	DB         *gorm.DB
	generateID IDGenerator
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB, generateID IDGenerator) *userRepository {
	return &userRepository{
		DB:         db,
		generateID: generateID,
	}
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)
	userModel.ID = "user-" + m.generateID()

	if err := m.DB.WithContext(ctx).Create(userModel).Error; err != nil {
		return err
	}

	u.ID = userModel.ID
	u.Date = userModel.Date
	return nil
}

func (m *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var user model.User
	err := m.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (m *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user model.User
	err := m.DB.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (m *userRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return nil
}
