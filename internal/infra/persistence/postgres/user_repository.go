package postgres

import (
	"context"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain's UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository. It returns the
// repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByLogin retrieves a single user whose username or email matches login.
// Login with either identifier shares this single lookup.
func (repo *userRepository) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("username = ? OR email = ?", login, login).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by login")
	}

	return toUserDomain(&userM), nil
}

// List returns users matching the search/pagination parameters.
func (repo *userRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.User, error) {
	tx := repo.db.WithContext(ctx).Model(&model.UserModel{})
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		tx = tx.Where("username ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern, pattern)
	}

	var userMs []*model.UserModel
	if err := applyPagination(tx, params).Order("created_at").Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user entity. A conflicting username or email surfaces
// as the domain conflict error.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithMessagef("user with this username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WithMessagef("missing required user information")
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt

	return nil
}

// Update saves the full user row.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithMessagef("user with this username or email already exists")
		}

		return errors.Wrap(err, "failed to update user")
	}

	return nil
}

// Delete removes a user row. Worlds and locations created by the user are
// detached by the SET NULL FK actions, favourites are removed by cascade.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:             data.ID,
		Username:       data.Username,
		Email:          data.Email,
		Password:       data.Password,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		AdditionalName: data.AdditionalName,
		PhoneNumber:    data.PhoneNumber,
		DateOfBirth:    data.DateOfBirth,
		AvatarImage:    data.AvatarImage,
		CreatedAt:      data.CreatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:             data.ID,
		Username:       data.Username,
		Email:          data.Email,
		Password:       data.Password,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		AdditionalName: data.AdditionalName,
		PhoneNumber:    data.PhoneNumber,
		DateOfBirth:    data.DateOfBirth,
		AvatarImage:    data.AvatarImage,
		CreatedAt:      data.CreatedAt,
	}
}
