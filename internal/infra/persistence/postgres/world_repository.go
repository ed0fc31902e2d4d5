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
	"gorm.io/gorm/clause"
)

// worldRepository implements the domain's WorldRepository interface using GORM.
type worldRepository struct {
	db *gorm.DB
}

// NewWorldRepository is the constructor for worldRepository.
func NewWorldRepository(db *gorm.DB) repository.WorldRepository {
	return &worldRepository{db: db}
}

// FindByID retrieves a single world by ID with its creator preloaded.
func (repo *worldRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.World, error) {
	var worldM model.WorldModel
	err := repo.db.WithContext(ctx).
		Preload("Creator").
		Where("id = ?", id).
		First(&worldM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorldNotFound
		}

		return nil, errors.Wrap(err, "failed to find world by id")
	}

	return toWorldDomain(&worldM), nil
}

// List returns worlds matching the search/pagination parameters.
func (repo *worldRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.World, error) {
	tx := repo.db.WithContext(ctx).Model(&model.WorldModel{}).Preload("Creator")
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var worldMs []*model.WorldModel
	if err := applyPagination(tx, params).Order("created_at").Find(&worldMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list worlds")
	}

	worlds := make([]*entity.World, 0, len(worldMs))
	for _, worldM := range worldMs {
		worlds = append(worlds, toWorldDomain(worldM))
	}

	return worlds, nil
}

// Create persists a new world entity.
func (repo *worldRepository) Create(ctx context.Context, world *entity.World) error {
	if world.ID == uuid.Nil {
		world.ID = uuid.New()
	}

	worldM := fromWorldDomain(world)
	if err := repo.db.WithContext(ctx).Create(worldM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WithMessagef("world references an unknown user")
		}

		return errors.Wrap(err, "failed to create world")
	}

	world.CreatedAt = worldM.CreatedAt

	return nil
}

// Update saves the full world row. Reassigning creator_id to a user that does
// not exist violates the FK and surfaces as a validation error.
func (repo *worldRepository) Update(ctx context.Context, world *entity.World) error {
	worldM := fromWorldDomain(world)
	if err := repo.db.WithContext(ctx).Save(worldM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WithMessagef("world references an unknown user")
		}

		return errors.Wrap(err, "failed to update world")
	}

	return nil
}

// Delete removes a world row; locations and favourites go with it by cascade.
func (repo *worldRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.WorldModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete world")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorldNotFound
	}

	return nil
}

// AddFavourite records a favourite mark. The composite primary key plus
// ON CONFLICT DO NOTHING makes repeated calls idempotent.
func (repo *worldRepository) AddFavourite(ctx context.Context, worldID, userID uuid.UUID) error {
	favM := &model.FavouriteWorldModel{WorldID: worldID, UserID: userID}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WithMessagef("favourite references an unknown world or user")
		}

		return errors.Wrap(err, "failed to add favourite")
	}

	return nil
}

// RemoveFavourite deletes a favourite mark; removing an absent one is a no-op.
func (repo *worldRepository) RemoveFavourite(ctx context.Context, worldID, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("world_id = ? AND user_id = ?", worldID, userID).
		Delete(&model.FavouriteWorldModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to remove favourite")
	}

	return nil
}

// --- Mapper Functions ---

// toWorldDomain converts a GORM WorldModel to a domain World entity.
func toWorldDomain(data *model.WorldModel) *entity.World {
	if data == nil {
		return nil
	}

	return &entity.World{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CoverImage:  data.CoverImage,
		MapImage:    data.MapImage,
		CreatorID:   data.CreatorID,
		Creator:     toUserDomain(data.Creator),
		CreatedAt:   data.CreatedAt,
	}
}

// fromWorldDomain converts a domain World entity to a GORM WorldModel.
// The Creator association is deliberately not written back; only creator_id is.
func fromWorldDomain(data *entity.World) *model.WorldModel {
	if data == nil {
		return nil
	}

	return &model.WorldModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CoverImage:  data.CoverImage,
		MapImage:    data.MapImage,
		CreatorID:   data.CreatorID,
		CreatedAt:   data.CreatedAt,
	}
}
