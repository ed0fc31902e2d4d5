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

// locationRepository implements the domain's LocationRepository interface using GORM.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// FindByID retrieves a single location by ID with its creator preloaded.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Preload("Creator").
		Where("id = ?", id).
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

// List returns locations matching the search/pagination parameters.
func (repo *locationRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Location, error) {
	tx := repo.db.WithContext(ctx).Model(&model.LocationModel{}).Preload("Creator")
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var locationMs []*model.LocationModel
	if err := applyPagination(tx, params).Order("created_at").Find(&locationMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	locations := make([]*entity.Location, 0, len(locationMs))
	for _, locationM := range locationMs {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// Create persists a new location entity. The caller verifies the world exists
// beforehand; a racing world delete still surfaces as a validation error here.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}

	locationM := fromLocationDomain(location)
	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WithMessagef("location references an unknown world or user")
		}

		return errors.Wrap(err, "failed to create location")
	}

	location.CreatedAt = locationM.CreatedAt

	return nil
}

// Update saves the full location row.
func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)
	if err := repo.db.WithContext(ctx).Save(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WithMessagef("location references an unknown world or user")
		}

		return errors.Wrap(err, "failed to update location")
	}

	return nil
}

// Delete removes a location row; its image attachments go with it by cascade.
func (repo *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.LocationModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// ListImages returns the image attachments of a location.
func (repo *locationRepository) ListImages(ctx context.Context, locationID uuid.UUID) ([]*entity.LocationImage, error) {
	var imageMs []*model.LocationImageModel
	err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("image").
		Find(&imageMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list location images")
	}

	images := make([]*entity.LocationImage, 0, len(imageMs))
	for _, imageM := range imageMs {
		images = append(images, toLocationImageDomain(imageM))
	}

	return images, nil
}

// AttachImage links an uploaded file to a location. The composite primary key
// plus ON CONFLICT DO NOTHING makes a duplicate attach a silent no-op.
func (repo *locationRepository) AttachImage(ctx context.Context, image *entity.LocationImage) error {
	imageM := fromLocationImageDomain(image)
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(imageM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WithMessagef("image references an unknown file or location")
		}

		return errors.Wrap(err, "failed to attach location image")
	}

	return nil
}

// DetachImage removes the link between a file and a location.
func (repo *locationRepository) DetachImage(ctx context.Context, locationID uuid.UUID, image string) error {
	err := repo.db.WithContext(ctx).
		Where("location_id = ? AND image = ?", locationID, image).
		Delete(&model.LocationImageModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to detach location image")
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		WorldID:     data.WorldID,
		CreatorID:   data.CreatorID,
		Creator:     toUserDomain(data.Creator),
		CoordX:      data.CoordX,
		CoordY:      data.CoordY,
		CreatedAt:   data.CreatedAt,
	}
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		WorldID:     data.WorldID,
		CreatorID:   data.CreatorID,
		CoordX:      data.CoordX,
		CoordY:      data.CoordY,
		CreatedAt:   data.CreatedAt,
	}
}

// toLocationImageDomain converts a GORM LocationImageModel to a domain entity.
func toLocationImageDomain(data *model.LocationImageModel) *entity.LocationImage {
	if data == nil {
		return nil
	}

	return &entity.LocationImage{
		Image:       data.Image,
		LocationID:  data.LocationID,
		Name:        data.Name,
		Description: data.Description,
	}
}

// fromLocationImageDomain converts a domain LocationImage to its GORM model.
func fromLocationImageDomain(data *entity.LocationImage) *model.LocationImageModel {
	if data == nil {
		return nil
	}

	return &model.LocationImageModel{
		Image:       data.Image,
		LocationID:  data.LocationID,
		Name:        data.Name,
		Description: data.Description,
	}
}
