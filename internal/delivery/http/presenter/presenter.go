// Package presenter maps domain entities to the JSON response DTOs. It owns
// the image URL rewrite: stored filenames are qualified with the public static
// base URL on the way out, values that already carry a prefix pass through.
package presenter

import (
	"strings"
	"time"

	"atlas/config"
	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Presenter converts entities to response DTOs.
type Presenter struct {
	baseURL string
}

// New builds a Presenter from the storage config.
func New(cfg *config.Config) *Presenter {
	baseURL := ""
	if cfg.Storage != nil {
		baseURL = cfg.Storage.BaseURL
	}

	return &Presenter{baseURL: baseURL}
}

// ImageURL qualifies a stored filename with the public base URL. Values that
// already start with the base URL and nils pass through unchanged.
func (p *Presenter) ImageURL(stored *string) *string {
	if stored == nil {
		return nil
	}
	qualified := p.imageURLValue(*stored)

	return &qualified
}

func (p *Presenter) imageURLValue(stored string) string {
	if p.baseURL == "" || strings.HasPrefix(stored, p.baseURL) {
		return stored
	}

	return p.baseURL + stored
}

// --- Response DTOs ---

// UserResponse is the public view of a user. The password hash never leaves
// the persistence boundary.
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	AdditionalName *string   `json:"additional_name"`
	PhoneNumber    *string   `json:"phone_number"`
	DateOfBirth    string    `json:"date_of_birth"`
	AvatarImage    *string   `json:"avatar_image"`
	CreatedAt      time.Time `json:"created_at"`
}

// WorldResponse is the public view of a world, embedding its creator.
type WorldResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	CoverImage  *string       `json:"cover_image"`
	MapImage    string        `json:"map_image"`
	CreatorID   *uuid.UUID    `json:"creator_id"`
	Creator     *UserResponse `json:"creator"`
	CreatedAt   time.Time     `json:"created_at"`
}

// LocationResponse is the public view of a location, embedding its creator.
type LocationResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	WorldID     uuid.UUID     `json:"world_id"`
	CreatorID   *uuid.UUID    `json:"creator_id"`
	Creator     *UserResponse `json:"creator"`
	CoordX      float64       `json:"coord_x"`
	CoordY      float64       `json:"coord_y"`
	CreatedAt   time.Time     `json:"created_at"`
}

// LocationImageResponse is the public view of an image attachment.
type LocationImageResponse struct {
	Image       string    `json:"image"`
	LocationID  uuid.UUID `json:"location_id"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
}

// FileResponse is the public view of an uploaded file's metadata.
type FileResponse struct {
	Filename   string     `json:"filename"`
	AuthorID   *uuid.UUID `json:"author_id"`
	UploadedAt time.Time  `json:"uploaded_at"`
}

// --- Mappers ---

// User maps a user entity to its response DTO.
func (p *Presenter) User(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		AdditionalName: user.AdditionalName,
		PhoneNumber:    user.PhoneNumber,
		DateOfBirth:    user.DateOfBirth.Format(dateLayout),
		AvatarImage:    p.ImageURL(user.AvatarImage),
		CreatedAt:      user.CreatedAt,
	}
}

// Users maps a slice of user entities.
func (p *Presenter) Users(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, p.User(user))
	}

	return out
}

// World maps a world entity to its response DTO.
func (p *Presenter) World(world *entity.World) *WorldResponse {
	if world == nil {
		return nil
	}

	return &WorldResponse{
		ID:          world.ID,
		Name:        world.Name,
		Description: world.Description,
		CoverImage:  p.ImageURL(world.CoverImage),
		MapImage:    p.imageURLValue(world.MapImage),
		CreatorID:   world.CreatorID,
		Creator:     p.User(world.Creator),
		CreatedAt:   world.CreatedAt,
	}
}

// Worlds maps a slice of world entities.
func (p *Presenter) Worlds(worlds []*entity.World) []*WorldResponse {
	out := make([]*WorldResponse, 0, len(worlds))
	for _, world := range worlds {
		out = append(out, p.World(world))
	}

	return out
}

// Location maps a location entity to its response DTO.
func (p *Presenter) Location(location *entity.Location) *LocationResponse {
	if location == nil {
		return nil
	}

	return &LocationResponse{
		ID:          location.ID,
		Name:        location.Name,
		Description: location.Description,
		WorldID:     location.WorldID,
		CreatorID:   location.CreatorID,
		Creator:     p.User(location.Creator),
		CoordX:      location.CoordX,
		CoordY:      location.CoordY,
		CreatedAt:   location.CreatedAt,
	}
}

// Locations maps a slice of location entities.
func (p *Presenter) Locations(locations []*entity.Location) []*LocationResponse {
	out := make([]*LocationResponse, 0, len(locations))
	for _, location := range locations {
		out = append(out, p.Location(location))
	}

	return out
}

// LocationImage maps an image attachment to its response DTO.
func (p *Presenter) LocationImage(image *entity.LocationImage) *LocationImageResponse {
	if image == nil {
		return nil
	}

	return &LocationImageResponse{
		Image:       p.imageURLValue(image.Image),
		LocationID:  image.LocationID,
		Name:        image.Name,
		Description: image.Description,
	}
}

// LocationImages maps a slice of image attachments.
func (p *Presenter) LocationImages(images []*entity.LocationImage) []*LocationImageResponse {
	out := make([]*LocationImageResponse, 0, len(images))
	for _, image := range images {
		out = append(out, p.LocationImage(image))
	}

	return out
}

// File maps a file metadata entity to its response DTO.
func (p *Presenter) File(file *entity.File) *FileResponse {
	if file == nil {
		return nil
	}

	return &FileResponse{
		Filename:   p.imageURLValue(file.Filename),
		AuthorID:   file.AuthorID,
		UploadedAt: file.UploadedAt,
	}
}

// Files maps a slice of file metadata entities.
func (p *Presenter) Files(files []*entity.File) []*FileResponse {
	out := make([]*FileResponse, 0, len(files))
	for _, file := range files {
		out = append(out, p.File(file))
	}

	return out
}
