package presenter

import (
	"testing"
	"time"

	"atlas/config"
	"atlas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPresenter(baseURL string) *Presenter {
	return New(&config.Config{
		Storage: &config.StorageConfig{BaseURL: baseURL},
	})
}

func TestPresenter_ImageURL(t *testing.T) {
	p := newTestPresenter("http://localhost:8000/static/")

	stored := "abc123.png"
	qualified := p.ImageURL(&stored)
	require.NotNil(t, qualified)
	assert.Equal(t, "http://localhost:8000/static/abc123.png", *qualified)

	// Already-qualified values pass through unchanged.
	full := "http://localhost:8000/static/abc123.png"
	passthrough := p.ImageURL(&full)
	require.NotNil(t, passthrough)
	assert.Equal(t, full, *passthrough)

	assert.Nil(t, p.ImageURL(nil))
}

func TestPresenter_ImageURL_NoBaseURL(t *testing.T) {
	p := newTestPresenter("")

	stored := "abc123.png"
	qualified := p.ImageURL(&stored)
	require.NotNil(t, qualified)
	assert.Equal(t, "abc123.png", *qualified)
}

func TestPresenter_User(t *testing.T) {
	p := newTestPresenter("http://localhost:8000/static/")

	avatar := "avatar.png"
	user := &entity.User{
		ID:          uuid.New(),
		Username:    "tester",
		Email:       "test@example.com",
		Password:    "hashed_password",
		FirstName:   "Test",
		LastName:    "User",
		DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		AvatarImage: &avatar,
	}

	resp := p.User(user)
	require.NotNil(t, resp)
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "1990-06-15", resp.DateOfBirth)
	require.NotNil(t, resp.AvatarImage)
	assert.Equal(t, "http://localhost:8000/static/avatar.png", *resp.AvatarImage)

	assert.Nil(t, p.User(nil))
}

func TestPresenter_World(t *testing.T) {
	p := newTestPresenter("http://localhost:8000/static/")

	creator := &entity.User{ID: uuid.New(), Username: "tester"}
	cover := "cover.png"
	world := &entity.World{
		ID:         uuid.New(),
		Name:       "Middle Earth",
		CoverImage: &cover,
		MapImage:   "map.png",
		CreatorID:  &creator.ID,
		Creator:    creator,
	}

	resp := p.World(world)
	require.NotNil(t, resp)
	assert.Equal(t, "http://localhost:8000/static/map.png", resp.MapImage)
	require.NotNil(t, resp.CoverImage)
	assert.Equal(t, "http://localhost:8000/static/cover.png", *resp.CoverImage)
	require.NotNil(t, resp.Creator)
	assert.Equal(t, creator.Username, resp.Creator.Username)
}

func TestPresenter_World_Orphaned(t *testing.T) {
	p := newTestPresenter("")

	world := &entity.World{
		ID:       uuid.New(),
		Name:     "Forgotten Realm",
		MapImage: "map.png",
	}

	resp := p.World(world)
	require.NotNil(t, resp)
	assert.Nil(t, resp.CreatorID)
	assert.Nil(t, resp.Creator)
}

func TestPresenter_LocationImage(t *testing.T) {
	p := newTestPresenter("http://localhost:8000/static/")

	name := "The Tower"
	image := &entity.LocationImage{
		Image:      "tower.png",
		LocationID: uuid.New(),
		Name:       &name,
	}

	resp := p.LocationImage(image)
	require.NotNil(t, resp)
	assert.Equal(t, "http://localhost:8000/static/tower.png", resp.Image)
	assert.Equal(t, image.LocationID, resp.LocationID)
}

func TestPresenter_File(t *testing.T) {
	p := newTestPresenter("http://localhost:8000/static/")

	authorID := uuid.New()
	file := &entity.File{
		Filename:   "abc123.png",
		AuthorID:   &authorID,
		UploadedAt: time.Now(),
	}

	resp := p.File(file)
	require.NotNil(t, resp)
	assert.Equal(t, "http://localhost:8000/static/abc123.png", resp.Filename)
	require.NotNil(t, resp.AuthorID)
	assert.Equal(t, authorID, *resp.AuthorID)
}

func TestPresenter_EmptySlices(t *testing.T) {
	p := newTestPresenter("")

	assert.Empty(t, p.Users(nil))
	assert.Empty(t, p.Worlds(nil))
	assert.Empty(t, p.Locations(nil))
	assert.Empty(t, p.LocationImages(nil))
	assert.Empty(t, p.Files(nil))

	// Mapped slices are never nil so they encode as [] instead of null.
	assert.NotNil(t, p.Users(nil))
	assert.NotNil(t, p.Worlds(nil))
}
