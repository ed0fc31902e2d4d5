package handler

import (
	"net/http"

	"atlas/internal/delivery/http/presenter"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FileHandler holds dependencies for uploaded-file handlers.
type FileHandler struct {
	uc        usecase.FileUsecase
	presenter *presenter.Presenter
}

// NewFileHandler is the constructor for FileHandler, injected by Fx.
func NewFileHandler(uc usecase.FileUsecase, p *presenter.Presenter) *FileHandler {
	return &FileHandler{uc: uc, presenter: p}
}

// List handles the public file metadata listing with optional pagination.
func (h *FileHandler) List(c echo.Context) error {
	params, err := bindListParams(c)
	if err != nil {
		return err
	}

	files, err := h.uc.List(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.Files(files))
}

// Upload handles a multipart image upload in the "file" field.
func (h *FileHandler) Upload(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrValidation.WithMessagef("file field is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	file, err := h.uc.Upload(c.Request().Context(), user, usecase.UploadFileInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Content:     src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, h.presenter.File(file))
}
