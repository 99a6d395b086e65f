package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"stockroom/internal/api/dto"
	"stockroom/internal/api/services"
	"stockroom/internal/repository"
	"stockroom/internal/storage"
)

type InventoryHandler struct {
	service *services.InventoryService
}

func NewInventoryHandler(repo *repository.InventoryRepository, photos *storage.PhotoStore) *InventoryHandler {
	return &InventoryHandler{
		service: services.NewInventoryService(repo, photos),
	}
}

// Register godoc
// @Summary Register an inventory item
// @Description Register a new item with a name, optional description and optional photo
// @Tags inventory
// @Accept mpfd
// @Produce json
// @Param inventory_name formData string true "Item name"
// @Param description formData string false "Item description"
// @Param photo formData file false "Item photo"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} map[string]string
// @Router /register [post]
func (h *InventoryHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, "inventory_name is required")
	}

	var photo []byte
	if file, err := c.FormFile("photo"); err == nil {
		data, err := readUpload(file)
		if err != nil {
			return ErrBadRequest(c, "unreadable photo upload")
		}
		photo = data
	}

	item, err := h.service.Register(c.Request().Context(), req.Name, req.Description, photo)
	if err != nil {
		return h.mapError(c, err)
	}

	view := dto.ItemFromDomain(item, baseURL(c))
	return c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message:     "item registered",
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		PhotoURL:    view.PhotoURL,
	})
}

// List godoc
// @Summary List inventory items
// @Description List every registered item in insertion order
// @Tags inventory
// @Produce json
// @Success 200 {array} dto.Item
// @Router /inventory [get]
func (h *InventoryHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ItemsFromDomain(items, baseURL(c)))
}

// Get godoc
// @Summary Get one inventory item
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.Item
// @Failure 404 {object} map[string]string
// @Router /inventory/{id} [get]
func (h *InventoryHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ItemFromDomain(item, baseURL(c)))
}

// Update godoc
// @Summary Update item fields
// @Description Replace name and/or description; omitted fields keep their value
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} dto.UpdateItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inventory/{id} [put]
func (h *InventoryHandler) Update(c echo.Context) error {
	var req dto.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	item, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Name, req.Description)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UpdateItemResponse{
		Message:     "item updated",
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
	})
}

// GetPhoto godoc
// @Summary Get an item's photo
// @Tags inventory
// @Produce jpeg
// @Param id path string true "Item ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /inventory/{id}/photo [get]
func (h *InventoryHandler) GetPhoto(c echo.Context) error {
	data, err := h.service.GetPhoto(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	// Declared jpeg regardless of the uploaded encoding.
	return c.Blob(http.StatusOK, "image/jpeg", data)
}

// ReplacePhoto godoc
// @Summary Replace an item's photo
// @Description Store a new photo and repoint the item at it
// @Tags inventory
// @Accept mpfd
// @Produce json
// @Param id path string true "Item ID"
// @Param photo formData file true "New photo"
// @Success 200 {object} dto.ReplacePhotoResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inventory/{id}/photo [put]
func (h *InventoryHandler) ReplacePhoto(c echo.Context) error {
	file, err := c.FormFile("photo")
	if err != nil {
		return ErrBadRequest(c, "photo file is required")
	}
	data, err := readUpload(file)
	if err != nil {
		return ErrBadRequest(c, "unreadable photo upload")
	}

	item, err := h.service.ReplacePhoto(c.Request().Context(), c.Param("id"), data)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ReplacePhotoResponse{
		Message:  "photo replaced",
		PhotoURL: services.PhotoURL(baseURL(c), item.ID),
	})
}

// Delete godoc
// @Summary Delete an inventory item
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} map[string]string
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, dto.DeleteResponse{
		Message: "item deleted",
		ID:      id,
	})
}

// Search godoc
// @Summary Search for an item by id
// @Description Look an item up by id; with has_photo set, a photo link is appended to the returned description
// @Tags inventory
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id formData string true "Item ID"
// @Param has_photo formData string false "Append photo link to description"
// @Success 200 {object} dto.SearchResponse
// @Failure 404 {object} map[string]string
// @Router /search [post]
func (h *InventoryHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, "id is required")
	}

	item, err := h.service.Search(c.Request().Context(), req.ID, truthy(req.HasPhoto), baseURL(c))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, dto.SearchResponseFromDomain(item))
}

func (h *InventoryHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrItemNotFound), errors.Is(err, storage.ErrPhotoNotFound):
		return ErrNotFound(c, "item not found")
	case errors.Is(err, services.ErrInvalidInput):
		return ErrBadRequest(c, err.Error())
	case errors.Is(err, repository.ErrStorageUnavailable):
		return ErrStorageUnavailable(c)
	default:
		return ErrInternalServerError(c)
	}
}

// baseURL rebuilds the request origin so photo links always point back at
// whatever host the client reached us through.
func baseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}

// truthy covers both JSON-style booleans and HTML checkbox values.
func truthy(v string) bool {
	switch v {
	case "1", "true", "True", "on", "yes":
		return true
	default:
		return false
	}
}
