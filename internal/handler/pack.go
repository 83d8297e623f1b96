package handler

import (
	"net/http"

	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/repository"
	"freshpack-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type PackHandler struct {
	packService service.PackService
}

func NewPackHandler(packService service.PackService) *PackHandler {
	return &PackHandler{
		packService: packService,
	}
}

func (h *PackHandler) ListPackTypes(c echo.Context) error {
	ctx := c.Request().Context()

	packTypes, err := h.packService.ListPackTypes(ctx)
	if err != nil {
		return respondError(err, "Failed to fetch pack types")
	}

	return c.JSON(http.StatusOK, packTypes)
}

func (h *PackHandler) CreatePackType(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PackTypeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	packType, err := h.packService.CreatePackType(ctx, &req)
	if err != nil {
		return respondError(err, "Failed to create pack type")
	}

	return c.JSON(http.StatusCreated, packType)
}

func (h *PackHandler) UpdatePackType(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.PackTypeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	packType, err := h.packService.UpdatePackType(ctx, id, &req)
	if err != nil {
		return respondError(err, "Failed to update pack type")
	}

	return c.JSON(http.StatusOK, packType)
}

func (h *PackHandler) ListPacks(c echo.Context) error {
	ctx := c.Request().Context()

	packs, err := h.packService.ListPacks(ctx, repository.PackFilter{})
	if err != nil {
		return respondError(err, "Failed to fetch packs")
	}

	return c.JSON(http.StatusOK, packs)
}

func (h *PackHandler) ListPublicPacks(c echo.Context) error {
	ctx := c.Request().Context()

	packs, err := h.packService.ListPurchasable(ctx, nil)
	if err != nil {
		return respondError(err, "Failed to fetch packs")
	}

	return c.JSON(http.StatusOK, packs)
}

func (h *PackHandler) ListPublicCategoryPacks(c echo.Context) error {
	ctx := c.Request().Context()

	categoryID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	packs, err := h.packService.ListPurchasable(ctx, &categoryID)
	if err != nil {
		return respondError(err, "Failed to fetch packs")
	}

	return c.JSON(http.StatusOK, packs)
}

func (h *PackHandler) GetPack(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	pack, err := h.packService.GetPack(ctx, id)
	if err != nil {
		return respondError(err, "Failed to fetch pack")
	}

	return c.JSON(http.StatusOK, pack)
}

func (h *PackHandler) CreatePack(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pack, err := h.packService.CreatePack(ctx, &req)
	if err != nil {
		return respondError(err, "Failed to create pack")
	}

	return c.JSON(http.StatusCreated, pack)
}

func (h *PackHandler) UpdatePack(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.PackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pack, err := h.packService.UpdatePack(ctx, id, &req)
	if err != nil {
		return respondError(err, "Failed to update pack")
	}

	return c.JSON(http.StatusOK, pack)
}

func (h *PackHandler) DeletePack(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.packService.DeletePack(ctx, id); err != nil {
		return respondError(err, "Failed to delete pack")
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Pack deleted successfully"})
}

func (h *PackHandler) GetPackProducts(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.packService.GetPackProducts(ctx, id)
	if err != nil {
		return respondError(err, "Failed to fetch pack products")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *PackHandler) ReplacePackProducts(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.BulkPackProductsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	items, err := h.packService.ReplacePackProducts(ctx, &req)
	if err != nil {
		return respondError(err, "Failed to update pack products")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *PackHandler) ClearPackProducts(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	deleted, err := h.packService.ClearPackProducts(ctx, id)
	if err != nil {
		return respondError(err, "Failed to delete pack products")
	}

	return c.JSON(http.StatusOK, dto.DeletePackProductsResponse{
		Message:      "Pack products deleted successfully",
		DeletedCount: deleted,
	})
}
