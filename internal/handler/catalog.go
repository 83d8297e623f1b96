package handler

import (
	"net/http"

	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/repository"
	"freshpack-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// -------- categories --------

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return h.listCategories(c, false)
}

func (h *CatalogHandler) ListPublicCategories(c echo.Context) error {
	return h.listCategories(c, true)
}

func (h *CatalogHandler) listCategories(c echo.Context, activeOnly bool) error {
	ctx := c.Request().Context()

	categories, err := h.catalogService.ListCategories(ctx, activeOnly)
	if err != nil {
		return respondError(err, "Failed to fetch categories")
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.catalogService.GetCategory(ctx, id)
	if err != nil {
		return respondError(err, "Failed to fetch category")
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.catalogService.CreateCategory(ctx, &req)
	if err != nil {
		return respondError(err, "Failed to create category")
	}

	return c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.catalogService.UpdateCategory(ctx, id, &req)
	if err != nil {
		return respondError(err, "Failed to update category")
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteCategory(ctx, id); err != nil {
		return respondError(err, "Failed to delete category")
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted successfully"})
}

// -------- unit types --------

func (h *CatalogHandler) ListUnitTypes(c echo.Context) error {
	ctx := c.Request().Context()

	unitTypes, err := h.catalogService.ListUnitTypes(ctx)
	if err != nil {
		return respondError(err, "Failed to fetch unit types")
	}

	return c.JSON(http.StatusOK, unitTypes)
}

func (h *CatalogHandler) CreateUnitType(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UnitTypeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	unitType, err := h.catalogService.CreateUnitType(ctx, &req)
	if err != nil {
		return respondError(err, "Failed to create unit type")
	}

	return c.JSON(http.StatusCreated, unitType)
}

func (h *CatalogHandler) UpdateUnitType(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UnitTypeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	unitType, err := h.catalogService.UpdateUnitType(ctx, id, &req)
	if err != nil {
		return respondError(err, "Failed to update unit type")
	}

	return c.JSON(http.StatusOK, unitType)
}

func (h *CatalogHandler) DeleteUnitType(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteUnitType(ctx, id); err != nil {
		return respondError(err, "Failed to delete unit type")
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Unit type deleted successfully"})
}

// -------- products --------

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	return h.listProducts(c, repository.ProductFilter{})
}

func (h *CatalogHandler) ListPublicProducts(c echo.Context) error {
	return h.listProducts(c, repository.ProductFilter{AvailableOnly: true})
}

func (h *CatalogHandler) ListCategoryProducts(c echo.Context) error {
	return h.listCategoryProducts(c, false)
}

func (h *CatalogHandler) ListPublicCategoryProducts(c echo.Context) error {
	return h.listCategoryProducts(c, true)
}

func (h *CatalogHandler) listCategoryProducts(c echo.Context, availableOnly bool) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	return h.listProducts(c, repository.ProductFilter{CategoryID: &id, AvailableOnly: availableOnly})
}

func (h *CatalogHandler) listProducts(c echo.Context, filter repository.ProductFilter) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.ListProducts(ctx, filter)
	if err != nil {
		return respondError(err, "Failed to fetch products")
	}

	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	return h.getProduct(c, false)
}

func (h *CatalogHandler) GetPublicProduct(c echo.Context) error {
	return h.getProduct(c, true)
}

func (h *CatalogHandler) getProduct(c echo.Context, availableOnly bool) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalogService.GetProduct(ctx, id, availableOnly)
	if err != nil {
		return respondError(err, "Failed to fetch product")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogService.CreateProduct(ctx, &req)
	if err != nil {
		return respondError(err, "Failed to create product")
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogService.UpdateProduct(ctx, id, &req)
	if err != nil {
		return respondError(err, "Failed to update product")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteProduct(ctx, id); err != nil {
		return respondError(err, "Failed to delete product")
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Product deleted successfully"})
}
