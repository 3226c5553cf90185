package handlers

import (
	"net/http"

	"cashflow/internal/dto"
	"cashflow/internal/errors"
	"cashflow/internal/models"
	"cashflow/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles the user's category CRUD endpoints
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Create adds a category
// @Summary Create category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} SuccessResponse{data=dto.CategoryResponse}
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_003"
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(c.Request().Context(), userID, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toCategoryResponse(category),
		Message: "Category created successfully",
	})
}

// List returns the user's categories, optionally filtered by ?type=income|expense
// @Summary List categories
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param type query string false "income or expense"
// @Success 200 {object} SuccessResponse{data=[]dto.CategoryResponse}
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryType := c.QueryParam("type")
	if categoryType != "" && !models.CategoryType(categoryType).IsValid() {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("type must be one of: income, expense"))
	}

	categories, err := h.categoryService.List(userID, categoryType)
	if err != nil {
		return handleServiceError(c, err)
	}

	response := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		response = append(response, toCategoryResponse(&categories[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: response,
		Meta: map[string]interface{}{"total": len(response)},
	})
}

// Get returns one category
// @Summary Get category
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} SuccessResponse{data=dto.CategoryResponse}
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001"
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	category, err := h.categoryService.Get(userID, categoryID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: toCategoryResponse(category)})
}

// Update renames or retypes a category
// @Summary Update category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} SuccessResponse{data=dto.CategoryResponse}
// @Router /categories/{id} [patch]
func (h *CategoryHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Update(c.Request().Context(), userID, categoryID, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toCategoryResponse(category),
		Message: "Category updated successfully",
	})
}

// Delete removes a category; its transactions become uncategorized
// @Summary Delete category
// @Tags Categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	if err := h.categoryService.Delete(c.Request().Context(), userID, categoryID); err != nil {
		return handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
