package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "weddinghub/internal/errors"
	"weddinghub/internal/models"
	"weddinghub/internal/services"
)

// CategoryHandler handles budget category requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
	bookingService  services.BookingServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer, bookingService services.BookingServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, bookingService: bookingService}
}

// CreateCategoryRequest represents the request payload for creating a category.
type CreateCategoryRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=100"`
	Icon          string `json:"icon" binding:"max=10"`
	PlannedAmount int64  `json:"planned_amount" binding:"gte=0"`
}

// UpdateCategoryRequest represents the request payload for updating a category.
// ActualAmount is absent on purpose; only the booking ledger and the admin
// override move it.
type UpdateCategoryRequest struct {
	Name          string `json:"name" binding:"omitempty,min=1,max=100"`
	Icon          string `json:"icon" binding:"omitempty,max=10"`
	PlannedAmount *int64 `json:"planned_amount" binding:"omitempty,gte=0"`
}

// OverrideActualRequest is the admin payload for correcting a running total.
type OverrideActualRequest struct {
	ActualAmount int64 `json:"actual_amount" binding:"gte=0"`
}

// CategoryResponse is a category with its derived spend percentage.
type CategoryResponse struct {
	models.BudgetCategory
	SpentPercentage int `json:"spent_percentage"`
}

// CreateCategory handles adding a budget category to a wedding.
// @Summary     Create a budget category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id      path int                   true "Wedding ID"
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} models.BudgetCategory "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Wedding not found"
// @Router      /weddings/{id}/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	weddingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(weddingID, req.Name, req.Icon, req.PlannedAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// GetWeddingCategories lists the categories of a wedding, each with the
// percentage of its plan already spent.
// @Summary     List budget categories
// @Tags        categories
// @Produce     json
// @Param       id path int true "Wedding ID"
// @Success     200 {array} CategoryResponse "Categories"
// @Router      /weddings/{id}/categories [get]
func (h *CategoryHandler) GetWeddingCategories(c *gin.Context) {
	weddingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.GetWeddingCategories(weddingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		items = append(items, CategoryResponse{
			BudgetCategory:  cat,
			SpentPercentage: services.CategorySpendPercentage(&cat),
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": items})
}

// UpdateCategory handles renaming a category or changing its plan.
// @Summary     Update a budget category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id      path int                   true "Category ID"
// @Param       request body UpdateCategoryRequest true "Updated category details"
// @Success     200 {object} models.BudgetCategory "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.UpdateCategory(categoryID, req.Name, req.Icon, req.PlannedAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory handles deleting an empty category.
// @Summary     Delete a budget category
// @Description Delete a category that has no live bookings
// @Tags        categories
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Category has live bookings"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(categoryID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// OverrideActual handles the admin-only correction of a category's running
// total.
// @Summary     Override a category's actual amount
// @Description Administrative correction of the derived running total
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                   true "Category ID"
// @Param       request body OverrideActualRequest true "Corrected actual amount"
// @Success     200 {object} models.BudgetCategory "Updated category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /admin/categories/{id}/actual [put]
func (h *CategoryHandler) OverrideActual(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req OverrideActualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.OverrideActualAmount(categoryID, req.ActualAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// VerifyLedger recomputes every category total of a wedding from its live
// bookings and reports whether the stored totals match.
// @Summary     Verify ledger consistency
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Wedding ID"
// @Success     200 {object} MessageResponse "Ledger consistent"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Stored totals diverge from bookings"
// @Router      /admin/weddings/{id}/verify [post]
func (h *CategoryHandler) VerifyLedger(c *gin.Context) {
	weddingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.bookingService.VerifyCategoryTotals(weddingID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ledger totals are consistent"})
}
