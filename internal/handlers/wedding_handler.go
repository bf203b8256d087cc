package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "weddinghub/internal/errors"
	"weddinghub/internal/services"
)

// WeddingHandler handles wedding-related requests.
type WeddingHandler struct {
	weddingService services.WeddingServicer
}

// NewWeddingHandler creates a new WeddingHandler.
func NewWeddingHandler(weddingService services.WeddingServicer) *WeddingHandler {
	return &WeddingHandler{weddingService: weddingService}
}

// CreateWeddingRequest represents the request payload for creating a wedding.
type CreateWeddingRequest struct {
	Partner1Name string `json:"partner1_name" binding:"required,min=1,max=100"`
	Partner2Name string `json:"partner2_name" binding:"required,min=1,max=100"`
	WeddingDate  string `json:"wedding_date" binding:"required"`
	GuestCount   int    `json:"guest_count" binding:"omitempty,gt=0"`
	TotalBudget  int64  `json:"total_budget" binding:"omitempty,gte=0"`
}

// UpdateWeddingRequest represents the request payload for updating a wedding.
type UpdateWeddingRequest struct {
	Partner1Name string `json:"partner1_name" binding:"omitempty,min=1,max=100"`
	Partner2Name string `json:"partner2_name" binding:"omitempty,min=1,max=100"`
	WeddingDate  string `json:"wedding_date"`
	GuestCount   *int   `json:"guest_count" binding:"omitempty,gt=0"`
}

// UpdateBudgetRequest sets the wedding-level fallback budget.
type UpdateBudgetRequest struct {
	Total int64 `json:"total" binding:"gte=0"`
}

// parseDate parses a YYYY-MM-DD date string.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be YYYY-MM-DD")
	}
	return t, nil
}

// CreateWedding handles the creation of a new wedding, seeding its default
// categories and tasks.
// @Summary     Create a wedding
// @Description Create a wedding with default budget categories and starter tasks
// @Tags        weddings
// @Accept      json
// @Produce     json
// @Param       request body CreateWeddingRequest true "Wedding details"
// @Success     201 {object} models.Wedding "Wedding created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /weddings [post]
func (h *WeddingHandler) CreateWedding(c *gin.Context) {
	var req CreateWeddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.WeddingDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	wedding, err := h.weddingService.CreateWedding(req.Partner1Name, req.Partner2Name, date, req.GuestCount, req.TotalBudget)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"wedding": wedding})
}

// GetWedding handles retrieving a wedding with its categories.
// @Summary     Get wedding by ID
// @Tags        weddings
// @Produce     json
// @Param       id path int true "Wedding ID"
// @Success     200 {object} models.Wedding "Wedding details"
// @Failure     404 {object} ErrorResponse "Wedding not found"
// @Router      /weddings/{id} [get]
func (h *WeddingHandler) GetWedding(c *gin.Context) {
	weddingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	wedding, err := h.weddingService.GetWeddingByID(weddingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wedding": wedding})
}

// UpdateWedding handles updating couple names, date, and guest count.
// @Summary     Update wedding
// @Tags        weddings
// @Accept      json
// @Produce     json
// @Param       id      path int                  true "Wedding ID"
// @Param       request body UpdateWeddingRequest true "Updated wedding details"
// @Success     200 {object} models.Wedding "Updated wedding"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Wedding not found"
// @Router      /weddings/{id} [put]
func (h *WeddingHandler) UpdateWedding(c *gin.Context) {
	weddingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateWeddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date *time.Time
	if req.WeddingDate != "" {
		parsed, err := parseDate(req.WeddingDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		date = &parsed
	}

	wedding, err := h.weddingService.UpdateWedding(weddingID, req.Partner1Name, req.Partner2Name, date, req.GuestCount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wedding": wedding})
}

// UpdateBudget sets the wedding-level fallback budget figure.
// @Summary     Update wedding total budget
// @Tags        weddings
// @Accept      json
// @Produce     json
// @Param       id      path int                 true "Wedding ID"
// @Param       request body UpdateBudgetRequest true "New total budget"
// @Success     200 {object} models.Wedding "Updated wedding"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Wedding not found"
// @Router      /weddings/{id}/budget [put]
func (h *WeddingHandler) UpdateBudget(c *gin.Context) {
	weddingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	wedding, err := h.weddingService.UpdateTotalBudget(weddingID, req.Total)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wedding": wedding})
}
