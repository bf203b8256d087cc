package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "weddinghub/internal/errors"
	"weddinghub/internal/models"
	"weddinghub/internal/pagination"
	"weddinghub/internal/services"
)

// BookingHandler handles vendor booking requests. Every write that goes
// through here also moves the owning category's running total.
type BookingHandler struct {
	bookingService services.BookingServicer
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService services.BookingServicer) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest represents the request payload for creating a booking.
type CreateBookingRequest struct {
	CategoryID     uint   `json:"category_id" binding:"required"`
	VendorName     string `json:"vendor_name" binding:"required,min=1,max=200"`
	Amount         int64  `json:"amount" binding:"gte=0"`
	DepositPaid    int64  `json:"deposit_paid" binding:"gte=0"`
	PaymentDueDate string `json:"payment_due_date"`
	Notes          string `json:"notes" binding:"max=2000"`
}

// UpdateBookingRequest represents the request payload for updating a booking.
// Absent fields leave the current values unchanged.
type UpdateBookingRequest struct {
	VendorName     *string `json:"vendor_name" binding:"omitempty,min=1,max=200"`
	Amount         *int64  `json:"amount" binding:"omitempty,gte=0"`
	DepositPaid    *int64  `json:"deposit_paid" binding:"omitempty,gte=0"`
	Status         *string `json:"status" binding:"omitempty,booking_status"`
	PaymentDueDate *string `json:"payment_due_date"`
	Notes          *string `json:"notes" binding:"omitempty,max=2000"`
}

// CreateBooking handles creating a booking and adding its amount to the
// category total.
// @Summary     Create a vendor booking
// @Description Book a vendor against a budget category; the category's actual amount grows by the booking amount
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Param       id      path int                  true "Wedding ID"
// @Param       request body CreateBookingRequest true "Booking details"
// @Success     201 {object} models.VendorBooking "Booking created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Wedding or category not found"
// @Router      /weddings/{id}/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	weddingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var dueDate *time.Time
	if req.PaymentDueDate != "" {
		parsed, err := parseDate(req.PaymentDueDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		dueDate = &parsed
	}

	booking, err := h.bookingService.CreateBooking(weddingID, req.CategoryID, req.VendorName, req.Amount, req.DepositPaid, dueDate, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// GetWeddingBookings retrieves a paginated list of a wedding's bookings.
// @Summary     List vendor bookings
// @Tags        bookings
// @Produce     json
// @Param       id        path  int true  "Wedding ID"
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.VendorBooking] "Bookings"
// @Router      /weddings/{id}/bookings [get]
func (h *BookingHandler) GetWeddingBookings(c *gin.Context) {
	weddingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bookings, err := h.bookingService.GetWeddingBookings(weddingID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves a single booking.
// @Summary     Get booking by ID
// @Tags        bookings
// @Produce     json
// @Param       id path int true "Booking ID"
// @Success     200 {object} models.VendorBooking "Booking details"
// @Failure     404 {object} ErrorResponse "Booking not found"
// @Router      /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	booking, err := h.bookingService.GetBookingByID(bookingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// UpdateBooking handles patching a booking. An amount change moves the
// category total by the signed difference.
// @Summary     Update a vendor booking
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Param       id      path int                  true "Booking ID"
// @Param       request body UpdateBookingRequest true "Updated booking fields"
// @Success     200 {object} models.VendorBooking "Updated booking"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Booking not found"
// @Router      /bookings/{id} [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	bookingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.BookingPatch{
		VendorName:  req.VendorName,
		Amount:      req.Amount,
		DepositPaid: req.DepositPaid,
		Notes:       req.Notes,
	}
	if req.Status != nil {
		status := models.BookingStatus(*req.Status)
		patch.Status = &status
	}
	if req.PaymentDueDate != nil {
		parsed, err := parseDate(*req.PaymentDueDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		patch.PaymentDueDate = &parsed
	}

	booking, err := h.bookingService.UpdateBooking(bookingID, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// DeleteBooking handles deleting a booking and subtracting its amount from
// the category total.
// @Summary     Delete a vendor booking
// @Description Delete a booking; the category's actual amount shrinks by the booking amount
// @Tags        bookings
// @Produce     json
// @Param       id path int true "Booking ID"
// @Success     200 {object} MessageResponse "Booking deleted"
// @Failure     404 {object} ErrorResponse "Booking not found"
// @Router      /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	bookingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.bookingService.DeleteBooking(bookingID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
