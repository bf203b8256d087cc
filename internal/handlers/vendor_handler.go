package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "weddinghub/internal/errors"
	"weddinghub/internal/models"
	"weddinghub/internal/pagination"
	"weddinghub/internal/services"
)

// VendorHandler handles marketplace vendor directory requests.
type VendorHandler struct {
	vendorService services.VendorServicer
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendorService services.VendorServicer) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// CreateVendorRequest represents the request payload for listing a vendor.
type CreateVendorRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Category    string `json:"category" binding:"required,min=1,max=100"`
	Location    string `json:"location" binding:"max=200"`
	PriceRange  string `json:"price_range" binding:"omitempty,price_range"`
	Phone       string `json:"phone" binding:"max=30"`
	Description string `json:"description" binding:"max=2000"`
}

// SetVerifiedRequest is the admin payload for the verification flag.
type SetVerifiedRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}

// CreateVendor handles listing a vendor in the directory.
// @Summary     Create a directory vendor
// @Tags        vendors
// @Accept      json
// @Produce     json
// @Param       request body CreateVendorRequest true "Vendor details"
// @Success     201 {object} models.Vendor "Vendor created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /vendors [post]
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	vendor, err := h.vendorService.CreateVendor(req.Name, req.Category, req.Location, models.PriceRange(req.PriceRange), req.Phone, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vendor": vendor})
}

// SearchVendors retrieves a filtered, paginated directory listing sorted by
// rating.
// @Summary     Search directory vendors
// @Tags        vendors
// @Produce     json
// @Param       category    query string false "Filter by category"
// @Param       location    query string false "Filter by location"
// @Param       price_range query string false "Filter by price range"
// @Param       verified    query bool   false "Filter by verification"
// @Param       page        query int    false "Page number"
// @Param       page_size   query int    false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Vendor] "Vendors"
// @Router      /vendors [get]
func (h *VendorHandler) SearchVendors(c *gin.Context) {
	var filter services.VendorFilter
	if raw, ok := c.GetQuery("category"); ok {
		filter.Category = &raw
	}
	if raw, ok := c.GetQuery("location"); ok {
		filter.Location = &raw
	}
	if raw, ok := c.GetQuery("price_range"); ok {
		pr := models.PriceRange(raw)
		filter.PriceRange = &pr
	}
	if raw, ok := c.GetQuery("verified"); ok {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "verified must be true or false"))
			return
		}
		filter.Verified = &verified
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	vendors, err := h.vendorService.SearchVendors(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendors)
}

// GetVendor retrieves a single directory entry.
// @Summary     Get vendor by ID
// @Tags        vendors
// @Produce     json
// @Param       id path int true "Vendor ID"
// @Success     200 {object} models.Vendor "Vendor details"
// @Failure     404 {object} ErrorResponse "Vendor not found"
// @Router      /vendors/{id} [get]
func (h *VendorHandler) GetVendor(c *gin.Context) {
	vendorID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	vendor, err := h.vendorService.GetVendorByID(vendorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

// SetVerified handles the admin verification toggle.
// @Summary     Set vendor verification
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                true "Vendor ID"
// @Param       request body SetVerifiedRequest true "Verification flag"
// @Success     200 {object} models.Vendor "Updated vendor"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Vendor not found"
// @Router      /admin/vendors/{id}/verify [put]
func (h *VendorHandler) SetVerified(c *gin.Context) {
	vendorID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetVerifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	vendor, err := h.vendorService.SetVerified(vendorID, *req.Verified)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}
