package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "weddinghub/internal/errors"
	"weddinghub/internal/logger"
	"weddinghub/internal/models"
	"weddinghub/internal/pagination"
	"weddinghub/internal/seedtemplates"
)

// vendorService handles the marketplace vendor directory. Directory entries
// are independent of any wedding; they only become spend when booked.
type vendorService struct {
	db *gorm.DB
}

// NewVendorService creates a new VendorServicer.
func NewVendorService(db *gorm.DB) VendorServicer {
	return &vendorService{db: db}
}

// CreateVendor adds a directory entry. New vendors start unverified.
func (s *vendorService) CreateVendor(
	name, category, location string,
	priceRange models.PriceRange,
	phone, description string,
) (*models.Vendor, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "vendor name is required")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "vendor category is required")
	}

	vendor := &models.Vendor{
		Name:        name,
		Category:    category,
		Location:    location,
		PriceRange:  priceRange,
		Phone:       phone,
		Description: description,
	}
	if err := s.db.Create(vendor).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return vendor, nil
}

// SearchVendors retrieves a paginated, filtered list of directory entries.
func (s *vendorService) SearchVendors(filter VendorFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Vendor], error) {
	page.Defaults()

	base := s.db.Model(&models.Vendor{})
	if filter.Category != nil {
		base = base.Where("category = ?", *filter.Category)
	}
	if filter.Location != nil {
		base = base.Where("location = ?", *filter.Location)
	}
	if filter.PriceRange != nil {
		base = base.Where("price_range = ?", *filter.PriceRange)
	}
	if filter.Verified != nil {
		base = base.Where("is_verified = ?", *filter.Verified)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var vendors []models.Vendor
	if err := base.Scopes(pagination.Paginate(page)).
		Order("rating DESC, review_count DESC").
		Find(&vendors).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(vendors, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetVendorByID returns a directory entry by ID.
func (s *vendorService) GetVendorByID(vendorID uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.Where("id = ?", vendorID).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &vendor, nil
}

// SeedDemoVendors fills an empty directory with the demo marketplace
// entries. It is a no-op when any vendor is already present.
func (s *vendorService) SeedDemoVendors() error {
	var count int64
	if err := s.db.Model(&models.Vendor{}).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil
	}

	logger.Get().Info("Seeding demo vendor directory")
	vendors := seedtemplates.DefaultVendors()
	if err := s.db.Create(&vendors).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// SetVerified toggles the admin verification flag on a directory entry.
func (s *vendorService) SetVerified(vendorID uint, verified bool) (*models.Vendor, error) {
	vendor, err := s.GetVendorByID(vendorID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(vendor).Update("is_verified", verified).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return vendor, nil
}
