package services

import (
	"testing"

	"weddinghub/internal/models"
	"weddinghub/internal/pagination"
	"weddinghub/internal/testutil"
)

func TestCreateVendor(t *testing.T) {
	t.Run("starts_unverified", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewVendorService(db)

		vendor, err := svc.CreateVendor("Bloom Studio", "flowers", "Haifa", models.PriceRangePremium, "+972-50-0000000", "Floral design")
		testutil.AssertNoError(t, err)

		if vendor.ID == 0 {
			t.Fatal("expected non-zero vendor ID")
		}
		if vendor.IsVerified {
			t.Error("expected new vendor unverified")
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewVendorService(db)

		_, err := svc.CreateVendor("", "flowers", "", models.PriceRangeBudget, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewVendorService(db)

		_, err := svc.CreateVendor("Bloom Studio", "", "", models.PriceRangeBudget, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestSearchVendors(t *testing.T) {
	t.Run("filters_by_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewVendorService(db)
		testutil.CreateTestVendor(t, db, "flowers", 4.5)
		testutil.CreateTestVendor(t, db, "music", 4.8)

		category := "flowers"
		page, err := svc.SearchVendors(VendorFilter{Category: &category}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 1 {
			t.Errorf("expected 1 vendor, got %d", page.TotalItems)
		}
	})

	t.Run("sorted_by_rating_desc", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewVendorService(db)
		testutil.CreateTestVendor(t, db, "music", 3.9)
		best := testutil.CreateTestVendor(t, db, "music", 4.9)
		testutil.CreateTestVendor(t, db, "music", 4.2)

		page, err := svc.SearchVendors(VendorFilter{}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 3 {
			t.Fatalf("expected 3 vendors, got %d", len(page.Data))
		}
		if page.Data[0].ID != best.ID {
			t.Errorf("expected highest rated first, got vendor %d", page.Data[0].ID)
		}
	})

	t.Run("filters_by_verified", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewVendorService(db)
		vendor := testutil.CreateTestVendor(t, db, "photo", 4.0)
		testutil.CreateTestVendor(t, db, "photo", 4.1)

		_, err := svc.SetVerified(vendor.ID, true)
		testutil.AssertNoError(t, err)

		verified := true
		page, err := svc.SearchVendors(VendorFilter{Verified: &verified}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 1 {
			t.Errorf("expected 1 verified vendor, got %d", page.TotalItems)
		}
	})
}

func TestSeedDemoVendors(t *testing.T) {
	t.Run("fills_empty_directory", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewVendorService(db)

		testutil.AssertNoError(t, svc.SeedDemoVendors())

		var count int64
		testutil.AssertNoError(t, db.Model(&models.Vendor{}).Count(&count).Error)
		if count == 0 {
			t.Fatal("expected seeded directory entries")
		}

		page, err := svc.SearchVendors(VendorFilter{}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != count {
			t.Errorf("expected %d searchable vendors, got %d", count, page.TotalItems)
		}
	})

	t.Run("noop_when_vendors_exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewVendorService(db)
		testutil.CreateTestVendor(t, db, "music", 4.0)

		testutil.AssertNoError(t, svc.SeedDemoVendors())

		var count int64
		testutil.AssertNoError(t, db.Model(&models.Vendor{}).Count(&count).Error)
		if count != 1 {
			t.Errorf("expected directory untouched with 1 vendor, got %d", count)
		}
	})
}

func TestSetVerified(t *testing.T) {
	t.Run("toggles_flag", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewVendorService(db)
		vendor := testutil.CreateTestVendor(t, db, "catering", 4.0)

		updated, err := svc.SetVerified(vendor.ID, true)
		testutil.AssertNoError(t, err)
		if !updated.IsVerified {
			t.Error("expected vendor verified")
		}

		updated, err = svc.SetVerified(vendor.ID, false)
		testutil.AssertNoError(t, err)
		if updated.IsVerified {
			t.Error("expected vendor unverified")
		}
	})

	t.Run("missing_vendor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewVendorService(db)

		_, err := svc.SetVerified(99999, true)
		testutil.AssertAppError(t, err, "VENDOR_NOT_FOUND")
	})
}
