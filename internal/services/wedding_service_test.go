package services

import (
	"testing"
	"time"

	"weddinghub/internal/models"
	"weddinghub/internal/notify"
	"weddinghub/internal/testutil"
)

func TestCreateWedding(t *testing.T) {
	t.Run("seeds_default_categories_and_tasks", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeddingService(db, notify.Noop{})

		date := time.Now().AddDate(1, 0, 0)
		wedding, err := svc.CreateWedding("Dana", "Omer", date, 250, 12000000)
		testutil.AssertNoError(t, err)

		if wedding.ID == 0 {
			t.Fatal("expected non-zero wedding ID")
		}

		var categories []models.BudgetCategory
		testutil.AssertNoError(t, db.Where("wedding_id = ?", wedding.ID).Find(&categories).Error)
		if len(categories) != 5 {
			t.Errorf("expected 5 default categories, got %d", len(categories))
		}
		for _, cat := range categories {
			if cat.ActualAmount != 0 {
				t.Errorf("expected category %q to start at zero actual, got %d", cat.Name, cat.ActualAmount)
			}
		}

		var tasks []models.Task
		testutil.AssertNoError(t, db.Where("wedding_id = ?", wedding.ID).Find(&tasks).Error)
		if len(tasks) != 7 {
			t.Errorf("expected 7 starter tasks, got %d", len(tasks))
		}
		for _, task := range tasks {
			if task.IsCompleted {
				t.Errorf("expected task %q to start open", task.Title)
			}
		}
	})

	t.Run("guest_count_defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeddingService(db, notify.Noop{})

		wedding, err := svc.CreateWedding("Dana", "Omer", time.Now().AddDate(1, 0, 0), 0, 0)
		testutil.AssertNoError(t, err)
		if wedding.GuestCount != 400 {
			t.Errorf("expected default guest count 400, got %d", wedding.GuestCount)
		}
	})

	t.Run("missing_partner_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeddingService(db, notify.Noop{})

		_, err := svc.CreateWedding("Dana", "", time.Now().AddDate(1, 0, 0), 100, 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeddingService(db, notify.Noop{})

		_, err := svc.CreateWedding("Dana", "Omer", time.Now().AddDate(1, 0, 0), 100, -1)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetWeddingByID(t *testing.T) {
	t.Run("preloads_categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeddingService(db, notify.Noop{})

		created, err := svc.CreateWedding("Dana", "Omer", time.Now().AddDate(1, 0, 0), 100, 0)
		testutil.AssertNoError(t, err)

		wedding, err := svc.GetWeddingByID(created.ID)
		testutil.AssertNoError(t, err)
		if len(wedding.Categories) != 5 {
			t.Errorf("expected 5 preloaded categories, got %d", len(wedding.Categories))
		}
	})

	t.Run("missing_wedding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeddingService(db, notify.Noop{})

		_, err := svc.GetWeddingByID(99999)
		testutil.AssertAppError(t, err, "WEDDING_NOT_FOUND")
	})
}

func TestUpdateWedding(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeddingService(db, notify.Noop{})
		wedding := testutil.CreateTestWedding(t, db)

		guests := 300
		_, err := svc.UpdateWedding(wedding.ID, "Noa", "", nil, &guests)
		testutil.AssertNoError(t, err)

		var updated models.Wedding
		testutil.AssertNoError(t, db.First(&updated, wedding.ID).Error)
		if updated.Partner1Name != "Noa" {
			t.Errorf("expected partner1 Noa, got %s", updated.Partner1Name)
		}
		if updated.Partner2Name != wedding.Partner2Name {
			t.Errorf("expected partner2 unchanged, got %s", updated.Partner2Name)
		}
		if updated.GuestCount != 300 {
			t.Errorf("expected guest count 300, got %d", updated.GuestCount)
		}
	})

	t.Run("invalid_guest_count", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeddingService(db, notify.Noop{})
		wedding := testutil.CreateTestWedding(t, db)

		guests := -5
		_, err := svc.UpdateWedding(wedding.ID, "", "", nil, &guests)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateTotalBudget(t *testing.T) {
	t.Run("sets_fallback_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeddingService(db, notify.Noop{})
		wedding := testutil.CreateTestWedding(t, db)

		_, err := svc.UpdateTotalBudget(wedding.ID, 20000000)
		testutil.AssertNoError(t, err)

		var updated models.Wedding
		testutil.AssertNoError(t, db.First(&updated, wedding.ID).Error)
		if updated.TotalBudget != 20000000 {
			t.Errorf("expected total budget 20000000, got %d", updated.TotalBudget)
		}
	})

	t.Run("negative_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeddingService(db, notify.Noop{})
		wedding := testutil.CreateTestWedding(t, db)

		_, err := svc.UpdateTotalBudget(wedding.ID, -1)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestSeedDemoWedding(t *testing.T) {
	t.Run("seeds_once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeddingService(db, notify.Noop{})

		wedding, err := svc.SeedDemoWedding()
		testutil.AssertNoError(t, err)
		if wedding == nil {
			t.Fatal("expected seeded wedding on empty database")
		}
		if wedding.TotalBudget != 16500000 {
			t.Errorf("expected demo budget 16500000, got %d", wedding.TotalBudget)
		}

		again, err := svc.SeedDemoWedding()
		testutil.AssertNoError(t, err)
		if again != nil {
			t.Error("expected no-op on second seed")
		}

		var count int64
		testutil.AssertNoError(t, db.Model(&models.Wedding{}).Count(&count).Error)
		if count != 1 {
			t.Errorf("expected exactly one wedding, got %d", count)
		}
	})
}
