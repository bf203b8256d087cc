package services

import (
	"testing"
	"time"

	"weddinghub/internal/models"
	"weddinghub/internal/notify"
	"weddinghub/internal/testutil"
)

func TestDashboardSummary(t *testing.T) {
	t.Run("combined_scenario", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)
		bookingSvc := NewBookingService(db, notify.Noop{})
		wedding := testutil.CreateTestWeddingWithBudget(t, db, 16500000)
		venue := testutil.CreateTestCategory(t, db, wedding.ID, 9000000)
		testutil.CreateTestCategory(t, db, wedding.ID, 1500000)

		_, err := bookingSvc.CreateBooking(wedding.ID, venue.ID, "Grand Hall", 8500000, 0, nil, "")
		testutil.AssertNoError(t, err)

		testutil.CreateTestCompletedTask(t, db, wedding.ID)
		testutil.CreateTestTask(t, db, wedding.ID)
		testutil.CreateTestTask(t, db, wedding.ID)

		summary, err := svc.Summary(wedding.ID)
		testutil.AssertNoError(t, err)

		if summary.BudgetPlanned != 10500000 {
			t.Errorf("expected planned 10500000, got %d", summary.BudgetPlanned)
		}
		if summary.BudgetActual != 8500000 {
			t.Errorf("expected actual 8500000, got %d", summary.BudgetActual)
		}
		if summary.BudgetRemaining != 2000000 {
			t.Errorf("expected remaining 2000000, got %d", summary.BudgetRemaining)
		}
		// 8500000 * 100 / 10500000 truncates to 80
		if summary.BudgetPercentage != 80 {
			t.Errorf("expected budget percentage 80, got %d", summary.BudgetPercentage)
		}
		if summary.TasksTotal != 3 {
			t.Errorf("expected 3 tasks, got %d", summary.TasksTotal)
		}
		if summary.TasksCompleted != 1 {
			t.Errorf("expected 1 completed task, got %d", summary.TasksCompleted)
		}
		// 1 * 100 / 3 truncates to 33
		if summary.ControlPercentage != 33 {
			t.Errorf("expected control percentage 33, got %d", summary.ControlPercentage)
		}
	})

	t.Run("idempotent_reads", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)
		wedding := testutil.CreateTestWedding(t, db)
		testutil.CreateTestCategory(t, db, wedding.ID, 500000)
		testutil.CreateTestTask(t, db, wedding.ID)

		first, err := svc.Summary(wedding.ID)
		testutil.AssertNoError(t, err)
		second, err := svc.Summary(wedding.ID)
		testutil.AssertNoError(t, err)

		if *first != *second {
			t.Errorf("expected identical summaries, got %+v then %+v", first, second)
		}
	})

	t.Run("no_tasks_reports_zero_control", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)
		wedding := testutil.CreateTestWedding(t, db)

		summary, err := svc.Summary(wedding.ID)
		testutil.AssertNoError(t, err)
		if summary.ControlPercentage != 0 {
			t.Errorf("expected 0%% control with no tasks, got %d", summary.ControlPercentage)
		}
	})

	t.Run("urgent_excludes_completed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)
		wedding := testutil.CreateTestWedding(t, db)

		now := time.Now()
		open := &models.Task{WeddingID: wedding.ID, Title: "Open urgent", IsUrgent: true}
		done := &models.Task{WeddingID: wedding.ID, Title: "Done urgent", IsUrgent: true, IsCompleted: true, CompletedAt: &now}
		testutil.AssertNoError(t, db.Create(open).Error)
		testutil.AssertNoError(t, db.Create(done).Error)

		summary, err := svc.Summary(wedding.ID)
		testutil.AssertNoError(t, err)
		if summary.TasksUrgent != 1 {
			t.Errorf("expected 1 urgent open task, got %d", summary.TasksUrgent)
		}
	})

	t.Run("falls_back_to_wedding_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)
		wedding := testutil.CreateTestWeddingWithBudget(t, db, 5000000)

		summary, err := svc.Summary(wedding.ID)
		testutil.AssertNoError(t, err)
		if summary.BudgetPlanned != 5000000 {
			t.Errorf("expected fallback planned 5000000, got %d", summary.BudgetPlanned)
		}
	})

	t.Run("overspend_goes_negative", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)
		bookingSvc := NewBookingService(db, notify.Noop{})
		wedding := testutil.CreateTestWeddingWithBudget(t, db, 0)
		category := testutil.CreateTestCategory(t, db, wedding.ID, 1000)

		_, err := bookingSvc.CreateBooking(wedding.ID, category.ID, "Expensive", 1500, 0, nil, "")
		testutil.AssertNoError(t, err)

		summary, err := svc.Summary(wedding.ID)
		testutil.AssertNoError(t, err)
		if summary.BudgetRemaining != -500 {
			t.Errorf("expected remaining -500, got %d", summary.BudgetRemaining)
		}
		if summary.BudgetPercentage != 150 {
			t.Errorf("expected budget percentage 150, got %d", summary.BudgetPercentage)
		}
	})

	t.Run("past_wedding_counts_down_to_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)

		wedding := &models.Wedding{
			Partner1Name: "A",
			Partner2Name: "B",
			WeddingDate:  time.Now().AddDate(0, 0, -30),
			GuestCount:   100,
		}
		testutil.AssertNoError(t, db.Create(wedding).Error)

		summary, err := svc.Summary(wedding.ID)
		testutil.AssertNoError(t, err)
		if summary.DaysRemaining != 0 {
			t.Errorf("expected 0 days remaining for past date, got %d", summary.DaysRemaining)
		}
	})

	t.Run("missing_wedding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(db)

		_, err := svc.Summary(99999)
		testutil.AssertAppError(t, err, "WEDDING_NOT_FOUND")
	})
}
