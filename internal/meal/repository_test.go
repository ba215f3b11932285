package meal

import (
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&Meal{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewStore(db)
}

func createTestMeal(t *testing.T, store Store, name string) *Meal {
	t.Helper()
	m := &Meal{Name: name, Cuisine: "Test", Price: 10.0, Difficulty: DifficultyMed}
	if err := store.Create(m); err != nil {
		t.Fatalf("failed to create meal %s: %v", name, err)
	}
	return m
}

func TestCreateAndGetMeal(t *testing.T) {
	store := newTestStore(t)
	created := createTestMeal(t, store, "Pizza")

	byID, err := store.GetByID(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byID.Name != "Pizza" || byID.Cuisine != "Test" {
		t.Fatalf("unexpected meal: %+v", byID)
	}

	byName, err := store.GetByName("Pizza")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byName.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, byName.ID)
	}
}

func TestCreateRejectsInvalidAttributes(t *testing.T) {
	store := newTestStore(t)

	if err := store.Create(&Meal{Name: "Free", Cuisine: "Test", Price: 0, Difficulty: DifficultyLow}); !errors.Is(err, ErrInvalidMeal) {
		t.Fatalf("expected ErrInvalidMeal for non-positive price, got %v", err)
	}
	if err := store.Create(&Meal{Name: "Odd", Cuisine: "Test", Price: 5, Difficulty: "EXTREME"}); !errors.Is(err, ErrInvalidMeal) {
		t.Fatalf("expected ErrInvalidMeal for unknown difficulty, got %v", err)
	}
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	store := newTestStore(t)
	createTestMeal(t, store, "Pizza")

	err := store.Create(&Meal{Name: "Pizza", Cuisine: "Test", Price: 12.0, Difficulty: DifficultyLow})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestGetMissingMeal(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.GetByID(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetByName("Nothing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSoftDeleteIsDistinguishedFromMissing(t *testing.T) {
	store := newTestStore(t)
	created := createTestMeal(t, store, "Pizza")

	if err := store.SoftDelete(created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 已删除和不存在是两种不同的错误
	if _, err := store.GetByID(created.ID); !errors.Is(err, ErrDeleted) {
		t.Fatalf("expected ErrDeleted, got %v", err)
	}
	if _, err := store.GetByName("Pizza"); !errors.Is(err, ErrDeleted) {
		t.Fatalf("expected ErrDeleted, got %v", err)
	}

	// 重复删除同样报告“已删除”
	if err := store.SoftDelete(created.ID); !errors.Is(err, ErrDeleted) {
		t.Fatalf("expected ErrDeleted on double delete, got %v", err)
	}
	if err := store.SoftDelete(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAndRevertStats(t *testing.T) {
	store := newTestStore(t)
	created := createTestMeal(t, store, "Pizza")

	if err := store.UpdateStats(created.ID, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.UpdateStats(created.ID, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, _ := store.GetByID(created.ID)
	if m.Battles != 2 || m.Wins != 1 {
		t.Fatalf("unexpected stats: battles=%d wins=%d", m.Battles, m.Wins)
	}

	if err := store.RevertStats(created.ID, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, _ = store.GetByID(created.ID)
	if m.Battles != 1 || m.Wins != 0 {
		t.Fatalf("unexpected stats after revert: battles=%d wins=%d", m.Battles, m.Wins)
	}
}

func TestUpdateStatsOnDeletedMeal(t *testing.T) {
	store := newTestStore(t)
	created := createTestMeal(t, store, "Pizza")
	store.SoftDelete(created.ID)

	if err := store.UpdateStats(created.ID, true); !errors.Is(err, ErrDeleted) {
		t.Fatalf("expected ErrDeleted, got %v", err)
	}
	if err := store.UpdateStats(999, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListBattledFiltersBoard(t *testing.T) {
	store := newTestStore(t)
	fighter := createTestMeal(t, store, "Pizza")
	createTestMeal(t, store, "Sushi") // 从未参战
	retired := createTestMeal(t, store, "Burger")

	store.UpdateStats(fighter.ID, true)
	store.UpdateStats(retired.ID, false)
	store.SoftDelete(retired.ID)

	battled, err := store.ListBattled()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(battled) != 1 || battled[0].ID != fighter.ID {
		t.Fatalf("expected only the active fighter, got %+v", battled)
	}
}
