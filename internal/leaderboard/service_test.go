package leaderboard

import (
	"errors"
	"testing"

	"github.com/SlpAus/meal-max-backend/internal/meal"
	"gorm.io/gorm"
)

// --------------------------------------------------
// Mock Store
// --------------------------------------------------

type mockStore struct {
	meals []meal.Meal
}

func (s *mockStore) Create(m *meal.Meal) error                { return nil }
func (s *mockStore) GetByID(id uint) (*meal.Meal, error)      { return nil, meal.ErrNotFound }
func (s *mockStore) GetByName(name string) (*meal.Meal, error) { return nil, meal.ErrNotFound }
func (s *mockStore) UpdateStats(id uint, won bool) error      { return nil }
func (s *mockStore) RevertStats(id uint, won bool) error      { return nil }
func (s *mockStore) SoftDelete(id uint) error                 { return nil }

func (s *mockStore) ListActive() ([]meal.Meal, error) {
	return s.meals, nil
}

func (s *mockStore) ListBattled() ([]meal.Meal, error) {
	var out []meal.Meal
	for _, m := range s.meals {
		if !m.DeletedAt.Valid && m.Battles > 0 {
			out = append(out, m)
		}
	}
	return out, nil
}

func battledMeal(id uint, name string, wins, battles int) meal.Meal {
	m := meal.Meal{Name: name, Cuisine: "Test", Price: 10.0, Difficulty: meal.DifficultyMed, Wins: wins, Battles: battles}
	m.ID = id
	return m
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestBuildOrdersByWinsThenRatioThenID(t *testing.T) {
	store := &mockStore{meals: []meal.Meal{
		battledMeal(1, "Spaghetti", 3, 4), // 胜率0.75
		battledMeal(2, "Sushi", 3, 5),     // 胜率0.6
		battledMeal(3, "Burger", 2, 2),    // 胜率1.0
	}}
	svc := NewService(store)

	entries, err := svc.Build(SortByWins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 胜场优先：(3,4) 在 (3,5) 前，(2,2) 殿后
	wantOrder := []uint{1, 2, 3}
	if len(entries) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d", len(wantOrder), len(entries))
	}
	for i, want := range wantOrder {
		if entries[i].ID != want {
			t.Fatalf("position %d: expected meal %d, got %d", i, want, entries[i].ID)
		}
	}

	if entries[0].WinRatio != 0.75 || entries[1].WinRatio != 0.6 || entries[2].WinRatio != 1.0 {
		t.Fatalf("unexpected ratios: %+v", entries)
	}
}

func TestBuildWinPctOrdering(t *testing.T) {
	store := &mockStore{meals: []meal.Meal{
		battledMeal(1, "Spaghetti", 3, 4),
		battledMeal(2, "Sushi", 3, 5),
		battledMeal(3, "Burger", 2, 2),
	}}
	svc := NewService(store)

	entries, err := svc.Build(SortByWinPct)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []uint{3, 1, 2}
	for i, want := range wantOrder {
		if entries[i].ID != want {
			t.Fatalf("position %d: expected meal %d, got %d", i, want, entries[i].ID)
		}
	}
}

func TestBuildBreaksTiesByIDAscending(t *testing.T) {
	store := &mockStore{meals: []meal.Meal{
		battledMeal(5, "Ramen", 1, 2),
		battledMeal(4, "Tacos", 1, 2),
	}}
	svc := NewService(store)

	entries, err := svc.Build(SortByWins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].ID != 4 || entries[1].ID != 5 {
		t.Fatalf("ties must break by id ascending: %+v", entries)
	}
}

func TestBuildRoundsWinPct(t *testing.T) {
	store := &mockStore{meals: []meal.Meal{
		battledMeal(1, "Spaghetti", 2, 3),
	}}
	svc := NewService(store)

	entries, err := svc.Build(SortByWins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2/3 → 66.7%，保留一位小数
	if entries[0].WinPct != 66.7 {
		t.Fatalf("expected win pct 66.7, got %v", entries[0].WinPct)
	}
}

func TestBuildExcludesDeletedAndUnbattled(t *testing.T) {
	deleted := battledMeal(2, "Sushi", 3, 3)
	deleted.DeletedAt = gorm.DeletedAt{Valid: true}
	store := &mockStore{meals: []meal.Meal{
		battledMeal(1, "Spaghetti", 1, 1),
		deleted,
		battledMeal(3, "Burger", 0, 0), // 从未参战
	}}
	svc := NewService(store)

	entries, err := svc.Build(SortByWins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != 1 {
		t.Fatalf("expected only meal 1 on the board, got %+v", entries)
	}
}

func TestBuildEmptyBoardIsNotAnError(t *testing.T) {
	svc := NewService(&mockStore{})

	entries, err := svc.Build(SortByWins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty board, got %+v", entries)
	}
}

func TestBuildRejectsUnknownSort(t *testing.T) {
	svc := NewService(&mockStore{})

	if _, err := svc.Build(SortMode("price")); !errors.Is(err, ErrInvalidSort) {
		t.Fatalf("expected ErrInvalidSort, got %v", err)
	}
}
