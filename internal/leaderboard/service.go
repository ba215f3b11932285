package leaderboard

import (
	"errors"
	"math"
	"sort"

	"github.com/SlpAus/meal-max-backend/internal/meal"
)

// SortMode 是排行榜的排序方式
type SortMode string

const (
	// SortByWins 按胜场排序（默认），同胜场按胜率，再按ID
	SortByWins SortMode = "wins"
	// SortByWinPct 按胜率排序，同胜率按胜场，再按ID
	SortByWinPct SortMode = "win_pct"
)

// ErrInvalidSort 表示未知的排序方式
var ErrInvalidSort = errors.New("invalid leaderboard sort mode")

// Entry 是排行榜中的一行
type Entry struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Cuisine    string          `json:"cuisine"`
	Price      float64         `json:"price"`
	Difficulty meal.Difficulty `json:"difficulty"`
	Battles    int             `json:"battles"`
	Wins       int             `json:"wins"`
	// WinRatio 是原始胜率 wins/battles
	WinRatio float64 `json:"winRatio"`
	// WinPct 是胜率的百分数表示，保留一位小数
	WinPct float64 `json:"winPct"`
}

// Service 从菜品仓库派生排行榜视图，不做任何修改
type Service struct {
	store meal.Store
}

// NewService 创建排行榜服务
func NewService(store meal.Store) *Service {
	return &Service{store: store}
}

// Build 读取所有参战过的在榜菜品并按指定方式排序。
// 没有菜品参战过时返回空榜，这不是错误。
func (s *Service) Build(mode SortMode) ([]Entry, error) {
	switch mode {
	case SortByWins, SortByWinPct:
	default:
		return nil, ErrInvalidSort
	}

	meals, err := s.store.ListBattled()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(meals))
	for _, m := range meals {
		ratio := float64(m.Wins) / float64(m.Battles)
		entries = append(entries, Entry{
			ID:         m.ID,
			Name:       m.Name,
			Cuisine:    m.Cuisine,
			Price:      m.Price,
			Difficulty: m.Difficulty,
			Battles:    m.Battles,
			Wins:       m.Wins,
			WinRatio:   ratio,
			WinPct:     math.Round(ratio*1000) / 10,
		})
	}

	// 三级比较链的末位始终是ID升序，保证同一数据集的输出稳定
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch mode {
		case SortByWinPct:
			if a.WinRatio != b.WinRatio {
				return a.WinRatio > b.WinRatio
			}
			if a.Wins != b.Wins {
				return a.Wins > b.Wins
			}
		default:
			if a.Wins != b.Wins {
				return a.Wins > b.Wins
			}
			if a.WinRatio != b.WinRatio {
				return a.WinRatio > b.WinRatio
			}
		}
		return a.ID < b.ID
	})

	return entries, nil
}
