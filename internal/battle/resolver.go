package battle

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/SlpAus/meal-max-backend/internal/meal"
	"github.com/SlpAus/meal-max-backend/internal/platform/config"
	"github.com/SlpAus/meal-max-backend/pkg/random"
	"github.com/google/uuid"
)

// Result 是单场对战的产出。
// 它只返回给调用方，不会被持久化为实体。
type Result struct {
	BattleID   string  `json:"battleId"`
	WinnerID   uint    `json:"winnerId"`
	WinnerName string  `json:"winnerName"`
	LoserID    uint    `json:"loserId"`
	LoserName  string  `json:"loserName"`
	ScoreA     float64 `json:"scoreA"`
	ScoreB     float64 `json:"scoreB"`
	Delta      float64 `json:"delta"`
	Draw       float64 `json:"draw"`
}

// Resolver 根据菜品属性和一次随机抽取判定两道菜的胜负。
// 分数是 (菜名长度, 价格, 难度) 的确定性函数，不依赖任何隐藏状态。
type Resolver struct {
	nameWeight  float64
	penaltyLow  float64
	penaltyMed  float64
	penaltyHigh float64
	scale       float64
	rng         random.Source
}

// NewResolver 用配置的计分常量和注入的随机源创建判定器
func NewResolver(cfg config.BattleConfig, rng random.Source) *Resolver {
	return &Resolver{
		nameWeight:  cfg.NameWeight,
		penaltyLow:  cfg.Penalty.Low,
		penaltyMed:  cfg.Penalty.Med,
		penaltyHigh: cfg.Penalty.High,
		scale:       cfg.LogisticScale,
		rng:         rng,
	}
}

// penalty 返回难度对应的分数惩罚，HIGH档最小以奖励大胆的选择
func (r *Resolver) penalty(d meal.Difficulty) float64 {
	switch d {
	case meal.DifficultyHigh:
		return r.penaltyHigh
	case meal.DifficultyMed:
		return r.penaltyMed
	default:
		return r.penaltyLow
	}
}

// Score 计算一道菜的对战分数:
// 价格乘以菜名长度权重（近似备餐复杂度），再减去难度惩罚
func (r *Resolver) Score(m *meal.Meal) float64 {
	length := float64(utf8.RuneCountInString(m.Name))
	return m.Price*r.nameWeight*length - r.penalty(m.Difficulty)
}

// logistic 把分差单调地挤压到 (0, 1) 区间
func (r *Resolver) logistic(diff float64) float64 {
	return 1.0 / (1.0 + math.Exp(-diff/r.scale))
}

// Resolve 判定一场对战。分差越大，高分方获胜概率越高，
// 但随机抽取保留了爆冷的可能。没有平局，恰好一胜一负。
func (r *Resolver) Resolve(a, b *meal.Meal) (*Result, error) {
	if a == nil || b == nil || a.ID == b.ID {
		return nil, ErrInvalidInput
	}

	scoreA := r.Score(a)
	scoreB := r.Score(b)
	delta := r.logistic(scoreA - scoreB)
	draw := r.rng.Float64()

	battleID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("无法生成对战ID: %w", err)
	}

	result := &Result{
		BattleID: battleID.String(),
		ScoreA:   scoreA,
		ScoreB:   scoreB,
		Delta:    delta,
		Draw:     draw,
	}

	if delta > draw {
		result.WinnerID, result.WinnerName = a.ID, a.Name
		result.LoserID, result.LoserName = b.ID, b.Name
	} else {
		result.WinnerID, result.WinnerName = b.ID, b.Name
		result.LoserID, result.LoserName = a.ID, a.Name
	}

	return result, nil
}
