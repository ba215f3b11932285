package meal

import "gorm.io/gorm"

// Difficulty 是菜品备餐难度的枚举类型
type Difficulty string

const (
	// DifficultyLow 表示备餐简单
	DifficultyLow Difficulty = "LOW"
	// DifficultyMed 表示备餐中等
	DifficultyMed Difficulty = "MED"
	// DifficultyHigh 表示备餐困难
	DifficultyHigh Difficulty = "HIGH"
)

// Valid 检查难度值是否是三档合法值之一
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyLow, DifficultyMed, DifficultyHigh:
		return true
	}
	return false
}

// Meal 定义了数据库中菜品的数据结构
type Meal struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	// DeletedAt 即菜品的软删除标记，被删除的菜品不能参战也不进排行榜
	gorm.Model

	// Name 是菜品的唯一名称, 例如 "Spaghetti"
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	// Cuisine 是菜系标签, 例如 "Italian"
	Cuisine string `json:"cuisine"`

	// Price 是菜品价格，非负，参与对战分数计算
	Price float64 `json:"price"`

	// Difficulty 是备餐难度 (LOW/MED/HIGH)，参与对战分数计算
	Difficulty Difficulty `json:"difficulty"`

	// --- 以下是对战统计字段 ---

	// Battles 是菜品参与的总场次
	Battles int `json:"battles"`

	// Wins 是菜品获胜的场次，恒有 Wins <= Battles
	Wins int `json:"wins"`
}

// Response 是菜品对外的API表示
type Response struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Cuisine    string     `json:"cuisine"`
	Price      float64    `json:"price"`
	Difficulty Difficulty `json:"difficulty"`
	Battles    int        `json:"battles"`
	Wins       int        `json:"wins"`
}

// ToResponse 将数据库模型转换为API表示
func ToResponse(m Meal) Response {
	return Response{
		ID:         m.ID,
		Name:       m.Name,
		Cuisine:    m.Cuisine,
		Price:      m.Price,
		Difficulty: m.Difficulty,
		Battles:    m.Battles,
		Wins:       m.Wins,
	}
}
