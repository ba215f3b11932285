package meal

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// --- 仓库层错误 ---

var (
	// ErrNotFound 表示菜品不存在
	ErrNotFound = errors.New("meal not found")
	// ErrDeleted 表示菜品存在但已被软删除
	ErrDeleted = errors.New("meal has been deleted")
	// ErrDuplicateName 表示已存在同名菜品
	ErrDuplicateName = errors.New("meal name already exists")
	// ErrInvalidMeal 表示菜品字段不合法（价格或难度）
	ErrInvalidMeal = errors.New("invalid meal attributes")
)

// Store 是对战引擎所依赖的菜品存取接口。
// gorm实现之外，测试中可以用内存实现替换。
type Store interface {
	Create(m *Meal) error
	GetByID(id uint) (*Meal, error)
	GetByName(name string) (*Meal, error)
	ListActive() ([]Meal, error)
	ListBattled() ([]Meal, error)
	UpdateStats(id uint, won bool) error
	RevertStats(id uint, won bool) error
	SoftDelete(id uint) error
}

// gormStore 是Store的gorm实现，工作在权威数据库之上
type gormStore struct {
	db *gorm.DB
}

// NewStore 用给定的gorm连接创建菜品仓库
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// classifyMissing 区分“不存在”和“已被软删除”两种查不到的情况
func (s *gormStore) classifyMissing(id uint) error {
	var m Meal
	if err := s.db.Unscoped().First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if m.DeletedAt.Valid {
		return ErrDeleted
	}
	return ErrNotFound
}

func (s *gormStore) Create(m *Meal) error {
	if m.Price <= 0 {
		return fmt.Errorf("%w: 价格必须为正数", ErrInvalidMeal)
	}
	if !m.Difficulty.Valid() {
		return fmt.Errorf("%w: 难度必须是 LOW/MED/HIGH 之一", ErrInvalidMeal)
	}

	// 唯一索引覆盖包括已删除行在内的所有行，先查再插，错误信息更友好
	var count int64
	if err := s.db.Unscoped().Model(&Meal{}).Where("name = ?", m.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateName
	}

	return s.db.Create(m).Error
}

func (s *gormStore) GetByID(id uint) (*Meal, error) {
	var m Meal
	if err := s.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.classifyMissing(id)
		}
		return nil, err
	}
	return &m, nil
}

func (s *gormStore) GetByName(name string) (*Meal, error) {
	var m Meal
	if err := s.db.Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 同名的已删除行视作“已删除”，否则视作“不存在”
			var deleted int64
			if err := s.db.Unscoped().Model(&Meal{}).Where("name = ? AND deleted_at IS NOT NULL", name).Count(&deleted).Error; err != nil {
				return nil, err
			}
			if deleted > 0 {
				return nil, ErrDeleted
			}
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *gormStore) ListActive() ([]Meal, error) {
	var meals []Meal
	if err := s.db.Order("id asc").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// ListBattled 返回所有参战过的在榜菜品，排行榜的数据来源
func (s *gormStore) ListBattled() ([]Meal, error) {
	var meals []Meal
	if err := s.db.Where("battles > 0").Order("id asc").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// UpdateStats 为一场对战记账: 场次+1，获胜时胜场同时+1
func (s *gormStore) UpdateStats(id uint, won bool) error {
	updates := map[string]interface{}{
		"battles": gorm.Expr("battles + 1"),
	}
	if won {
		updates["wins"] = gorm.Expr("wins + 1")
	}

	result := s.db.Model(&Meal{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return s.classifyMissing(id)
	}
	return nil
}

// RevertStats 是UpdateStats的补偿逆操作，用于半途失败的成对写入
func (s *gormStore) RevertStats(id uint, won bool) error {
	updates := map[string]interface{}{
		"battles": gorm.Expr("battles - 1"),
	}
	if won {
		updates["wins"] = gorm.Expr("wins - 1")
	}

	result := s.db.Model(&Meal{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return s.classifyMissing(id)
	}
	return nil
}

func (s *gormStore) SoftDelete(id uint) error {
	result := s.db.Delete(&Meal{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return s.classifyMissing(id)
	}
	return nil
}
