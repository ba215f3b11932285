package battle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SlpAus/meal-max-backend/internal/meal"
)

// Service 是对战引擎的编排层。
// 它把备战、清空和开战组织在唯一的候选席之上，
// 并负责把对战结果写回菜品仓库。
type Service struct {
	store    meal.Store
	resolver *Resolver
	roster   *Roster

	// afterBattle 在一场对战成功落库后被调用，用于失效排行榜缓存
	afterBattle func()
}

// NewService 创建对战编排服务
func NewService(store meal.Store, resolver *Resolver, roster *Roster) *Service {
	return &Service{
		store:    store,
		resolver: resolver,
		roster:   roster,
	}
}

// SetAfterBattleHook 注册一场对战成功后的回调
func (s *Service) SetAfterBattleHook(hook func()) {
	s.afterBattle = hook
}

// Prep 按标识符（数字ID或名称）查找菜品并送入候选席，返回席上人数。
// 纯数字的标识符先按ID解释，查不到再按名称解释。
func (s *Service) Prep(identifier string) (int, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return len(s.roster.List()), ErrInvalidInput
	}

	m, err := s.lookup(identifier)
	if err != nil {
		return len(s.roster.List()), err
	}

	return s.roster.Add(*m)
}

func (s *Service) lookup(identifier string) (*meal.Meal, error) {
	if id, convErr := strconv.ParseUint(identifier, 10, 64); convErr == nil {
		m, err := s.store.GetByID(uint(id))
		if err == nil {
			return m, nil
		}
		if !errors.Is(err, meal.ErrNotFound) {
			return nil, err
		}
		// ID查不到时回退到按名称查找，允许纯数字的菜名
	}
	return s.store.GetByName(identifier)
}

// Clear 无条件清空候选席
func (s *Service) Clear() {
	s.roster.Clear()
}

// Combatants 返回候选席上的菜品，先备战的在前
func (s *Service) Combatants() []meal.Meal {
	return s.roster.List()
}

// StartBattle 发起一场对战。
// 候选席在自己的临界区内被原子地取空，随机判定和两次统计写入
// 都发生在锁外，避免把持久化I/O扣在锁里。
// 无论结果如何，开战之后候选席都是空的。
func (s *Service) StartBattle() (*Result, error) {
	combatants, err := s.roster.PopAll()
	if err != nil {
		return nil, err
	}
	mealA, mealB := combatants[0], combatants[1]

	result, err := s.resolver.Resolve(&mealA, &mealB)
	if err != nil {
		return nil, err
	}

	// 两次统计写入是一个逻辑单元：第二笔失败时对第一笔做补偿回退，
	// 无论补偿是否成功都上报PersistenceError，不宣布胜者。
	if err := s.store.UpdateStats(result.WinnerID, true); err != nil {
		return nil, &PersistenceError{MealAID: mealA.ID, MealBID: mealB.ID, Err: err}
	}
	if err := s.store.UpdateStats(result.LoserID, false); err != nil {
		if revertErr := s.store.RevertStats(result.WinnerID, true); revertErr != nil {
			fmt.Printf("严重错误: 对战统计的补偿回退失败 (meal %d): %v\n", result.WinnerID, revertErr)
		}
		return nil, &PersistenceError{MealAID: mealA.ID, MealBID: mealB.ID, Err: err}
	}

	if s.afterBattle != nil {
		s.afterBattle()
	}

	return result, nil
}
