package battle

import (
	"errors"
	"fmt"
)

var (
	// ErrRosterFull 表示候选席已有两名参战者，无法继续备战
	ErrRosterFull = errors.New("combatant roster is full")
	// ErrDuplicateCombatant 表示同一道菜不能在候选席出现两次
	ErrDuplicateCombatant = errors.New("meal is already on the roster")
	// ErrDeletedCombatant 表示已删除的菜品不能备战
	ErrDeletedCombatant = errors.New("deleted meal cannot be prepped")
	// ErrInvalidInput 表示判定器的输入不是两道不同的菜
	ErrInvalidInput = errors.New("battle requires two distinct meals")
)

// NotReadyError 表示候选席未满两人就发起了对战
type NotReadyError struct {
	// Count 是出错时候选席上的参战者数量
	Count int
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("battle is not ready: %d combatant(s) prepped", e.Count)
}

// PersistenceError 表示对战结果的成对统计写入没有全部完成。
// 此时候选席已被清空，错误中携带双方ID以便调用方核对或重试。
type PersistenceError struct {
	MealAID uint
	MealBID uint
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist battle stats for meals %d and %d: %v", e.MealAID, e.MealBID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
