package battle

import (
	"sync"

	"github.com/SlpAus/meal-max-backend/internal/meal"
)

// RosterCapacity 是候选席的固定容量，一场对战正好两道菜
const RosterCapacity = 2

// Roster 是进程内唯一的参战候选席。
// 它持有自己的互斥锁，所有操作共享同一个临界区，
// 保证并发的备战、清空和开战不会交错观察到中间状态。
type Roster struct {
	mu         sync.Mutex
	combatants []meal.Meal
}

// NewRoster 创建一个空的候选席
func NewRoster() *Roster {
	return &Roster{
		combatants: make([]meal.Meal, 0, RosterCapacity),
	}
}

// Add 把一道菜追加到候选席末尾，返回追加后的人数。
// 候选席已满、菜品重复或已删除时拒绝并保持原状。
func (r *Roster) Add(m meal.Meal) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.combatants) >= RosterCapacity {
		return len(r.combatants), ErrRosterFull
	}
	if m.DeletedAt.Valid {
		return len(r.combatants), ErrDeletedCombatant
	}
	for _, existing := range r.combatants {
		if existing.ID == m.ID {
			return len(r.combatants), ErrDuplicateCombatant
		}
	}

	r.combatants = append(r.combatants, m)
	return len(r.combatants), nil
}

// Clear 无条件清空候选席，对空席调用是无害的空操作
func (r *Roster) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.combatants = r.combatants[:0]
}

// List 返回候选席的有序副本，先备战的在前
func (r *Roster) List() []meal.Meal {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]meal.Meal, len(r.combatants))
	copy(out, r.combatants)
	return out
}

// PopAll 原子地取走整个候选席并清空它。
// 就绪检查和取走必须在同一个临界区内完成，
// 否则并发的清空或备战可能插进两步之间。
// 人数不足时返回NotReadyError且不做任何改动。
func (r *Roster) PopAll() ([]meal.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.combatants) < RosterCapacity {
		return nil, &NotReadyError{Count: len(r.combatants)}
	}

	out := make([]meal.Meal, len(r.combatants))
	copy(out, r.combatants)
	r.combatants = r.combatants[:0]
	return out, nil
}
