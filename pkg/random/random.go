package random

import (
	"math/rand"
	"time"
)

// Source 是对战判定所需的均匀随机数来源。
// 它只要求一个方法，以便测试中用固定种子或固定序列替换。
type Source interface {
	// Float64 返回 [0, 1) 区间内的均匀随机数
	Float64() float64
}

// NewSeeded 返回一个由指定种子驱动的随机源，相同种子产生相同序列。
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewDefault 返回一个以当前时间播种的随机源，用于生产环境。
func NewDefault() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
