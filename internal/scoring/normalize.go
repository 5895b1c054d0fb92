package scoring

import "math"

const (
	maxPercent      = 100.0
	tenPointCeiling = 10.0
)

// Normalize 将评委聚合分换算为 0-100 的百分比
//
//   - nil 视为 0
//   - 大于 100 视为数据错误，截断为 100
//   - 不大于 10 且带小数的值按十分制处理，乘以 10
//   - 其余原样返回；注意不大于 10 的整数（如 6）不会被放大，按 6% 处理
//
// 对带小数且不大于 10 的值不满足幂等：Normalize(7.5)=75，而真实的 7.5% 也会被放大。
func Normalize(raw *float64) float64 {
	if raw == nil {
		return 0
	}
	return NormalizeValue(*raw)
}

// NormalizeValue 同 Normalize，用于非空值
func NormalizeValue(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > maxPercent:
		return maxPercent
	case v <= tenPointCeiling && hasFraction(v):
		return v * 10
	default:
		return v
	}
}

func hasFraction(v float64) bool {
	return v != math.Trunc(v)
}
