package scoring

import (
	"fmt"
	"math"
	"strconv"
)

// NotScored 尚未有评委打分时的展示值，与 0 分区分
const NotScored = "N/A"

// Round2 保留两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatRaw 未归一化分数的展示形式，去掉多余的 0，例如 74、74.5
func FormatRaw(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', -1, 64)
}

// FormatPercent 百分比展示形式，例如 86.00%
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
