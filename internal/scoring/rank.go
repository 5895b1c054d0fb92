package scoring

import "sort"

// Ranked 排名结果，排序用的分数不会带到输出里
type Ranked[T any] struct {
	Rank int
	Item T
}

// Rank 按分数降序稳定排序并赋予竞赛排名：
// 分数相同名次相同，下一个更低的分数从其排序位置 index+1 继续，例如 [90,90,80] → [1,1,3]
// 分数先取两位小数再比较，与展示值一致；同分者保持输入顺序
func Rank[T any](items []T, score func(T) float64) []Ranked[T] {
	type keyed struct {
		item  T
		score float64
	}
	ks := make([]keyed, len(items))
	for i, it := range items {
		ks[i] = keyed{item: it, score: Round2(score(it))}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		return ks[i].score > ks[j].score
	})

	out := make([]Ranked[T], len(ks))
	for i, k := range ks {
		rank := i + 1
		if i > 0 && k.score == ks[i-1].score {
			rank = out[i-1].Rank
		}
		out[i] = Ranked[T]{Rank: rank, Item: k.item}
	}
	return out
}
