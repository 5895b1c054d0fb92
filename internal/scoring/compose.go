package scoring

import "github.com/pkg/errors"

// SegmentContribution 总榜中单个环节的明细
type SegmentContribution struct {
	SegmentID   uint
	SegmentName string
	Weight      float64
	Raw         float64
	Normalized  float64
	// Weighted = Normalized × Weight / 100
	Weighted float64
	Scored   bool
}

// Overall 某对象的总榜成绩
type Overall struct {
	Total     float64
	Breakdown []SegmentContribution
}

// Compose 按环节权重合成总分；权重配置为空时返回 ErrNotConfigured
// 未出现在 weights 中的环节不参与计算，也不出现在明细里
func Compose(weights []SegmentWeight, aggregates map[uint]SegmentAggregate) (Overall, error) {
	if len(weights) == 0 {
		return Overall{}, errors.WithStack(ErrNotConfigured)
	}

	out := Overall{Breakdown: make([]SegmentContribution, 0, len(weights))}
	for _, w := range weights {
		agg := aggregates[w.SegmentID]
		var raw *float64
		if agg.Scored() {
			raw = &agg.Raw
		}
		normalized := Normalize(raw)
		weighted := normalized * w.Weight / 100

		out.Total += weighted
		out.Breakdown = append(out.Breakdown, SegmentContribution{
			SegmentID:   w.SegmentID,
			SegmentName: w.SegmentName,
			Weight:      w.Weight,
			Raw:         agg.Raw,
			Normalized:  normalized,
			Weighted:    weighted,
			Scored:      agg.Scored(),
		})
	}
	return out, nil
}
