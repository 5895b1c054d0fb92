package scoring

import "sort"

// JudgeTotal 单个评委在某对象某环节上各评分项的加权和
type JudgeTotal struct {
	JudgeID   uint    `json:"judge_id"`
	JudgeName string  `json:"judge_name"`
	Total     float64 `json:"judge_total"`
}

// SegmentAggregate 某对象在某环节上的评委聚合结果
type SegmentAggregate struct {
	SubjectID uint
	SegmentID uint
	// Raw 为各评委加权和的算术平均，未被评分时为 0
	Raw    float64
	Judges []JudgeTotal
}

// Scored 是否至少有一位评委打过分；未评分与得 0 分需要区分展示
func (a SegmentAggregate) Scored() bool {
	return len(a.Judges) > 0
}

// Aggregate 计算一个对象在一个环节上的评委平均分
// 分母是实际打过分的评委人数，已分配但未打分的评委不计入
func Aggregate(subjectID, segmentID uint, rows []ScoreRow) SegmentAggregate {
	agg := SegmentAggregate{SubjectID: subjectID, SegmentID: segmentID}

	byJudge := make(map[uint]*JudgeTotal)
	for _, r := range rows {
		if r.SubjectID != subjectID || r.SegmentID != segmentID {
			continue
		}
		jt, ok := byJudge[r.JudgeID]
		if !ok {
			jt = &JudgeTotal{JudgeID: r.JudgeID, JudgeName: r.JudgeName}
			byJudge[r.JudgeID] = jt
		}
		jt.Total += r.Value
	}
	if len(byJudge) == 0 {
		return agg
	}

	agg.Judges = make([]JudgeTotal, 0, len(byJudge))
	for _, jt := range byJudge {
		agg.Judges = append(agg.Judges, *jt)
	}
	sort.Slice(agg.Judges, func(i, j int) bool {
		return agg.Judges[i].JudgeID < agg.Judges[j].JudgeID
	})
	agg.Raw = mean(agg.Judges)
	return agg
}

// mean 按分值升序累加，同一组分数无论评委顺序如何结果都逐位相同
func mean(judges []JudgeTotal) float64 {
	totals := make([]float64, len(judges))
	for i, jt := range judges {
		totals[i] = jt.Total
	}
	sort.Float64s(totals)
	sum := 0.0
	for _, v := range totals {
		sum += v
	}
	return sum / float64(len(totals))
}

type aggregateKey struct {
	subjectID uint
	segmentID uint
}

// aggregateAll 一次遍历把分数行按 (对象, 环节) 分组后聚合
func aggregateAll(rows []ScoreRow) map[aggregateKey]SegmentAggregate {
	grouped := make(map[aggregateKey][]ScoreRow)
	for _, r := range rows {
		k := aggregateKey{subjectID: r.SubjectID, segmentID: r.SegmentID}
		grouped[k] = append(grouped[k], r)
	}
	out := make(map[aggregateKey]SegmentAggregate, len(grouped))
	for k, rs := range grouped {
		out[k] = Aggregate(k.subjectID, k.segmentID, rs)
	}
	return out
}
