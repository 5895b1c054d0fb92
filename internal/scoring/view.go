package scoring

// 接口返回的榜单行；排序用的浮点分数只以格式化后的字符串出现

type SegmentEntry struct {
	Rank       int          `json:"rank"`
	SubjectID  uint         `json:"subject_id"`
	Name       string       `json:"name"`
	Member     string       `json:"member,omitempty"`
	JudgeScore string       `json:"judge_score"`
	Judges     []JudgeTotal `json:"judges"`
}

type ContributionEntry struct {
	SegmentID       uint    `json:"segment_id"`
	SegmentName     string  `json:"segment_name"`
	Weight          float64 `json:"weight"`
	RawScore        float64 `json:"raw_score"`
	NormalizedScore float64 `json:"normalized_score"`
	WeightedScore   float64 `json:"weighted_score"`
	JudgeTotal      string  `json:"judge_total"`
}

type OverallEntry struct {
	Rank       int                 `json:"rank"`
	SubjectID  uint                `json:"subject_id"`
	Name       string              `json:"name"`
	Member     string              `json:"member,omitempty"`
	TotalScore string              `json:"total_score"`
	Segments   []ContributionEntry `json:"segments"`
}

// Entries 分环节榜单的展示形式，未评分显示 N/A
func (b *SegmentBoard) Entries() []SegmentEntry {
	out := make([]SegmentEntry, 0, len(b.Standings))
	for _, r := range b.Standings {
		s := r.Item
		entry := SegmentEntry{
			Rank:       r.Rank,
			SubjectID:  s.Subject.ID,
			Name:       s.Subject.Name,
			Member:     s.Subject.Member,
			JudgeScore: NotScored,
			Judges:     make([]JudgeTotal, 0, len(s.Aggregate.Judges)),
		}
		if s.Aggregate.Scored() {
			entry.JudgeScore = FormatRaw(s.Aggregate.Raw)
		}
		for _, j := range s.Aggregate.Judges {
			j.Total = Round2(j.Total)
			entry.Judges = append(entry.Judges, j)
		}
		out = append(out, entry)
	}
	return out
}

// Entries 总榜的展示形式，总分为两位小数百分比
func (b *OverallBoard) Entries() []OverallEntry {
	out := make([]OverallEntry, 0, len(b.Standings))
	for _, r := range b.Standings {
		s := r.Item
		entry := OverallEntry{
			Rank:       r.Rank,
			SubjectID:  s.Subject.ID,
			Name:       s.Subject.Name,
			Member:     s.Subject.Member,
			TotalScore: FormatPercent(s.Overall.Total),
			Segments:   make([]ContributionEntry, 0, len(s.Overall.Breakdown)),
		}
		for _, c := range s.Overall.Breakdown {
			judgeTotal := NotScored
			if c.Scored {
				judgeTotal = FormatPercent(c.Normalized)
			}
			entry.Segments = append(entry.Segments, ContributionEntry{
				SegmentID:       c.SegmentID,
				SegmentName:     c.SegmentName,
				Weight:          c.Weight,
				RawScore:        Round2(c.Raw),
				NormalizedScore: Round2(c.Normalized),
				WeightedScore:   Round2(c.Weighted),
				JudgeTotal:      judgeTotal,
			})
		}
		out = append(out, entry)
	}
	return out
}
