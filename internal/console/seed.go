package console

import (
	"context"
	"log/slog"

	"pageant-scoring-system/internal/global/httpclient"
	"pageant-scoring-system/internal/model"
	"pageant-scoring-system/internal/module/leaderboard"
	"pageant-scoring-system/internal/module/pairleaderboard"
	"pageant-scoring-system/internal/module/score"
	"pageant-scoring-system/internal/module/segment"
	"pageant-scoring-system/internal/scoring"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Summary 本次录入的数量统计
type Summary struct {
	Judges         int
	Candidates     int
	PairCandidates int
	Segments       int
	PairSegments   int
	Sheets         int
	Weights        int
}

// Seeder 先顺序创建实体，再按评委并发提交分数，最后写入总榜权重
type Seeder struct {
	client      *httpclient.Client
	log         *slog.Logger
	concurrency int

	judges       map[string]uint
	candidates   map[string]uint
	pairs        map[string]uint
	segments     map[string]model.Segment
	pairSegments map[string]model.PairSegment
}

func NewSeeder(client *httpclient.Client, log *slog.Logger, concurrency int) *Seeder {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Seeder{
		client:       client,
		log:          log,
		concurrency:  concurrency,
		judges:       map[string]uint{},
		candidates:   map[string]uint{},
		pairs:        map[string]uint{},
		segments:     map[string]model.Segment{},
		pairSegments: map[string]model.PairSegment{},
	}
}

func (s *Seeder) Run(ctx context.Context, f *Fixture) (Summary, error) {
	var sum Summary

	for _, name := range f.Judges {
		j, err := s.client.CreateJudge(ctx, name)
		if err != nil {
			return sum, errors.Wrapf(err, "create judge %q", name)
		}
		s.judges[name] = j.ID
		sum.Judges++
	}
	for _, c := range f.Candidates {
		cand, err := s.client.CreateCandidate(ctx, c.Number, c.Name)
		if err != nil {
			return sum, errors.Wrapf(err, "create candidate %q", c.Name)
		}
		s.candidates[c.Name] = cand.ID
		sum.Candidates++
	}
	for _, p := range f.PairCandidates {
		pair, err := s.client.CreatePairCandidate(ctx, p.Number, p.Name, p.MaleName, p.FemaleName)
		if err != nil {
			return sum, errors.Wrapf(err, "create pair candidate %q", p.Name)
		}
		s.pairs[p.Name] = pair.ID
		sum.PairCandidates++
	}
	for _, seg := range f.Segments {
		created, err := s.client.CreateSegment(ctx, segment.SegmentCreateReq{
			Name:     seg.Name,
			Criteria: criteriaReq(seg.Criteria),
		})
		if err != nil {
			return sum, errors.Wrapf(err, "create segment %q", seg.Name)
		}
		s.segments[seg.Name] = created
		sum.Segments++
	}
	for _, seg := range f.PairSegments {
		created, err := s.client.CreatePairSegment(ctx, segment.PairSegmentCreateReq{
			Name:           seg.Name,
			MaleName:       seg.MaleName,
			FemaleName:     seg.FemaleName,
			MaleCriteria:   criteriaReq(seg.MaleCriteria),
			FemaleCriteria: criteriaReq(seg.FemaleCriteria),
		})
		if err != nil {
			return sum, errors.Wrapf(err, "create pair segment %q", seg.Name)
		}
		s.pairSegments[seg.Name] = created
		sum.PairSegments++
	}

	sheets := make([]ScoreSheet, 0, len(f.Scores)+len(f.PairScores))
	sheets = append(sheets, f.Scores...)
	sheets = append(sheets, f.PairScores...)
	n, err := s.submit(ctx, sheets)
	sum.Sheets = n
	if err != nil {
		return sum, err
	}

	if len(f.Weights) > 0 {
		if err := s.saveWeights(ctx, f.Weights); err != nil {
			return sum, err
		}
		sum.Weights += len(f.Weights)
	}
	if len(f.PairWeights) > 0 {
		if err := s.savePairWeights(ctx, f.PairWeights); err != nil {
			return sum, err
		}
		sum.Weights += len(f.PairWeights)
	}

	s.log.Info("录入完成",
		"judges", sum.Judges,
		"candidates", sum.Candidates,
		"pair_candidates", sum.PairCandidates,
		"sheets", sum.Sheets,
	)
	return sum, nil
}

// submit 同一评委的分数顺序提交，保证后提交的覆盖先提交的；不同评委之间并发
func (s *Seeder) submit(ctx context.Context, sheets []ScoreSheet) (int, error) {
	reqs := make([]score.ScoreSaveReq, 0, len(sheets))
	byJudge := map[uint][]int{}
	var order []uint
	for _, sheet := range sheets {
		req, err := s.scoreReq(sheet)
		if err != nil {
			return 0, err
		}
		if _, ok := byJudge[req.JudgeID]; !ok {
			order = append(order, req.JudgeID)
		}
		byJudge[req.JudgeID] = append(byJudge[req.JudgeID], len(reqs))
		reqs = append(reqs, req)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, judgeID := range order {
		judgeID := judgeID
		idx := byJudge[judgeID]
		g.Go(func() error {
			for _, i := range idx {
				if err := s.client.SubmitScores(ctx, reqs[i]); err != nil {
					return errors.Wrapf(err, "submit scores of judge %d for subject %d", judgeID, reqs[i].SubjectID)
				}
			}
			s.log.Debug("评委分数已提交", "judge_id", judgeID, "sheets", len(idx))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(reqs), nil
}

func (s *Seeder) scoreReq(sheet ScoreSheet) (score.ScoreSaveReq, error) {
	judgeID, ok := s.judges[sheet.Judge]
	if !ok {
		return score.ScoreSaveReq{}, errors.Errorf("unknown judge %q", sheet.Judge)
	}
	req := score.ScoreSaveReq{JudgeID: judgeID, Gender: sheet.Gender}

	var segmentID uint
	criteria := map[string]uint{}
	if sheet.Gender == "" {
		id, ok := s.candidates[sheet.Subject]
		if !ok {
			return req, errors.Errorf("unknown candidate %q", sheet.Subject)
		}
		seg, ok := s.segments[sheet.Segment]
		if !ok {
			return req, errors.Errorf("unknown segment %q", sheet.Segment)
		}
		req.SubjectID, segmentID = id, seg.ID
		for _, cr := range seg.Criteria {
			criteria[cr.Name] = cr.ID
		}
	} else {
		gender, err := scoring.ParseGender(sheet.Gender)
		if err != nil {
			return req, err
		}
		id, ok := s.pairs[sheet.Subject]
		if !ok {
			return req, errors.Errorf("unknown pair candidate %q", sheet.Subject)
		}
		seg, ok := s.pairSegments[sheet.Segment]
		if !ok {
			return req, errors.Errorf("unknown pair segment %q", sheet.Segment)
		}
		req.Gender = string(gender)
		req.SubjectID, segmentID = id, seg.ID
		for _, cr := range seg.Criteria {
			if cr.Gender == gender {
				criteria[cr.Name] = cr.ID
			}
		}
	}

	for name, value := range sheet.Criteria {
		criterionID, ok := criteria[name]
		if !ok {
			return req, errors.Errorf("segment %q has no criterion %q", sheet.Segment, name)
		}
		v := value
		req.Scores = append(req.Scores, score.ScoreItem{
			SegmentID:   segmentID,
			CriterionID: criterionID,
			Score:       &v,
		})
	}
	return req, nil
}

func (s *Seeder) saveWeights(ctx context.Context, weights []WeightSpec) error {
	req := leaderboard.WeightSaveReq{Segments: make([]leaderboard.WeightItem, 0, len(weights))}
	for _, w := range weights {
		seg, ok := s.segments[w.Segment]
		if !ok {
			return errors.Errorf("unknown segment %q", w.Segment)
		}
		v := w.Weight
		req.Segments = append(req.Segments, leaderboard.WeightItem{SegmentID: seg.ID, Weight: &v})
	}
	return errors.Wrap(s.client.SaveWeights(ctx, req), "save weights")
}

func (s *Seeder) savePairWeights(ctx context.Context, weights []WeightSpec) error {
	req := pairleaderboard.WeightSaveReq{Segments: make([]pairleaderboard.WeightItem, 0, len(weights))}
	for _, w := range weights {
		seg, ok := s.pairSegments[w.Segment]
		if !ok {
			return errors.Errorf("unknown pair segment %q", w.Segment)
		}
		v := w.Weight
		req.Segments = append(req.Segments, pairleaderboard.WeightItem{SegmentID: seg.ID, Gender: w.Gender, Weight: &v})
	}
	return errors.Wrap(s.client.StorePairWeights(ctx, req), "store pair weights")
}

func criteriaReq(specs []CriterionSpec) []segment.CriterionReq {
	out := make([]segment.CriterionReq, 0, len(specs))
	for _, c := range specs {
		out = append(out, segment.CriterionReq{Name: c.Name, Weight: c.Weight})
	}
	return out
}
