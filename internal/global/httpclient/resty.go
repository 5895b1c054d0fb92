// Package httpclient 调用本服务 HTTP API 的客户端，供命令行工具使用
package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pageant-scoring-system/internal/model"
	"pageant-scoring-system/internal/module/leaderboard"
	"pageant-scoring-system/internal/module/pairleaderboard"
	"pageant-scoring-system/internal/module/score"
	"pageant-scoring-system/internal/module/segment"
	"pageant-scoring-system/internal/scoring"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// APIError 服务端返回的统一错误体
type APIError struct {
	Status  int
	Code    int32  `json:"code"`
	Kind    string `json:"error"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Code, e.Kind, e.Message)
}

type envelope struct {
	Code    int32           `json:"code"`
	Kind    string          `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	r *resty.Client
}

// New baseURL 需包含路由前缀，例如 http://127.0.0.1:8080/api
func New(baseURL string) *Client {
	return &Client{
		r: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second).
			SetJSONMarshaler(json.Marshal).
			SetJSONUnmarshaler(json.Unmarshal).
			SetHeader("Content-Type", "application/json"),
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var env envelope
	req := c.r.R().SetContext(ctx).SetResult(&env).SetError(&env)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}
	if resp.IsError() || env.Code != 200 {
		return &APIError{Status: resp.StatusCode(), Code: env.Code, Kind: env.Kind, Message: env.Message}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) CreateJudge(ctx context.Context, name string) (model.Judge, error) {
	var j model.Judge
	err := c.do(ctx, http.MethodPost, "/judges", map[string]string{"name": name}, &j)
	return j, err
}

func (c *Client) CreateCandidate(ctx context.Context, number, name string) (model.Candidate, error) {
	var cand model.Candidate
	err := c.do(ctx, http.MethodPost, "/candidates", map[string]string{"number": number, "name": name}, &cand)
	return cand, err
}

func (c *Client) CreatePairCandidate(ctx context.Context, number, name, male, female string) (model.PairCandidate, error) {
	var p model.PairCandidate
	err := c.do(ctx, http.MethodPost, "/pair-candidates", map[string]string{
		"number":      number,
		"name":        name,
		"male_name":   male,
		"female_name": female,
	}, &p)
	return p, err
}

func (c *Client) CreateSegment(ctx context.Context, req segment.SegmentCreateReq) (model.Segment, error) {
	var s model.Segment
	err := c.do(ctx, http.MethodPost, "/segments", req, &s)
	return s, err
}

func (c *Client) CreatePairSegment(ctx context.Context, req segment.PairSegmentCreateReq) (model.PairSegment, error) {
	var s model.PairSegment
	err := c.do(ctx, http.MethodPost, "/pair-segments", req, &s)
	return s, err
}

func (c *Client) SubmitScores(ctx context.Context, req score.ScoreSaveReq) error {
	return c.do(ctx, http.MethodPost, "/scores", req, nil)
}

func (c *Client) SaveWeights(ctx context.Context, req leaderboard.WeightSaveReq) error {
	return c.do(ctx, http.MethodPost, "/overall-leaderboard/save", req, nil)
}

func (c *Client) StorePairWeights(ctx context.Context, req pairleaderboard.WeightSaveReq) error {
	return c.do(ctx, http.MethodPost, "/PairLeaderboard/store", req, nil)
}

// SegmentBoard gender 为空时查询单人赛
func (c *Client) SegmentBoard(ctx context.Context, segmentID uint, gender scoring.Gender) (leaderboard.SegmentBoardResp, error) {
	path := "/leaderboard/" + strconv.FormatUint(uint64(segmentID), 10)
	if gender != scoring.GenderNone {
		path = fmt.Sprintf("/PairLeaderboard/segment/%d/%s", segmentID, gender)
	}
	var board leaderboard.SegmentBoardResp
	err := c.do(ctx, http.MethodGet, path, nil, &board)
	return board, err
}

// OverallBoard gender 为空时查询单人赛
func (c *Client) OverallBoard(ctx context.Context, gender scoring.Gender) (leaderboard.OverallBoardResp, error) {
	path := "/leaderboard/overall"
	if gender != scoring.GenderNone {
		path = "/PairLeaderboard/PairOverAll/" + string(gender)
	}
	var board leaderboard.OverallBoardResp
	err := c.do(ctx, http.MethodGet, path, nil, &board)
	return board, err
}

func (c *Client) Segments(ctx context.Context) ([]model.Segment, error) {
	var s []model.Segment
	err := c.do(ctx, http.MethodGet, "/segments", nil, &s)
	return s, err
}

func (c *Client) PairSegments(ctx context.Context) ([]model.PairSegment, error) {
	var s []model.PairSegment
	err := c.do(ctx, http.MethodGet, "/pair-segments", nil, &s)
	return s, err
}
