package test

import (
	"encoding/json"
	"testing"

	"pageant-scoring-system/internal/global/response"

	"github.com/stretchr/testify/require"
)

// ResponseBody 与 response.ResponseBody 相同，data 保留原始 JSON 以便按需解码
type ResponseBody struct {
	Code   int32           `json:"code"`
	Kind   string          `json:"error"`
	Msg    string          `json:"message"`
	Origin string          `json:"origin"`
	Data   json.RawMessage `json:"data"`
}

func ErrorEqual(t *testing.T, expected *response.Error, resp ResponseBody) {
	t.Helper()
	require.Equal(t, expected.Code, resp.Code)
	require.Equal(t, expected.Kind, resp.Kind)
}

func NoError(t *testing.T, resp ResponseBody) {
	t.Helper()
	require.Equal(t, response.CodeSuccess, resp.Code, "error=%s message=%s origin=%s", resp.Kind, resp.Msg, resp.Origin)
}

// Data 断言成功并解码 data
func Data[T any](t *testing.T, resp ResponseBody) T {
	t.Helper()
	NoError(t, resp)
	var v T
	require.NoError(t, json.Unmarshal(resp.Data, &v))
	return v
}
