package ping_test

import (
	"net/http"
	"testing"

	"pageant-scoring-system/test"

	"github.com/stretchr/testify/assert"
)

func TestPing(t *testing.T) {
	test.SetupDB(t)
	r := test.NewRouter()

	w, resp := test.Do(t, r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := test.Data[map[string]string](t, resp)
	assert.Equal(t, "pong", data["message"])
	assert.Equal(t, "ok", data["database"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
