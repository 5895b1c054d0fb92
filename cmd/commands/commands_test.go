package commands_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"pageant-scoring-system/cmd/commands"
	"pageant-scoring-system/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSeedThenBoard(t *testing.T) {
	test.SetupDB(t)
	srv := httptest.NewServer(test.NewRouter())
	t.Cleanup(srv.Close)

	_, err := run(t, "seed", "--file", "../../internal/console/testdata/contest.yaml", "--url", srv.URL)
	require.NoError(t, err)

	out, err := run(t, "board", "--url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Overall [solo]")
	assert.Contains(t, out, "88.00%")

	out, err = run(t, "board", "--url", srv.URL, "--segment", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Talent [solo]")

	out, err = run(t, "board", "--url", srv.URL, "--gender", "male")
	require.NoError(t, err)
	assert.Contains(t, out, "Overall [pair:male]")
	assert.Contains(t, out, "90.00%")
}

func TestBoardRejectsUnknownGender(t *testing.T) {
	_, err := run(t, "board", "--gender", "other", "--url", "http://127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown gender")
}

func TestBoardNotConfigured(t *testing.T) {
	test.SetupDB(t)
	srv := httptest.NewServer(test.NewRouter())
	t.Cleanup(srv.Close)

	_, err := run(t, "board", "--url", srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not_configured")
}
