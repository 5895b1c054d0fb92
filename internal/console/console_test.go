package console_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"

	"pageant-scoring-system/internal/console"
	"pageant-scoring-system/internal/global/httpclient"
	"pageant-scoring-system/internal/scoring"
	"pageant-scoring-system/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) (*httpclient.Client, *console.Fixture) {
	t.Helper()
	test.SetupDB(t)
	srv := httptest.NewServer(test.NewRouter())
	t.Cleanup(srv.Close)

	f, err := console.LoadFixture("testdata/contest.yaml")
	require.NoError(t, err)

	client := httpclient.New(srv.URL)
	sum, err := console.NewSeeder(client, slog.Default(), 2).Run(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, console.Summary{
		Judges:         2,
		Candidates:     2,
		PairCandidates: 2,
		Segments:       2,
		PairSegments:   1,
		Sheets:         12,
		Weights:        4,
	}, sum)
	return client, f
}

func TestSeedSoloBoards(t *testing.T) {
	client, _ := seeded(t)
	ctx := context.Background()

	overall, err := client.OverallBoard(ctx, scoring.GenderNone)
	require.NoError(t, err)
	require.Len(t, overall.Leaderboard, 2)
	assert.Equal(t, "Bella", overall.Leaderboard[0].Name)
	assert.Equal(t, "88.00%", overall.Leaderboard[0].TotalScore)
	assert.Equal(t, "Alice", overall.Leaderboard[1].Name)
	assert.Equal(t, "84.60%", overall.Leaderboard[1].TotalScore)

	segments, err := client.Segments(ctx)
	require.NoError(t, err)
	require.Len(t, segments, 2)

	talent, err := client.SegmentBoard(ctx, segments[0].ID, scoring.GenderNone)
	require.NoError(t, err)
	require.Len(t, talent.Leaderboard, 2)
	alice := talent.Leaderboard[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, "81", alice.JudgeScore)
	require.Len(t, alice.Judges, 2)
	assert.Equal(t, 82.0, alice.Judges[0].Total)
	assert.Equal(t, 80.0, alice.Judges[1].Total)

	var buf bytes.Buffer
	console.RenderSegment(&buf, talent)
	assert.Contains(t, buf.String(), "Talent [solo]")
	assert.Contains(t, buf.String(), "Ann=82 Ben=80")

	buf.Reset()
	console.RenderOverall(&buf, overall)
	assert.Contains(t, buf.String(), "Overall [solo]")
	assert.Contains(t, buf.String(), "84.60%")
}

func TestSeedPairBoards(t *testing.T) {
	client, _ := seeded(t)
	ctx := context.Background()

	male, err := client.OverallBoard(ctx, scoring.GenderMale)
	require.NoError(t, err)
	require.Len(t, male.Leaderboard, 2)
	assert.Equal(t, "Bob", male.Leaderboard[0].Member)
	assert.Equal(t, "90.00%", male.Leaderboard[0].TotalScore)
	assert.Equal(t, "80.00%", male.Leaderboard[1].TotalScore)

	female, err := client.OverallBoard(ctx, scoring.GenderFemale)
	require.NoError(t, err)
	require.Len(t, female.Leaderboard, 2)
	assert.Equal(t, "Amy", female.Leaderboard[0].Member)
	assert.Equal(t, "60.00%", female.Leaderboard[0].TotalScore)
	assert.Equal(t, "0.00%", female.Leaderboard[1].TotalScore)

	var buf bytes.Buffer
	console.RenderOverall(&buf, female)
	assert.Contains(t, buf.String(), "Overall [pair:female]")
	assert.Contains(t, buf.String(), "DANCE (FOLLOW) (100%)")
}

func TestSeedUnknownReference(t *testing.T) {
	test.SetupDB(t)
	srv := httptest.NewServer(test.NewRouter())
	t.Cleanup(srv.Close)

	f, err := console.ParseFixture([]byte("judges: [Ann]\nscores:\n  - {judge: Zed, subject: Alice, segment: Talent, criteria: {Skill: 9}}\n"))
	require.NoError(t, err)

	_, err = console.NewSeeder(httpclient.New(srv.URL), slog.Default(), 1).Run(context.Background(), f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown judge "Zed"`)
}

func TestClientSurfacesAPIError(t *testing.T) {
	test.SetupDB(t)
	srv := httptest.NewServer(test.NewRouter())
	t.Cleanup(srv.Close)

	_, err := httpclient.New(srv.URL).OverallBoard(context.Background(), scoring.GenderNone)
	var apiErr *httpclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, int32(40002), apiErr.Code)
	assert.Equal(t, "not_configured", apiErr.Kind)
	assert.Equal(t, 400, apiErr.Status)
}
