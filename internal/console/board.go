package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"pageant-scoring-system/internal/module/leaderboard"
	"pageant-scoring-system/internal/scoring"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	titleColor = color.New(color.FgYellow, color.Bold)
	emptyColor = color.New(color.FgRed)
)

func scopeLabel(g scoring.Gender) string {
	if g == scoring.GenderNone {
		return "solo"
	}
	return "pair:" + string(g)
}

// RenderSegment 分环节榜单，评委得分列出每位评委的加权总分
func RenderSegment(w io.Writer, board leaderboard.SegmentBoardResp) {
	titleColor.Fprintf(w, "\n%s [%s]\n", board.Segment.Name, scopeLabel(board.Gender))
	if len(board.Leaderboard) == 0 {
		emptyColor.Fprintln(w, "暂无选手")
		return
	}

	paired := board.Gender != scoring.GenderNone
	header := []string{"Rank", "Name"}
	if paired {
		header = append(header, "Member")
	}
	header = append(header, "Score", "Judges")

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for _, e := range board.Leaderboard {
		row := []string{strconv.Itoa(e.Rank), e.Name}
		if paired {
			row = append(row, e.Member)
		}
		judges := make([]string, 0, len(e.Judges))
		for _, j := range e.Judges {
			judges = append(judges, fmt.Sprintf("%s=%s", j.JudgeName, scoring.FormatRaw(j.Total)))
		}
		row = append(row, e.JudgeScore, strings.Join(judges, " "))
		table.Append(row)
	}
	table.Render()
}

// RenderOverall 总榜，每个环节一列显示其加权贡献
func RenderOverall(w io.Writer, board leaderboard.OverallBoardResp) {
	titleColor.Fprintf(w, "\nOverall [%s]\n", scopeLabel(board.Gender))
	if len(board.Leaderboard) == 0 {
		emptyColor.Fprintln(w, "暂无选手")
		return
	}

	paired := board.Gender != scoring.GenderNone
	header := []string{"Rank", "Name"}
	if paired {
		header = append(header, "Member")
	}
	for _, s := range board.Segments {
		header = append(header, fmt.Sprintf("%s (%s%%)", s.SegmentName, scoring.FormatRaw(s.Weight)))
	}
	header = append(header, "Total")

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for _, e := range board.Leaderboard {
		row := []string{strconv.Itoa(e.Rank), e.Name}
		if paired {
			row = append(row, e.Member)
		}
		for _, c := range e.Segments {
			row = append(row, fmt.Sprintf("%.2f", c.WeightedScore))
		}
		row = append(row, e.TotalScore)
		table.Append(row)
	}
	table.Render()
}
