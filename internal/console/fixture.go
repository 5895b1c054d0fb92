// Package console 命令行工具：按 YAML 描述批量录入比赛数据，并在终端渲染排行榜
package console

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Fixture 一场比赛的完整描述，评委、选手、环节之间用名字互相引用
type Fixture struct {
	Judges         []string            `yaml:"judges"`
	Candidates     []CandidateSpec     `yaml:"candidates"`
	PairCandidates []PairCandidateSpec `yaml:"pair_candidates"`
	Segments       []SegmentSpec       `yaml:"segments"`
	PairSegments   []PairSegmentSpec   `yaml:"pair_segments"`
	Weights        []WeightSpec        `yaml:"weights"`
	PairWeights    []WeightSpec        `yaml:"pair_weights"`
	Scores         []ScoreSheet        `yaml:"scores"`
	PairScores     []ScoreSheet        `yaml:"pair_scores"`
}

type CandidateSpec struct {
	Number string `yaml:"number"`
	Name   string `yaml:"name"`
}

type PairCandidateSpec struct {
	Number     string `yaml:"number"`
	Name       string `yaml:"name"`
	MaleName   string `yaml:"male_name"`
	FemaleName string `yaml:"female_name"`
}

type CriterionSpec struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

type SegmentSpec struct {
	Name     string          `yaml:"name"`
	Criteria []CriterionSpec `yaml:"criteria"`
}

type PairSegmentSpec struct {
	Name           string          `yaml:"name"`
	MaleName       string          `yaml:"male_name"`
	FemaleName     string          `yaml:"female_name"`
	MaleCriteria   []CriterionSpec `yaml:"male_criteria"`
	FemaleCriteria []CriterionSpec `yaml:"female_criteria"`
}

// WeightSpec 总榜权重，gender 只在组合赛中使用
type WeightSpec struct {
	Segment string  `yaml:"segment"`
	Gender  string  `yaml:"gender"`
	Weight  float64 `yaml:"weight"`
}

// ScoreSheet 一位评委对一位选手在一个环节的打分，criteria 为评分项名到十分制分数
type ScoreSheet struct {
	Judge    string             `yaml:"judge"`
	Subject  string             `yaml:"subject"`
	Gender   string             `yaml:"gender"`
	Segment  string             `yaml:"segment"`
	Criteria map[string]float64 `yaml:"criteria"`
}

func LoadFixture(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read fixture %s", path)
	}
	return ParseFixture(raw)
}

func ParseFixture(raw []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, "parse fixture")
	}
	return &f, nil
}
