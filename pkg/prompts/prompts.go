package prompts

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

const defaultPromptsPath = "prompts.yaml"

type Prompts struct {
	System     SystemPrompts     `yaml:"system"`
	Ideas      IdeaPrompts       `yaml:"ideas"`
	Competitor CompetitorPrompts `yaml:"competitor"`
	Keywords   KeywordPrompts    `yaml:"keywords"`
	Captions   CaptionPrompts    `yaml:"captions"`
	Ranks      RankPrompts       `yaml:"ranks"`
	Thumbnail  ThumbnailPrompts  `yaml:"thumbnail"`
	Repurpose  RepurposePrompts  `yaml:"repurpose"`
}

type SystemPrompts struct {
	Ideas      string `yaml:"ideas"`
	Competitor string `yaml:"competitor"`
	Keywords   string `yaml:"keywords"`
	Captions   string `yaml:"captions"`
	Ranks      string `yaml:"ranks"`
	Thumbnail  string `yaml:"thumbnail"`
	Repurpose  string `yaml:"repurpose"`
}

type IdeaPrompts struct {
	Single string `yaml:"single"`
}

type CompetitorPrompts struct {
	Analyze string `yaml:"analyze"`
}

type KeywordPrompts struct {
	Score string `yaml:"score"`
}

type CaptionPrompts struct {
	Generate string `yaml:"generate"`
}

type RankPrompts struct {
	Simulate string `yaml:"simulate"`
}

type ThumbnailPrompts struct {
	Critique string `yaml:"critique"`
}

type RepurposePrompts struct {
	Scripts string `yaml:"scripts"`
}

type IdeaParams struct {
	Category       string
	Subcategory    string
	TargetAudience string
	Language       string
	Format         string
	Tone           string
	ExistingTitles []string
}

type CompetitorParams struct {
	SourceURL   string
	VideoTitles []string
	VideoTags   []string
}

type KeywordParams struct {
	Topic       string
	Suggestions []string
}

type CaptionParams struct {
	Topic string
	Count int
}

type RankParams struct {
	Topic string
	URL   string
}

type ThumbnailParams struct {
	VideoTitle string
}

type RepurposeParams struct {
	VideoDescription string
	VideoURL         string
	Platforms        []string
}

func Load() (*Prompts, error) {
	return LoadFrom(defaultPromptsPath)
}

func LoadFrom(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}

	var p Prompts
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse prompts file: %w", err)
	}

	return &p, nil
}

func (p *Prompts) RenderIdea(params IdeaParams) (string, error) {
	return render(p.Ideas.Single, params)
}

func (p *Prompts) RenderCompetitor(params CompetitorParams) (string, error) {
	return render(p.Competitor.Analyze, params)
}

func (p *Prompts) RenderKeywords(params KeywordParams) (string, error) {
	return render(p.Keywords.Score, params)
}

func (p *Prompts) RenderCaptions(params CaptionParams) (string, error) {
	return render(p.Captions.Generate, params)
}

func (p *Prompts) RenderRanks(params RankParams) (string, error) {
	return render(p.Ranks.Simulate, params)
}

func (p *Prompts) RenderThumbnail(params ThumbnailParams) (string, error) {
	return render(p.Thumbnail.Critique, params)
}

func (p *Prompts) RenderRepurpose(params RepurposeParams) (string, error) {
	return render(p.Repurpose.Scripts, params)
}

func render(tmpl string, data any) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
