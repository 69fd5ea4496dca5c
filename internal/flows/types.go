package flows

import (
	"encoding/json"
	"fmt"
)

// Fixed output sizes enforced on model responses.
const (
	TitleVariationCount = 5
	KeywordCount        = 10
	CaptionCount        = 5
	RankCount           = 10
	TopVideoCount       = 5
)

type IdeasRequest struct {
	Category       string `json:"category"`
	Subcategory    string `json:"subcategory"`
	TargetAudience string `json:"targetAudience"`
	Language       string `json:"language"`
	Format         string `json:"format"`
	Tone           string `json:"tone"`

	// ExistingTitles are titles the caller already has; the batch is nudged
	// away from repeating them.
	ExistingTitles []string `json:"existingTitles,omitempty"`
}

type CompetitorRequest struct {
	SourceURL string `json:"sourceUrl"`
}

type KeywordsRequest struct {
	Topic string `json:"topic"`
}

type CaptionsRequest struct {
	Topic string `json:"topic"`
}

type RanksRequest struct {
	Topic string `json:"topic"`
	URL   string `json:"url"`
}

type ThumbnailRequest struct {
	ImageDataURI string `json:"imageDataUri"`
	VideoTitle   string `json:"videoTitle"`
}

type RepurposeRequest struct {
	VideoDescription string   `json:"videoDescription"`
	VideoURL         string   `json:"videoUrl"`
	Platforms        []string `json:"platforms"`
}

// ContentIdea is one generated idea after post-processing: description
// truncated to 150 characters, tags lower-cased.
type ContentIdea struct {
	Title                      string   `json:"title"`
	SEOTitleVariations         []string `json:"seoTitleVariations"`
	ViralHook                  string   `json:"viralHook"`
	ThumbnailConcepts          []string `json:"thumbnailConcepts"`
	ShortDescription           string   `json:"shortDescription"`
	Tags                       []string `json:"tags"`
	TimestampedStructurePoints []string `json:"timestampedStructurePoints"`
	RepurposeSuggestion        string   `json:"repurposeSuggestion"`
	DifficultyScore            float64  `json:"difficultyScore"`
}

// IdeasResult carries the ideas that succeeded out of a batch plus the
// number of generations that failed.
type IdeasResult struct {
	Ideas  []ContentIdea `json:"ideas"`
	Failed int           `json:"failed"`
}

type CompetitorAnalysis struct {
	TopVideos        []string `json:"topVideos"`
	AverageWatchTime string   `json:"averageWatchTime"`
	HeadlinePatterns []string `json:"headlinePatterns"`
	CommonTags       []string `json:"commonTags"`
	GapOpportunities []string `json:"gapOpportunities"`
	ContentAngles    []string `json:"contentAngles"`
}

type Keyword struct {
	Keyword         string `json:"keyword"`
	MonthlySearches int64  `json:"monthlySearches"`
	Competition     string `json:"competition"`
	Difficulty      string `json:"difficulty"`
}

type Caption struct {
	Caption string `json:"caption"`
	CTA     string `json:"cta"`
}

// Rank is a Google position that is either a number or out of the top 100.
// It round-trips the wire form the model produces: a JSON number, or the
// string "Not in top 100".
type Rank struct {
	Position int
	Ranked   bool
}

const notInTop100 = "Not in top 100"

func (r Rank) String() string {
	if !r.Ranked {
		return notInTop100
	}
	return fmt.Sprintf("%d", r.Position)
}

func (r Rank) MarshalJSON() ([]byte, error) {
	if !r.Ranked {
		return json.Marshal(notInTop100)
	}
	return json.Marshal(r.Position)
}

func (r *Rank) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		r.Position = n
		r.Ranked = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("rank must be a number or string, got %s", data)
	}
	r.Position = 0
	r.Ranked = false
	return nil
}

type RankedKeyword struct {
	Keyword         string `json:"keyword"`
	Rank            Rank   `json:"rank"`
	BestRank        int    `json:"bestRank"`
	MonthlySearches int64  `json:"monthlySearches"`
	Competition     string `json:"competition"`
}

type ThumbnailReview struct {
	CTRPredictionScore     int      `json:"ctrPredictionScore"`
	Readability            string   `json:"readability"`
	SubjectProminence      string   `json:"subjectProminence"`
	FacialCloseUps         string   `json:"facialCloseUps"`
	Contrast               string   `json:"contrast"`
	ClickbaitAnalysis      string   `json:"clickbaitAnalysis"`
	ActionableImprovements []string `json:"actionableImprovements"`
}

type ShortScript struct {
	Platform   string   `json:"platform"`
	Script     string   `json:"script"`
	Timestamps []string `json:"timestamps"`
	Captions   string   `json:"captions"`
}
