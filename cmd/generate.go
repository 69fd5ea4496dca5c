package cmd

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"rankcraft/internal/app"
	"rankcraft/internal/export"
	"rankcraft/internal/flows"
	"rankcraft/pkg/config"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

var exportReport bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Interactively generate content for one feature",
	Long:  `Walk through a short form for the chosen feature and print the generated result.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().BoolVarP(&exportReport, "export", "e", false, "Save the result as a report")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	svc, err := app.BuildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	var feature string
	if err := huh.NewSelect[string]().
		Title("What do you want to generate?").
		Options(
			huh.NewOption("Content ideas", "ideas"),
			huh.NewOption("Competitor analysis", "competitor"),
			huh.NewOption("Keyword research", "keywords"),
			huh.NewOption("Reel captions", "captions"),
			huh.NewOption("Rank report", "ranks"),
			huh.NewOption("Thumbnail critique", "thumbnail"),
			huh.NewOption("Repurposing scripts", "repurpose"),
		).
		Value(&feature).
		Run(); err != nil {
		return err
	}

	switch feature {
	case "ideas":
		return generateIdeas(ctx, svc)
	case "competitor":
		return generateCompetitor(ctx, svc)
	case "keywords":
		return generateKeywords(ctx, svc)
	case "captions":
		return generateCaptions(ctx, svc)
	case "ranks":
		return generateRanks(ctx, svc)
	case "thumbnail":
		return generateThumbnail(ctx, svc)
	case "repurpose":
		return generateRepurpose(ctx, svc)
	}
	return fmt.Errorf("unknown feature %q", feature)
}

func generateIdeas(ctx context.Context, svc *app.Service) error {
	req := flows.IdeasRequest{Format: "long"}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Category").Placeholder("fitness").Value(&req.Category),
			huh.NewInput().Title("Subcategory").Placeholder("yoga").Value(&req.Subcategory),
			huh.NewInput().Title("Target audience").Placeholder("beginners").Value(&req.TargetAudience),
			huh.NewInput().Title("Language").Placeholder("English").Value(&req.Language),
			huh.NewSelect[string]().
				Title("Format").
				Options(
					huh.NewOption("Long-form video", "long"),
					huh.NewOption("Short-form video", "short"),
				).
				Value(&req.Format),
			huh.NewInput().Title("Tone").Placeholder("friendly").Value(&req.Tone),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	var result *flows.IdeasResult
	err := runWithSpinner("Generating ideas", func() error {
		var genErr error
		result, genErr = svc.Generator.GenerateIdeas(ctx, req)
		return genErr
	})
	if err != nil {
		return err
	}

	for i, idea := range result.Ideas {
		fmt.Println(titleStyle.Render(fmt.Sprintf("%d. %s", i+1, idea.Title)))
		printField("Hook", idea.ViralHook)
		printField("Description", idea.ShortDescription)
		printList("Title variations", idea.SEOTitleVariations)
		printList("Thumbnail concepts", idea.ThumbnailConcepts)
		printList("Structure", idea.TimestampedStructurePoints)
		printField("Tags", strings.Join(idea.Tags, ", "))
		printField("Repurpose", idea.RepurposeSuggestion)
		printField("Difficulty", fmt.Sprintf("%.0f/10", idea.DifficultyScore))
		fmt.Println()
	}
	if result.Failed > 0 {
		fmt.Println(faintStyle.Render(fmt.Sprintf("%d generation(s) failed", result.Failed)))
	}

	return saveReport(ctx, svc, "ideas", result)
}

func generateCompetitor(ctx context.Context, svc *app.Service) error {
	var req flows.CompetitorRequest
	if err := huh.NewInput().
		Title("Competitor channel or video URL").
		Placeholder("https://www.youtube.com/@channel").
		Value(&req.SourceURL).
		Run(); err != nil {
		return err
	}

	var analysis *flows.CompetitorAnalysis
	err := runWithSpinner("Analyzing competitor", func() error {
		var genErr error
		analysis, genErr = svc.Generator.AnalyzeCompetitor(ctx, req)
		return genErr
	})
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Competitor analysis"))
	printList("Top videos", analysis.TopVideos)
	printField("Average watch time", analysis.AverageWatchTime)
	printList("Headline patterns", analysis.HeadlinePatterns)
	printList("Common tags", analysis.CommonTags)
	printList("Gap opportunities", analysis.GapOpportunities)
	printList("Content angles", analysis.ContentAngles)

	return saveReport(ctx, svc, "competitor", analysis)
}

func generateKeywords(ctx context.Context, svc *app.Service) error {
	var req flows.KeywordsRequest
	if err := huh.NewInput().
		Title("Topic").
		Placeholder("sourdough baking").
		Value(&req.Topic).
		Run(); err != nil {
		return err
	}

	var keywords []flows.Keyword
	err := runWithSpinner("Researching keywords", func() error {
		var genErr error
		keywords, genErr = svc.Generator.ResearchKeywords(ctx, req)
		return genErr
	})
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Keywords for " + req.Topic))
	for _, k := range keywords {
		fmt.Printf("  %-40s %8d/mo  competition: %-6s difficulty: %s\n",
			k.Keyword, k.MonthlySearches, k.Competition, k.Difficulty)
	}

	if exportReport {
		header, rows := export.KeywordRecords(keywords)
		if _, err := svc.Exporter.SaveCSV(ctx, "keywords", header, rows); err != nil {
			return err
		}
	}
	return saveReport(ctx, svc, "keywords", keywords)
}

func generateCaptions(ctx context.Context, svc *app.Service) error {
	var req flows.CaptionsRequest
	if err := huh.NewInput().
		Title("Topic").
		Placeholder("meal prep").
		Value(&req.Topic).
		Run(); err != nil {
		return err
	}

	var captions []flows.Caption
	err := runWithSpinner("Generating captions", func() error {
		var genErr error
		captions, genErr = svc.Generator.GenerateCaptions(ctx, req)
		return genErr
	})
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Captions for " + req.Topic))
	for i, c := range captions {
		fmt.Printf("%d. %s\n", i+1, c.Caption)
		fmt.Println(faintStyle.Render("   CTA: " + c.CTA))
	}

	return saveReport(ctx, svc, "captions", captions)
}

func generateRanks(ctx context.Context, svc *app.Service) error {
	var req flows.RanksRequest
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Topic").Placeholder("sourdough baking").Value(&req.Topic),
			huh.NewInput().Title("URL to track").Placeholder("https://example.com/blog").Value(&req.URL),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	var ranked []flows.RankedKeyword
	err := runWithSpinner("Building rank report", func() error {
		var genErr error
		ranked, genErr = svc.Generator.TrackRanks(ctx, req)
		return genErr
	})
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Rank report for " + req.URL))
	for _, r := range ranked {
		fmt.Printf("  %-40s rank: %-15s best: %-4d %8d/mo  competition: %s\n",
			r.Keyword, r.Rank.String(), r.BestRank, r.MonthlySearches, r.Competition)
	}

	if exportReport {
		header, rows := export.RankRecords(ranked)
		if _, err := svc.Exporter.SaveCSV(ctx, "ranks", header, rows); err != nil {
			return err
		}
	}
	return saveReport(ctx, svc, "ranks", ranked)
}

func generateThumbnail(ctx context.Context, svc *app.Service) error {
	var imagePath string
	var req flows.ThumbnailRequest

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Thumbnail image path").Placeholder("./thumb.png").Value(&imagePath),
			huh.NewInput().Title("Video title").Value(&req.VideoTitle),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	dataURI, err := fileToDataURI(imagePath)
	if err != nil {
		return err
	}
	req.ImageDataURI = dataURI

	var review *flows.ThumbnailReview
	err = runWithSpinner("Critiquing thumbnail", func() error {
		var genErr error
		review, genErr = svc.Generator.CritiqueThumbnail(ctx, req)
		return genErr
	})
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("CTR prediction: %d/100", review.CTRPredictionScore)))
	printField("Readability", review.Readability)
	printField("Subject prominence", review.SubjectProminence)
	printField("Facial close-ups", review.FacialCloseUps)
	printField("Contrast", review.Contrast)
	printField("Clickbait", review.ClickbaitAnalysis)
	printList("Improvements", review.ActionableImprovements)

	return saveReport(ctx, svc, "thumbnail", review)
}

func generateRepurpose(ctx context.Context, svc *app.Service) error {
	var req flows.RepurposeRequest
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("Video description").Value(&req.VideoDescription),
			huh.NewInput().Title("Video URL").Placeholder("https://www.youtube.com/watch?v=...").Value(&req.VideoURL),
			huh.NewMultiSelect[string]().
				Title("Target platforms").
				Options(
					huh.NewOption("TikTok", "TikTok"),
					huh.NewOption("Instagram Reels", "Instagram Reels"),
					huh.NewOption("YouTube Shorts", "YouTube Shorts"),
				).
				Value(&req.Platforms),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	var scripts []flows.ShortScript
	err := runWithSpinner("Writing short scripts", func() error {
		var genErr error
		scripts, genErr = svc.Generator.RepurposeVideo(ctx, req)
		return genErr
	})
	if err != nil {
		return err
	}

	for _, s := range scripts {
		fmt.Println(titleStyle.Render(s.Platform))
		fmt.Println(s.Script)
		printList("Timestamps", s.Timestamps)
		printField("Captions", s.Captions)
		fmt.Println()
	}

	return saveReport(ctx, svc, "repurpose", scripts)
}

func saveReport(ctx context.Context, svc *app.Service, name string, v any) error {
	if !exportReport {
		return nil
	}
	location, err := svc.Exporter.SaveJSON(ctx, name, v)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	fmt.Println(successStyle.Render("✓ Report saved to " + location))
	return nil
}

var imageMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

func fileToDataURI(path string) (string, error) {
	mimeType, ok := imageMimeTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}

func printField(label, value string) {
	if value == "" {
		return
	}
	fmt.Println(labelStyle.Render(label+":") + " " + value)
}

func printList(label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Println(labelStyle.Render(label + ":"))
	for _, v := range values {
		fmt.Println("  - " + v)
	}
}

func runWithSpinner(title string, fn func() error) error {
	var err error
	_ = spinner.New().
		Title(title).
		Action(func() { err = fn() }).
		Run()
	if err != nil {
		return err
	}
	fmt.Println(successStyle.Render("✓ " + title))
	return nil
}
