package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rankcraft/internal/app"
	"rankcraft/pkg/config"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List saved reports",
	RunE:  runReports,
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}

func runReports(cmd *cobra.Command, args []string) error {
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

	names, err := svc.Exporter.List(ctx)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println(infoStyle.Render("No reports saved yet"))
		return nil
	}

	fmt.Println(titleStyle.Render("Saved reports"))
	for _, name := range names {
		fmt.Println("  " + name)
	}
	return nil
}
