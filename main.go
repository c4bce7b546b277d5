package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pivolan/survey_dashboard/config"
	"github.com/pivolan/survey_dashboard/plot"
	"github.com/pivolan/survey_dashboard/report"
	"github.com/pivolan/survey_dashboard/survey"
)

var (
	dataPath      string
	dashboardPath string

	selectedGroups []string
	outputDir      string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "survey_dashboard",
		Short:         "Survey response dashboard: charts and keywords per commission",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "csv export (.csv, .gz, .lz4, .zip), overrides DATA_PATH")
	rootCmd.PersistentFlags().StringVar(&dashboardPath, "config", "", "dashboard yaml, overrides DASHBOARD_CONFIG")

	rootCmd.AddCommand(newGroupsCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newBotCmd())
	rootCmd.AddCommand(newServeCmd())
	return rootCmd
}

func currentConfig() *config.Config {
	cfg := *config.GetConfig()
	if dataPath != "" {
		cfg.DataPath = dataPath
	}
	if dashboardPath != "" {
		cfg.DashboardPath = dashboardPath
	}
	return &cfg
}

func newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the groups found in the responses with their sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(currentConfig())
			if err != nil {
				return err
			}
			defer a.log.Sync()
			set, err := a.loadResponses()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.GroupsTable(survey.GroupSizes(set)))
			return nil
		},
	}
}

func addGroupFlag(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&selectedGroups, "group", "g", nil, "group to include, repeatable and taken verbatim; none means all")
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the charts and the dashboard page for the selected groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(currentConfig())
			if err != nil {
				return err
			}
			defer a.log.Sync()
			set, err := a.loadResponses()
			if err != nil {
				return err
			}
			pass, err := a.pipeline.Render(set, selectedGroups)
			if err != nil {
				return err
			}
			dir := outputDir
			if dir == "" {
				dir = a.cfg.OutputDir
			}
			paths, err := a.pipeline.WriteOutputs(pass, dir, plot.DefaultRenderOptions())
			if err != nil {
				return err
			}
			a.log.Info("dashboard rendered", zap.String("pass_id", pass.ID), zap.String("dir", dir))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.PassSummary(pass, a.pipeline.KeywordsHeading()))
			fmt.Fprintln(out)
			fmt.Fprintln(out, strings.Join(paths, "\n"))
			return nil
		},
	}
	addGroupFlag(cmd)
	cmd.Flags().StringVarP(&outputDir, "out", "o", "", "output directory, overrides OUTPUT_DIR")
	return cmd
}

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the answer tables and keywords for the selected groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(currentConfig())
			if err != nil {
				return err
			}
			defer a.log.Sync()
			set, err := a.loadResponses()
			if err != nil {
				return err
			}
			pass, err := a.pipeline.Render(set, selectedGroups)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.PassSummary(pass, a.pipeline.KeywordsHeading()))
			return nil
		},
	}
	addGroupFlag(cmd)
	return cmd
}
