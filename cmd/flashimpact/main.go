package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/empiricalrun/flashimpact/internal/analyzer"
	"github.com/empiricalrun/flashimpact/internal/git"
	"github.com/empiricalrun/flashimpact/internal/report"
	"github.com/empiricalrun/flashimpact/internal/tools"
	"github.com/empiricalrun/flashimpact/internal/types"
	"github.com/empiricalrun/flashimpact/internal/utils"
	"github.com/empiricalrun/flashimpact/pkg/config"
	"github.com/empiricalrun/flashimpact/pkg/spinner"
)

var version = "dev"

const defaultRepoURL = "https://github.com/empiricalrun/flash-tests.git"

// NewRootCmd constructs the flashimpact root command.
func NewRootCmd() *cobra.Command {
	var (
		commitSHA     string
		repoPath      string
		repoURL       string
		configPath    string
		extractorName string
		jsonOutput    bool
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:           "flashimpact",
		Short:         "Analyze which tests a commit impacts",
		Long:          "flashimpact maps one commit to the tests it adds, modifies, removes, or touches through shared helper code.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if extractorName != "" {
				cfg.Extractor = extractorName
			}

			registry := tools.NewRegistry()
			if cfg.Extractor == "sitter" {
				sitterExtractor, err := tools.NewSitterExtractor()
				if err != nil {
					return fmt.Errorf("failed to create tree-sitter extractor: %w", err)
				}
				registry.Register(sitterExtractor)
			}
			extractor := registry.Get(cfg.Extractor)
			if extractor == nil {
				return fmt.Errorf("unknown extractor %q", cfg.Extractor)
			}

			var sp *spinner.Spinner
			if repoPath == "" {
				sp = spinner.New("Cloning " + repoURL)
				sp.Start()
			}
			path, cleanup, err := git.Acquire(repoPath, repoURL)
			if sp != nil {
				sp.Stop()
			}
			if err != nil {
				return err
			}
			defer cleanup()

			client := git.NewCLIClient(path)
			a := analyzer.New(client, extractor, cfg)
			a.Verbose = verbose
			a.Out = cmd.OutOrStdout()

			impacts, err := a.AnalyzeCommit(commitSHA)
			if err != nil {
				return err
			}

			var stats []types.FileChangeStat
			if commitDiff, err := client.CommitDiff(commitSHA); err == nil {
				stats = utils.CommitStats(commitDiff)
			}

			if jsonOutput {
				return report.WriteJSON(cmd.OutOrStdout(), report.Report{
					Commit:  commitSHA,
					Impacts: impacts,
					Files:   stats,
				})
			}
			report.Print(cmd.OutOrStdout(), commitSHA, impacts, stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&commitSHA, "commit", "", "commit SHA to analyze")
	cmd.Flags().StringVar(&repoPath, "repo", "", "path to a local repository (cloned when omitted)")
	cmd.Flags().StringVar(&repoURL, "repo-url", defaultRepoURL, "repository URL to clone when --repo is not usable")
	cmd.Flags().StringVar(&configPath, "config", "flashimpact.json", "path to the configuration file")
	cmd.Flags().StringVar(&extractorName, "extractor", "", `block extractor, "scan" or "sitter" (overrides config)`)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the impact list as JSON instead of the styled report")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose progress output")
	_ = cmd.MarkFlagRequired("commit")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the flashimpact version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "flashimpact version %s\n", version)
		},
	})

	return cmd
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
