package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openkraft/cleanuml/internal/adapters/outbound/baseline"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/config"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/history"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/modelfile"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/report"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/tui"
	"github.com/openkraft/cleanuml/internal/application"
	"github.com/openkraft/cleanuml/internal/domain"
	"github.com/openkraft/cleanuml/internal/logger"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput  bool
		configPath  string
		verbose     bool
		noReport    bool
		ciMode      bool
		maxIssues   int
		newOnly     bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "validate <model>",
		Short: "Validate a UML model",
		Long:  "Run the rule catalog over a model file, print the issues found and write problemsReport-<model>.csv next to the model.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modelPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			// Load config up front: it also configures logging.
			loader := config.New()
			var cfg domain.Config
			if configPath != "" {
				cfg, err = loader.LoadFile(configPath)
			} else {
				cfg, err = loader.Load(filepath.Dir(modelPath))
			}
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if verbose {
				cfg.Verbose = true
			}

			log := logger.FromConfig(cfg).Named(logger.ComponentValidator)
			defer func() { _ = log.Sync() }()

			svc := application.NewValidateService(
				loader,
				modelfile.New(),
				report.New(),
				baseline.New(),
				history.New(),
				gitinfo.New(),
				log,
			)

			result, err := svc.ValidateModel(modelPath, application.ValidateOptions{
				Config:   &cfg,
				NoReport: noReport,
				NewOnly:  newOnly,
			})
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			// Show history if requested
			if showHistory {
				entries, err := svc.History(modelPath)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			if jsonOutput {
				if err := renderJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRun(result))
			}

			if ciMode && result.Counts.Total() > maxIssues {
				return fmt.Errorf("%d issue(s) found, more than the %d allowed", result.Counts.Total(), maxIssues)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run as JSON")
	cmd.Flags().StringVar(&configPath, "config", "", "Configuration file (default: .cleanuml.yaml next to the model)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also log the rules that found nothing")
	cmd.Flags().BoolVar(&noReport, "no-report", false, "Do not write the CSV problems report")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if more than --max-issues issues are found")
	cmd.Flags().IntVar(&maxIssues, "max-issues", 0, "Issues tolerated in CI mode")
	cmd.Flags().BoolVar(&newOnly, "new-only", false, "Show only the issues absent from the previous run")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show the run history of the model")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
