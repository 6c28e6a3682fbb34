package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openkraft/cleanuml/internal/adapters/outbound/config"
	"github.com/openkraft/cleanuml/internal/adapters/outbound/tui"
	"github.com/openkraft/cleanuml/internal/application"
	"github.com/openkraft/cleanuml/internal/domain"
)

func newRulesCmd() *cobra.Command {
	var (
		jsonOutput bool
		nature     string
		path       string
	)

	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List the validation rules",
		Long:  "List the rule catalog in the order rules run, or describe a single rule. Rules disabled in .cleanuml.yaml are marked.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			svc := application.NewRulesService(config.New())

			var rules []domain.RuleInfo
			if len(args) == 1 {
				rule, err := svc.DescribeRule(dir, args[0])
				if err != nil {
					return err
				}
				rules = []domain.RuleInfo{rule}
			} else {
				rules, err = svc.ListRules(dir, nature)
				if err != nil {
					return err
				}
			}

			if jsonOutput {
				return renderJSON(cmd, rules)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(rules))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output rules as JSON")
	cmd.Flags().StringVar(&nature, "nature", "", "Only rules applying to this nature (CIM, IEC61850)")
	cmd.Flags().StringVar(&path, "path", ".", "Directory holding .cleanuml.yaml")

	return cmd
}
