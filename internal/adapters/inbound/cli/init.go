package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openkraft/cleanuml/internal/adapters/outbound/config"
	"github.com/openkraft/cleanuml/internal/domain/uml"
)

// versionRoots are the packages that conventionally carry a version class.
var versionRoots = map[uml.Nature]string{
	uml.CIM:      "TC57CIM",
	uml.IEC61850: "IEC61850",
}

func newInitCmd() *cobra.Command {
	var (
		nature string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .cleanuml.yaml configuration file",
		Long:  "Create a .cleanuml.yaml with the default scope and version packages for the model natures you maintain.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			natures := uml.Natures
			if nature != "" && !strings.EqualFold(nature, "all") {
				n, err := uml.ParseNature(nature)
				if err != nil {
					return err
				}
				natures = []uml.Nature{n}
			}

			if err := os.WriteFile(dest, []byte(generateConfig(natures)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&nature, "nature", "all", "Model nature (CIM, IEC61850, all)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .cleanuml.yaml")

	return cmd
}

func generateConfig(natures []uml.Nature) string {
	var b strings.Builder
	b.WriteString("# cleanuml configuration\n\n")

	b.WriteString("# Owning groups whose elements are validated.\nscope:\n")
	for _, g := range uml.OwningGroups {
		if len(natures) == 1 && groupNature(g) != natures[0] {
			continue
		}
		fmt.Fprintf(&b, "  - %s\n", g)
	}

	b.WriteString("\n# Packages that must hold a <Package>Version class.\nversion_packages:\n")
	for _, n := range natures {
		fmt.Fprintf(&b, "  %s: [%s]\n", n, versionRoots[n])
	}

	b.WriteString(`
# skip:
#   kinds: [diagram]
#   rules: [ClassesWithBadDocEnd]

log:
  level: info
  format: console

# report:
#   disabled: false
#   dir: reports
`)
	return b.String()
}

// groupNature is the nature a working group maintains.
func groupNature(g uml.OwningGroup) uml.Nature {
	if g == uml.WG10 || g == uml.OtherIEC61850 {
		return uml.IEC61850
	}
	return uml.CIM
}
