package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridscad/pkg/config"
)

// shapesCommand creates the shapes command.
func (c *CLI) shapesCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "List the shape types known to the converter",
		Long: `List every shape type the converter can emit, with its primitive.

Built-in shapes are always present; [[shape]] entries from the config file
are added on top.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			reg, err := cfg.Registry()
			if err != nil {
				return err
			}

			fmt.Fprintln(stdout, StyleTitle.Render("Shapes"))
			for _, name := range reg.Names() {
				shape, _ := reg.Lookup(name)
				printKeyValue(name, shape().String())
			}
			if cfg.Path != "" {
				printDetail("Config: %s", cfg.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gridscad/config.toml)")

	return cmd
}
