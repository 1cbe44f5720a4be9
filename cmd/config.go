package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/txlist/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func getConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print effective configuration",
		Long: `Print configuration after config.yaml, environment variables
and defaults are merged. The output is valid config.yaml content.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := configYAML(cfg)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s",
				config.ConfigFilePath(cfg.HomeDir), out)
			return nil
		},
	}
}

func configYAML(c *config.Config) (string, error) {
	res, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(res), nil
}
