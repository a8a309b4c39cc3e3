package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured proficiency levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		for _, l := range cfg.Session.Levels {
			fmt.Fprintln(cmd.OutOrStdout(), l)
		}
		return nil
	},
}
