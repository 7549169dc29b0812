package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/avatar"
)

func newPaletteCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the configured palette as parsed colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			for i, entry := range cfg.PaletteValue() {
				c, err := avatar.ParseColor(entry)
				if err != nil {
					return &avatar.ColorFormatError{Index: i, Value: entry, Err: err}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %-12s %s\n", i, entry, c)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	return cmd
}
