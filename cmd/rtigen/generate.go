package main

import (
	"github.com/spf13/cobra"

	"github.com/cyk-dot/rtigen/internal/app"
	"github.com/cyk-dot/rtigen/internal/hclcfg"
)

func newGenerateCmd() *cobra.Command {
	var (
		configPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Scan configured modules and generate VLAN ID headers",
		RunE: func(cmd *cobra.Command, args []string) error {
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")

			cfg, err := app.NewConfig(app.Config{
				ConfigPath: configPath,
				DryRun:     dryRun,
				LogFormat:  logFormat,
				LogLevel:   logLevel,
			})
			if err != nil {
				return err
			}

			a, err := app.NewApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, hclcfg.NewLoader())
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the HCL or JSON configuration file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "allocate IDs and print the table without writing artifacts")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
