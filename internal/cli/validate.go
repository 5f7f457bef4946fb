package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func validateCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration without starting the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK listen=%s upstream=%s provider=%s %s→%s policy=%s\n",
				cfg.Addr(), cfg.UpstreamBaseURL, cfg.Translation.Provider,
				cfg.Translation.SourceLang, cfg.Translation.TargetLang, cfg.Policy())
			return nil
		},
	}
}
