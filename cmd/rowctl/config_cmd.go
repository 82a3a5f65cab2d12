package main

import (
	"fmt"

	"github.com/danmuck/rowctl/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write or validate config files",
	}

	initCmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write a config template (server or profile)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			force, _ := cmd.Flags().GetBool("force")
			if err := config.WriteTemplate(args[0], kind, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s config template to %s\n", kind, args[0])
			return nil
		},
	}
	initCmd.Flags().String("kind", "server", "config kind: server|profile")
	initCmd.Flags().Bool("force", false, "overwrite an existing file")

	validateCmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Load and validate a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			var err error
			switch kind {
			case "server":
				_, err = config.LoadServerConfig(args[0])
			case "profile":
				_, err = loadRecordProfile(args[0])
			default:
				err = fmt.Errorf("unknown config kind: %s", kind)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "validated %s config at %s\n", kind, args[0])
			return nil
		},
	}
	validateCmd.Flags().String("kind", "server", "config kind: server|profile")

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}
