package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/danmuck/rowctl/internal/capture"
	"github.com/danmuck/rowctl/internal/protocol"
	"github.com/danmuck/rowctl/internal/protocol/ident"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <characteristic> <hex>",
		Short: "Decode one notification payload",
		Long: "Decode one notification payload. The characteristic is a catalog name such as\n" +
			"rowing.general_status or a UUID; the payload is hex, separators allowed.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ident.ParseIdentifier(args[0])
			if err != nil {
				return err
			}
			payload, err := capture.ParsePayload(strings.Join(args[1:], ""))
			if err != nil {
				return err
			}
			rec, err := protocol.Decode(id, payload)
			if err != nil {
				return fmt.Errorf("%w (kind=%s)", err, protocol.Kind(err))
			}
			out, err := json.MarshalIndent(map[string]any{
				"characteristic": rec.Characteristic(),
				"record":         rec,
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
