package main

import (
	"strconv"
	"strings"

	"github.com/danmuck/rowctl/internal/protocol"
	"github.com/danmuck/rowctl/internal/protocol/ident"
	"github.com/danmuck/rowctl/internal/protocol/rowing"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List known characteristics, or enumerations with --enums",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enums, _ := cmd.Flags().GetBool("enums")
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			if enums {
				renderEnumerations(t)
			} else {
				renderCharacteristics(t)
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().Bool("enums", false, "list decoded enumerations and their members")
	return cmd
}

func renderCharacteristics(t table.Writer) {
	t.AppendHeader(table.Row{"NAME", "UUID", "DECODED"})
	registry := protocol.Default()
	for _, c := range ident.All() {
		t.AppendRow(table.Row{c.String(), strings.ToUpper(c.UUID().String()), registry.Implemented(c)})
	}
}

func renderEnumerations(t table.Writer) {
	t.AppendHeader(table.Row{"ENUMERATION", "VALUE", "NAME"})
	for _, e := range rowing.Enumerations() {
		for _, m := range e.Members {
			t.AppendRow(table.Row{e.Name, strconv.Itoa(int(m.Value)), m.Name})
		}
		t.AppendSeparator()
	}
}
