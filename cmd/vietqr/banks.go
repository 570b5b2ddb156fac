package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mkadit/vietqr"
)

func newBanksCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "banks",
		Short: "List the effective bank code routing table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.cfg.RoutingTable()
			if err != nil {
				return err
			}
			listing := struct {
				Default string                `json:"default" yaml:"default"`
				Banks   []vietqr.RoutingEntry `json:"banks" yaml:"banks"`
			}{
				Default: rt.Default().Code,
				Banks:   rt.Entries(),
			}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(listing); err != nil {
					return err
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(listing)
			default:
				return fmt.Errorf("unsupported format %q (want yaml or json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}
