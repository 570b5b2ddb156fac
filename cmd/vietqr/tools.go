package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkadit/vietqr"
)

func newChecksumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checksum TEXT",
		Short: "Print the CRC-16 of TEXT as 4 hex digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), vietqr.Checksum(args[0]))
			return err
		},
	}
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize TEXT...",
		Short: "Strip Vietnamese tones the way memos are encoded",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), vietqr.RemoveTones(strings.Join(args, " ")))
			return err
		},
	}
}

func newLinkCmd(a *app) *cobra.Command {
	var q vietqr.QuickLink

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print a quick-link image URL for the public VietQR renderer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if q.BankCode == "" {
				q.BankCode = a.cfg.DefaultBank
			}
			if q.Template == "" {
				q.Template = a.cfg.QuickLink.Template
			}
			u, err := q.URL()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&q.AccountNumber, "account", "", "beneficiary account number")
	flags.StringVar(&q.BankCode, "bank", "", "bank code (default from config)")
	flags.Float64Var(&q.Amount, "amount", 0, "transfer amount in VND")
	flags.StringVar(&q.AddInfo, "memo", "", "transfer memo")
	flags.StringVar(&q.AccountName, "name", "", "beneficiary account name")
	flags.StringVar(&q.Template, "template", "", "image template (default from config)")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}
