package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mkadit/vietqr"
)

func newEncodeCmd(a *app) *cobra.Command {
	var (
		req    vietqr.Request
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the payload for one transfer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := a.encoder(strict)
			if err != nil {
				return err
			}
			payload, err := enc.Encode(req)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"bank":   req.BankCode,
				"length": len(payload),
			}).Debug("payload encoded")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), payload)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.AccountNumber, "account", "", "beneficiary account number")
	flags.Float64Var(&req.Amount, "amount", 0, "transfer amount in VND")
	flags.StringVar(&req.Memo, "memo", "", "transfer memo")
	flags.StringVar(&req.BankCode, "bank", "", "bank code (default from config)")
	flags.BoolVar(&strict, "strict", false, "reject payloads that break TLV framing rules")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}
