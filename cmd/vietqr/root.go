package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mkadit/vietqr"
	"github.com/mkadit/vietqr/internal/config"
)

// app carries state resolved once per invocation by the root command.
type app struct {
	configFile string
	cfg        *config.Config
	log        *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "vietqr",
		Short:         "Encode VietQR bank-transfer payloads",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = cfg.Logger()
			a.log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: vietqr.yaml in /etc/vietqr, ~/.vietqr or .)")

	root.AddCommand(
		newEncodeCmd(a),
		newBatchCmd(a),
		newBanksCmd(a),
		newChecksumCmd(),
		newNormalizeCmd(),
		newLinkCmd(a),
	)
	return root
}

func (a *app) encoder(strict bool) (*vietqr.Encoder, error) {
	opts, err := a.cfg.EncoderOptions(a.log)
	if err != nil {
		return nil, err
	}
	if strict {
		opts = append(opts, vietqr.WithStrictValidation())
	}
	return vietqr.NewEncoder(opts...), nil
}
