package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mkadit/vietqr"
)

// readRequests decodes a YAML or JSON list of requests.
func readRequests(path string) ([]vietqr.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reqs []vietqr.Request
	if err := yaml.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return reqs, nil
}

func newBatchCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Encode a YAML or JSON list of transfers, one payload per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := readRequests(args[0])
			if err != nil {
				return err
			}
			enc, err := a.encoder(strict)
			if err != nil {
				return err
			}

			p := vietqr.NewProcessor(enc,
				vietqr.WithConcurrency(a.cfg.Concurrency),
				vietqr.WithErrorHandler(func(err error) {
					a.log.WithError(err).Warn("encode failed")
				}),
			)
			payloads, err := p.EncodeBatch(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			a.log.WithFields(logrus.Fields{"count": len(payloads)}).Info("batch encoded")
			out := cmd.OutOrStdout()
			for _, payload := range payloads {
				if _, err := fmt.Fprintln(out, payload); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "reject payloads that break TLV framing rules")
	return cmd
}
