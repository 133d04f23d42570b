package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stellar/go/keypair"

	"github.com/dtroode/stellar-wallet-server/internal/keys"
)

func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random Stellar keypair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kp, err := keypair.Random()
			if err != nil {
				return fmt.Errorf("failed to generate keypair: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "public key:  %s\n", kp.Address())
			fmt.Fprintf(out, "secret seed: %s\n", kp.Seed())
			return nil
		},
	}
}

// newSignCmd signs a challenge the way a browser wallet would, so the
// verify endpoint can be driven from a terminal.
func newSignCmd() *cobra.Command {
	var seed, message, encoding string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a challenge message with a secret seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sig, err := keys.Sign(seed, []byte(message), encoding)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "secret seed (S...)")
	cmd.Flags().StringVar(&message, "message", "", "exact challenge text")
	cmd.Flags().StringVar(&encoding, "encoding", keys.EncodingHex, "signature encoding: hex or base64")
	_ = cmd.MarkFlagRequired("seed")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
