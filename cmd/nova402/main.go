// Command nova402 is the command-line companion to the payment core: hash
// data, mint nonces, verify payment headers, inspect supported networks, and
// run a standalone verification endpoint.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	nova402 "github.com/nova402/novax402"
	"github.com/nova402/novax402/encoding"
	"github.com/nova402/novax402/facilitator"
	"github.com/nova402/novax402/hashing"
	x402http "github.com/nova402/novax402/http"
	"github.com/nova402/novax402/networks"
	"github.com/nova402/novax402/types"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nova402",
		Short:         "x402 payment protocol tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newHashCmd(),
		newNonceCmd(),
		newVerifyCmd(),
		newNetworkCmd(),
		newServeCmd(),
	)
	return root
}

func newHashCmd() *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "hash <data>",
		Short: "Hash data with the selected algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := hashing.ByAlgorithm(algorithm, []byte(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), digest.Hex())
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "keccak256", "keccak256, sha256, or sha3-256")
	return cmd
}

func newNonceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nonce",
		Short: "Generate a 32-byte payment nonce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nonce, err := nova402.CreateNonce()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), nonce)
			return nil
		},
	}
}

func newVerifyCmd() *cobra.Command {
	var paymentHeader, requirementsJSON string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a base64 payment header against requirements",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := encoding.DecodePaymentFromBase64(paymentHeader)
			if err != nil {
				return fmt.Errorf("decode payment header: %w", err)
			}

			var requirements types.PaymentRequirements
			if err := json.Unmarshal([]byte(requirementsJSON), &requirements); err != nil {
				return fmt.Errorf("parse requirements: %w", err)
			}

			result := facilitator.Verify(payload, &requirements, time.Now().Unix())
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			if !result.IsValid {
				return fmt.Errorf("payment invalid: %s", result.InvalidReason)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&paymentHeader, "payment-header", "p", "", "base64-encoded payment envelope")
	cmd.Flags().StringVarP(&requirementsJSON, "requirements", "r", "", "payment requirements as JSON")
	cmd.MarkFlagRequired("payment-header")
	cmd.MarkFlagRequired("requirements")
	return cmd
}

func newNetworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Inspect supported networks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all supported networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for name, config := range networks.Configs {
				caip2, err := networks.ToCAIP2(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %-14s %s\n", name, caip2, config.Name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "info <network>",
		Short: "Show configuration for a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := networks.Lookup(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Name:     %s\n", config.Name)
			fmt.Fprintf(w, "Type:     %s\n", config.Type)
			if config.ChainID != nil {
				fmt.Fprintf(w, "ChainID:  %s\n", config.ChainID)
			}
			if config.Cluster != "" {
				fmt.Fprintf(w, "Cluster:  %s\n", config.Cluster)
			}
			fmt.Fprintf(w, "RPC:      %s\n", config.RPCURL)
			fmt.Fprintf(w, "Explorer: %s\n", config.Explorer)
			fmt.Fprintf(w, "Decimals: %d\n", config.Decimals)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "usdc <network>",
		Short: "Print the USDC address for a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := networks.USDCAddress(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	})

	return cmd
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a standalone payment verification endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
			logger.Info().Str("addr", addr).Msg("starting verification endpoint")
			return x402http.NewRouter(logger).Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":4022", "listen address")
	return cmd
}
