// Command protectcli is an operator tool for the data protection layer:
// key generation, ad-hoc encryption and decryption of values, masking,
// and secure token generation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/amil3955/RWA-exchange1.0.8-sub001/internal/logging"
)

var (
	verbose bool
	log     logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "protectcli",
	Short: "Operator tool for the exchange's data protection layer",
	Long: `protectcli generates key material and performs ad-hoc protection
operations against the same primitives the record services use:
AES-256-GCM envelopes, password-derived keys, RSA and sealed-channel
key pairs, masking, and secure random tokens.

The master key is read from DATA_PROTECT_MASTER_KEY; a .env file in the
working directory is loaded first if present.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.Logger{Verbose: verbose}

		// Missing .env is fine; the environment may carry the key directly.
		if err := godotenv.Load(); err == nil {
			log.Infof("loaded .env")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(maskCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(apikeyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
