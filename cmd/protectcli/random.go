package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	dataprotect "github.com/amil3955/RWA-exchange1.0.8-sub001"
)

var randomCmd = &cobra.Command{
	Use:   "random [bytes]",
	Short: "Generate a secure random hex string",
	Long:  `Generate a hex-encoded random string from the given number of bytes (default 32).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 32
		if len(args) == 1 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("byte count must be a positive integer, got %q", args[0])
			}
		}

		s, err := dataprotect.GenerateSecureRandom(n)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	},
}

var apikeyCmd = &cobra.Command{
	Use:   "apikey [prefix]",
	Short: "Generate a prefixed API key",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := "key"
		if len(args) == 1 {
			prefix = args[0]
		}

		k, err := dataprotect.GenerateAPIKey(prefix)
		if err != nil {
			return err
		}
		fmt.Println(k)
		return nil
	},
}
