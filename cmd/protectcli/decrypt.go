package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	dataprotect "github.com/amil3955/RWA-exchange1.0.8-sub001"
)

var decryptPassword string

var decryptCmd = &cobra.Command{
	Use:   "decrypt [envelope-json]",
	Short: "Decrypt an envelope back to its value",
	Long: `Decrypt an envelope produced by "encrypt". The envelope is taken
from the first argument, or read from stdin when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw []byte
		if len(args) == 1 {
			raw = []byte(args[0])
		} else {
			var err error
			raw, err = io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
		}

		var env dataprotect.Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return fmt.Errorf("parsing envelope: %w", err)
		}

		p, err := newProtector(decryptPassword)
		if err != nil {
			return err
		}

		var pt *dataprotect.Plaintext
		if decryptPassword != "" {
			pt, err = p.DecryptWithPassword(&env, decryptPassword)
		} else {
			pt, err = p.Decrypt(&env)
		}
		if err != nil {
			return err
		}

		fmt.Println(pt.String())
		return nil
	},
}

func init() {
	decryptCmd.Flags().StringVarP(&decryptPassword, "password", "p", "", "derive the key from a password instead of the master key")
}
