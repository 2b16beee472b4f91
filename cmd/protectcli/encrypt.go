package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	dataprotect "github.com/amil3955/RWA-exchange1.0.8-sub001"
)

var encryptPassword string

var encryptCmd = &cobra.Command{
	Use:   "encrypt <value>",
	Short: "Encrypt a value into an envelope",
	Long: `Encrypt a value with the master key from DATA_PROTECT_MASTER_KEY,
or with a password-derived key when --password is given. The envelope is
written to stdout as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProtector(encryptPassword)
		if err != nil {
			return err
		}

		var env *dataprotect.Envelope
		if encryptPassword != "" {
			env, err = p.EncryptWithPassword(args[0], encryptPassword)
		} else {
			env, err = p.Encrypt(args[0])
		}
		if err != nil {
			return err
		}

		return json.NewEncoder(os.Stdout).Encode(env)
	},
}

func init() {
	encryptCmd.Flags().StringVarP(&encryptPassword, "password", "p", "", "derive the key from a password instead of the master key")
}

// newProtector builds a Protector from the environment. When a password
// is supplied the master key is never touched, so a missing key falls
// back to an ephemeral one rather than failing the command.
func newProtector(password string) (*dataprotect.Protector, error) {
	p, err := dataprotect.NewFromEnv()
	if err != nil && password != "" {
		return dataprotect.NewFromEnv(dataprotect.WithEphemeralKey())
	}
	return p, err
}
