package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dataprotect "github.com/amil3955/RWA-exchange1.0.8-sub001"
	"github.com/amil3955/RWA-exchange1.0.8-sub001/internal/crypto"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen <secret|rsa|sealed|signing>",
	Short: "Generate key material",
	Long: `Generate key material for the data protection layer.

  secret   a 32-byte symmetric key (hex), usable as DATA_PROTECT_MASTER_KEY
  rsa      a 2048-bit RSA key pair (PEM, JSON on stdout)
  sealed   an ML-KEM-768 key pair for the sealed channel (base64url)
  signing  an ML-DSA-65 key pair for sealed-channel attestation (base64url)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "secret":
			key, err := dataprotect.GenerateSecretKey()
			if err != nil {
				return err
			}
			fmt.Println(key)

		case "rsa":
			log.Infof("generating 2048-bit RSA key pair")
			kp, err := dataprotect.GenerateKeyPair()
			if err != nil {
				return err
			}
			return json.NewEncoder(os.Stdout).Encode(kp)

		case "sealed":
			kp, err := dataprotect.GenerateSealedKeyPair()
			if err != nil {
				return err
			}
			return json.NewEncoder(os.Stdout).Encode(map[string]string{
				"publicKey": kp.PublicKeyB64,
				"secretKey": crypto.ToBase64URL(kp.SecretKey),
			})

		case "signing":
			kp, err := dataprotect.GenerateSigningKeyPair()
			if err != nil {
				return err
			}
			return json.NewEncoder(os.Stdout).Encode(map[string]string{
				"publicKey": crypto.ToBase64URL(kp.PublicKey),
				"secretKey": crypto.ToBase64URL(kp.SecretKey),
			})

		default:
			return fmt.Errorf("unknown key type %q", args[0])
		}

		return nil
	},
}
