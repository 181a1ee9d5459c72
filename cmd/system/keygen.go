package system

import (
	"fmt"

	"github.com/spf13/cobra"

	pasetotoken "github.com/medera/medera_backend/pkg/paseto"
)

func NewKeygenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate PASETO key material for the auth config",
		Long: `Generate fresh PASETO v4 keys and print them as hex, ready to paste into
the authentication.paseto section of the config. Use --mode public for
signed tokens, or the default local mode for encrypted ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := cmd.Flags().GetString("mode")
			if err != nil {
				return fmt.Errorf("failed to read mode flag: %w", err)
			}

			switch pasetotoken.Mode(mode) {
			case pasetotoken.ModeLocal:
				keys := pasetotoken.NewLocalKeys()
				fmt.Println("mode: local")
				fmt.Printf("local_key_hex: %s\n", keys.Symmetric.ExportHex())
			case pasetotoken.ModePublic:
				keys := pasetotoken.NewPublicKeys()
				fmt.Println("mode: public")
				fmt.Printf("secret_key_hex: %s\n", keys.Secret.ExportHex())
				fmt.Printf("public_key_hex: %s\n", keys.Public.ExportHex())
			default:
				return fmt.Errorf("unknown mode %q (use local|public)", mode)
			}
			return nil
		},
	}

	cmd.Flags().String("mode", "local", "Key mode: local (encrypted) or public (signed)")

	return cmd
}
