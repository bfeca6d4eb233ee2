package cmd

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/pkg/wallet"
	"github.com/spf13/cobra"
)

type generateKeypairCmdOptions struct {
	Keystore string
	Password string
}

func NewGenerateKeypairCommand() *cobra.Command {
	opts := &generateKeypairCmdOptions{}

	cmd := &cobra.Command{
		Use:   "generate-keypair",
		Short: "Generate a new wallet key for signing claim transactions",
		Long:  "Without --keystore the private key is printed in hex, suitable for wallet.private_key. With --keystore it is encrypted into a keystore file instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateKeypairHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Keystore, "keystore", "", "Directory to store an encrypted keystore file in")
	flags.StringVar(&opts.Password, "password", "", "Keystore password, defaults to $POKEDEX_KEYSTORE_PASSWORD")

	return cmd
}

func generateKeypairHandler(opts *generateKeypairCmdOptions, cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generating key pair\n")

	key, err := wallet.GenerateKey()
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Fprintf(out, "Address: %s\n", crypto.PubkeyToAddress(key.PublicKey).Hex())

	if opts.Keystore == "" {
		fmt.Fprintf(out, "Private key: %s\n", wallet.EncodeKey(key))
		return nil
	}

	password := opts.Password
	if password == "" {
		password = os.Getenv("POKEDEX_KEYSTORE_PASSWORD")
	}
	if password == "" {
		return errors.Wrap(errs.InvalidArgument, "keystore password is required")
	}
	if err := os.MkdirAll(opts.Keystore, 0o700); err != nil {
		return errors.Wrap(err, "create keystore directory")
	}
	account, err := wallet.StoreKey(opts.Keystore, key, password)
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Fprintf(out, "Keystore saved at %s\n", account.URL.Path)
	return nil
}
