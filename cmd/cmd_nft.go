package cmd

import (
	"math/big"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/internal/config"
	"github.com/gaze-network/pokedex-nft/modules/pokedex"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/usecase"
	"github.com/gaze-network/pokedex-nft/pkg/evm"
	"github.com/gaze-network/pokedex-nft/pkg/wallet"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

type nftTxOutput struct {
	TxHash      string `json:"transactionHash"`
	BlockNumber uint64 `json:"blockNumber"`
	GasUsed     uint64 `json:"gasUsed"`
}

func newTxOutput(receipt *types.Receipt) nftTxOutput {
	return nftTxOutput{
		TxHash:      receipt.TxHash.Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}
}

// withUsecase runs fn with a usecase over a freshly wired module.
func withUsecase(cmd *cobra.Command, fn func(module *pokedex.Module, uc *usecase.Usecase) error) error {
	ctx := cmd.Context()
	conf := config.Load(configFile, cmd.Flags())
	injector := newInjector(ctx, conf)
	defer shutdownInjector(ctx, injector)

	module, err := do.Invoke[*pokedex.Module](injector)
	if err != nil {
		return errors.Wrap(err, "can't init pokedex module")
	}
	return fn(module, module.Usecase())
}

// withSigner is withUsecase for commands that send transactions.
func withSigner(cmd *cobra.Command, fn func(uc *usecase.Usecase, signer *wallet.Connection) error) error {
	return withUsecase(cmd, func(module *pokedex.Module, uc *usecase.Usecase) error {
		signer, err := module.Wallet()
		if err != nil {
			return errors.WithStack(err)
		}
		return fn(uc, signer)
	})
}

func parseTokenId(arg string) (*big.Int, error) {
	tokenId, err := evm.ParseUint256(arg)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid token id %q", arg)
	}
	return tokenId, nil
}

func NewNFTCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nft",
		Short: "Read and manage PokemonNFT tokens",
	}
	cmd.AddCommand(
		newNFTTokenCommand(),
		newNFTWalletCommand(),
		newNFTHistoryCommand(),
		newNFTApproveCommand(),
		newNFTApproveAllCommand(),
		newNFTTransferCommand(),
	)
	return cmd
}

func newNFTTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token <token-id>",
		Short: "Show owner, URI and approval of a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenId, err := parseTokenId(args[0])
			if err != nil {
				return errors.WithStack(err)
			}
			return withUsecase(cmd, func(_ *pokedex.Module, uc *usecase.Usecase) error {
				token, err := uc.GetToken(cmd.Context(), tokenId)
				if err != nil {
					return errors.WithStack(err)
				}
				return printJSON(cmd.OutOrStdout(), token)
			})
		},
	}
}

func newNFTWalletCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wallet <address>",
		Short: "Show the token and native balances of a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := evm.ParseAddress(args[0])
			if err != nil {
				return errors.WithStack(err)
			}
			return withUsecase(cmd, func(_ *pokedex.Module, uc *usecase.Usecase) error {
				summary, err := uc.GetWallet(cmd.Context(), address)
				if err != nil {
					return errors.WithStack(err)
				}
				return printJSON(cmd.OutOrStdout(), summary)
			})
		},
	}
}

func newNFTHistoryCommand() *cobra.Command {
	var limit int32
	cmd := &cobra.Command{
		Use:   "history <address>",
		Short: "Show recorded claim attempts of a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := evm.ParseAddress(args[0])
			if err != nil {
				return errors.WithStack(err)
			}
			return withUsecase(cmd, func(_ *pokedex.Module, uc *usecase.Usecase) error {
				records, err := uc.GetClaimHistory(cmd.Context(), address, limit)
				if err != nil {
					return errors.WithStack(err)
				}
				return printJSON(cmd.OutOrStdout(), records)
			})
		},
	}
	cmd.Flags().Int32Var(&limit, "limit", usecase.DefaultHistoryLimit, "Maximum number of records")
	return cmd
}

func newNFTApproveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <to> <token-id>",
		Short: "Approve an address to transfer a token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := evm.ParseAddress(args[0])
			if err != nil {
				return errors.WithStack(err)
			}
			tokenId, err := parseTokenId(args[1])
			if err != nil {
				return errors.WithStack(err)
			}
			return withSigner(cmd, func(uc *usecase.Usecase, signer *wallet.Connection) error {
				receipt, err := uc.Approve(cmd.Context(), signer, to, tokenId)
				if err != nil {
					return errors.WithStack(err)
				}
				return printJSON(cmd.OutOrStdout(), newTxOutput(receipt))
			})
		},
	}
}

func newNFTApproveAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "approve-all <operator> <true|false>",
		Short: "Grant or revoke an operator for every token of the wallet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operator, err := evm.ParseAddress(args[0])
			if err != nil {
				return errors.WithStack(err)
			}
			approved, err := strconv.ParseBool(args[1])
			if err != nil {
				return errors.Wrapf(errs.InvalidArgument, "invalid approval %q", args[1])
			}
			return withSigner(cmd, func(uc *usecase.Usecase, signer *wallet.Connection) error {
				receipt, err := uc.SetApprovalForAll(cmd.Context(), signer, operator, approved)
				if err != nil {
					return errors.WithStack(err)
				}
				return printJSON(cmd.OutOrStdout(), newTxOutput(receipt))
			})
		},
	}
}

func newNFTTransferCommand() *cobra.Command {
	var (
		safe bool
		data string
	)
	cmd := &cobra.Command{
		Use:   "transfer <to> <token-id>",
		Short: "Transfer a token from the wallet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := evm.ParseAddress(args[0])
			if err != nil {
				return errors.WithStack(err)
			}
			tokenId, err := parseTokenId(args[1])
			if err != nil {
				return errors.WithStack(err)
			}
			var payload []byte
			if data != "" {
				if payload, err = hexutil.Decode(data); err != nil {
					return errors.Wrapf(errs.InvalidArgument, "invalid data %q", data)
				}
			}
			return withSigner(cmd, func(uc *usecase.Usecase, signer *wallet.Connection) error {
				var (
					receipt *types.Receipt
					err     error
				)
				if safe || payload != nil {
					receipt, err = uc.SafeTransfer(cmd.Context(), signer, to, tokenId, payload)
				} else {
					receipt, err = uc.Transfer(cmd.Context(), signer, to, tokenId)
				}
				if err != nil {
					return errors.WithStack(err)
				}
				return printJSON(cmd.OutOrStdout(), newTxOutput(receipt))
			})
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&safe, "safe", false, "Use safeTransferFrom, the receiver must accept ERC-721 tokens")
	flags.StringVar(&data, "data", "", "0x-prefixed data passed to the receiver, implies --safe")
	return cmd
}
