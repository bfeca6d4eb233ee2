package cmd

import (
	"fmt"

	"github.com/gaze-network/pokedex-nft/modules/pokedex"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show pokedex version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), pokedex.Version)
		},
	}
}
