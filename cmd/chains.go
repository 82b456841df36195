package cmd

import (
	"fmt"

	"github.com/chinmay1088/etherview/api"
	"github.com/spf13/cobra"
)

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "List known chain IDs",
	Long: `List the chain IDs this tool knows by name.

Any other EIP-155 chain ID can still be passed numerically with
--chain; the API decides whether it is supported.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("🌐 Chain ID Reference")
		fmt.Println()
		for _, id := range api.KnownChains() {
			fmt.Printf("  %-10d %s\n", id, api.ChainLabel(id))
		}
		fmt.Println()
		fmt.Println("💡 The v2 API requires the chainid parameter on every call")
	},
}
