package cmd

import (
	"fmt"

	"github.com/chinmay1088/etherview/api"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token [contract] [address]",
	Short: "Check an ERC-20 token balance",
	Long: `Fetch the ERC-20 token balance a wallet holds for one contract, at
the latest block.

The API reports the balance in the token's smallest unit; pass the
token's decimals with --decimals to display whole tokens (USDT uses 6,
most tokens use 18).

Examples:
  etherview token 0xdac17f958d2ee523a2206206994597c13d831ec7 0xd8dA...6045 --decimals 6
  etherview token 0xdac1...1ec7 0xd8dA...6045 --raw`,
	Args: cobra.ExactArgs(2),
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().Int32("decimals", 18, "token decimals for display")
	tokenCmd.Flags().Bool("raw", false, "print the balance in the token's smallest unit")
}

func runToken(cmd *cobra.Command, args []string) error {
	contract, address := args[0], args[1]
	if !common.IsHexAddress(contract) {
		return fmt.Errorf("invalid contract address: %s", contract)
	}
	if !common.IsHexAddress(address) {
		return fmt.Errorf("invalid wallet address: %s", address)
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	decimals, _ := cmd.Flags().GetInt32("decimals")
	rawFlag, _ := cmd.Flags().GetBool("raw")

	fmt.Printf("🪙 Token Balance — %s (chainid %d)\n", api.ChainLabel(client.ChainID()), client.ChainID())
	fmt.Printf("📍 Contract: %s\n", contract)
	fmt.Printf("📍 Wallet:   %s\n\n", address)

	resp, err := client.GetTokenBalance(contract, address)
	if err != nil {
		color.Red("✗ %v", err)
		return err
	}
	color.Green("✓ Token balance fetched successfully")

	var units string
	if err := resp.DecodeResult(&units); err != nil {
		return fmt.Errorf("failed to decode token balance result: %w", err)
	}

	if rawFlag {
		fmt.Printf("\nBalance: %s\n", units)
		return nil
	}

	balance, err := formatUnits(units, decimals)
	if err != nil {
		return err
	}
	fmt.Printf("\nBalance: %s\n", balance)
	return nil
}
