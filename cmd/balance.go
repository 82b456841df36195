package cmd

import (
	"fmt"

	"github.com/chinmay1088/etherview/api"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Check the native coin balance of an address",
	Long: `Fetch the native coin balance of an address at the latest block.

The balance is reported in whole coins (wei shifted by 18 decimals);
use --raw for the untouched wei string.

Examples:
  etherview balance 0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045
  etherview balance 0xd8dA...6045 --raw
  etherview balance 0xd8dA...6045 --chain polygon`,
	Args: cobra.ExactArgs(1),
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().Bool("raw", false, "print the balance in wei")
}

func runBalance(cmd *cobra.Command, args []string) error {
	address := args[0]
	if !common.IsHexAddress(address) {
		return fmt.Errorf("invalid address: %s", address)
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	rawFlag, _ := cmd.Flags().GetBool("raw")

	fmt.Printf("💰 Native Balance — %s (chainid %d)\n", api.ChainLabel(client.ChainID()), client.ChainID())
	fmt.Printf("📍 Address: %s\n\n", address)

	resp, err := client.GetEthBalance(address)
	if err != nil {
		color.Red("✗ %v", err)
		return err
	}
	color.Green("✓ Balance fetched successfully")

	var wei string
	if err := resp.DecodeResult(&wei); err != nil {
		return fmt.Errorf("failed to decode balance result: %w", err)
	}

	if rawFlag {
		fmt.Printf("\nBalance: %s wei\n", wei)
		return nil
	}

	balance, err := formatUnits(wei, 18)
	if err != nil {
		return err
	}
	fmt.Printf("\nBalance: %s ETH\n", balance)
	return nil
}
