package cmd

import (
	"fmt"

	"github.com/chinmay1088/etherview/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var gasCmd = &cobra.Command{
	Use:   "gas",
	Short: "Show current gas price estimates",
	Long: `Fetch the current gas price estimates from the gas oracle.

Prices are reported in Gwei, from the safe (slow) tier up to the fast
tier, along with the last sampled block.

Examples:
  etherview gas                  # Mainnet gas prices
  etherview gas --chain polygon  # Polygon gas prices`,
	Args: cobra.NoArgs,
	RunE: runGas,
}

func runGas(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	fmt.Printf("⛽ Gas Prices — %s (chainid %d)\n\n", api.ChainLabel(client.ChainID()), client.ChainID())

	resp, err := client.GetGasPrices()
	if err != nil {
		color.Red("✗ %v", err)
		return err
	}
	color.Green("✓ Gas prices fetched successfully")

	var oracle api.GasOracleResult
	if err := resp.DecodeResult(&oracle); err != nil {
		return fmt.Errorf("failed to decode gas oracle result: %w", err)
	}

	displayGasPrices(&oracle)
	return nil
}

func displayGasPrices(oracle *api.GasOracleResult) {
	fmt.Println()
	fmt.Println("=== Current Gas Prices (Gwei) ===")
	fmt.Printf("Safe Gas Price:    %s Gwei\n", orNA(oracle.SafeGasPrice))
	fmt.Printf("Propose Gas Price: %s Gwei\n", orNA(oracle.ProposeGasPrice))
	fmt.Printf("Fast Gas Price:    %s Gwei\n", orNA(oracle.FastGasPrice))
	fmt.Printf("Last Block:        %s\n", orNA(oracle.LastBlock))

	if oracle.SuggestBaseFee != "" {
		fmt.Printf("Suggested Base Fee: %s Gwei\n", oracle.SuggestBaseFee)
	}
}
