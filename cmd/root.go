package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/chinmay1088/etherview/api"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
)

var (
	apiKeyFlag string
	chainFlag  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "etherview",
	Short: "Query the Etherscan v2 API from the command line",
	Long: `Etherview queries the Etherscan v2 API, which serves every supported
network from a single endpoint and selects the target chain with the
required 'chainid' query parameter. Every request this tool sends
carries that parameter.

Get a free API key from https://etherscan.io/myapikey and pass it with
--api-key, set ETHERSCAN_API_KEY, or put it in a .env file. Without a
key the placeholder 'YourApiKeyToken' is used, which is heavily rate
limited.

Examples:
  etherview gas                              # Current gas price estimates
  etherview balance 0xd8dA...6045            # Native coin balance
  etherview token 0xdac1...1ec7 0xd8dA...6045 --decimals 6
  etherview chains                           # Chain ID reference
  etherview demo                             # Run all three examples
  etherview gas --chain sepolia              # Query another network`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env file is optional; without one the plain environment is used.
	_ = godotenv.Load()

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&apiKeyFlag, "api-key", "k", "", "Etherscan API key (default $ETHERSCAN_API_KEY)")
	rootCmd.PersistentFlags().StringVarP(&chainFlag, "chain", "c", "1", "chain ID or network name (ethereum, sepolia, polygon, ...)")

	// Add subcommands
	rootCmd.AddCommand(gasCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(chainsCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
}

// newClient builds an API client from the global flags.
func newClient() (*api.Client, error) {
	chainID, err := resolveChain(chainFlag)
	if err != nil {
		return nil, err
	}
	return api.NewClient(resolveAPIKey(), chainID), nil
}

// resolveChain turns the --chain flag into a chain ID. Numeric values
// pass through untouched so chains this tool has never heard of still
// work; names go through the registry.
func resolveChain(value string) (int64, error) {
	if id, err := strconv.ParseInt(value, 10, 64); err == nil {
		if id <= 0 {
			return 0, fmt.Errorf("invalid chain ID: %d", id)
		}
		return id, nil
	}
	if id, ok := api.LookupChain(value); ok {
		return id, nil
	}
	return 0, fmt.Errorf("unknown network: %s. Use a numeric chain ID or run 'etherview chains'", value)
}

func resolveAPIKey() string {
	if apiKeyFlag != "" {
		return apiKeyFlag
	}
	return os.Getenv("ETHERSCAN_API_KEY")
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Etherview v%s\n", version)
	},
}
