// Command spvcli is a cobra-based CLI over the SPV verification core:
// it decodes proof envelopes and header chains from the filesystem,
// drives pkg/proof and pkg/headerchain, and prints a JSON result.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "spvcli",
	Short: "spvcli verifies Bitcoin SPV proofs and header chains",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (panic|fatal|error|warn|info|debug|trace)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text|json)")
	rootCmd.PersistentFlags().String("network", "mainnet", "network used by the address-enrichment adjunct (mainnet|testnet)")

	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("network", rootCmd.PersistentFlags().Lookup("network"))

	replacer := strings.NewReplacer("-", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.SetEnvPrefix("spvcli")
	viper.AutomaticEnv()

	cobra.OnInitialize(initLogger)

	rootCmd.AddCommand(verifyProofCmd)
	rootCmd.AddCommand(verifyChainCmd)
}

func initLogger() {
	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if viper.GetString("log-format") == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func main() {
	Execute()
}
