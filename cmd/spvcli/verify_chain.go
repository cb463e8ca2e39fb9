package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chainlens/btcspv/pkg/headerchain"
)

type chainResult struct {
	OK              bool   `json:"ok"`
	TotalDifficulty string `json:"total_difficulty,omitempty"`
	Error           string `json:"error,omitempty"`
}

var constantDifficulty bool

var verifyChainCmd = &cobra.Command{
	Use:   "verify-chain <headers.hex>",
	Short: "Decode and validate a hex-encoded header chain",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerifyChain,
}

func init() {
	verifyChainCmd.Flags().BoolVar(&constantDifficulty, "constant-difficulty", false,
		"require every header in the chain to share the first header's target")
}

func runVerifyChain(cmd *cobra.Command, args []string) error {
	log := logger.WithField("command", "verify-chain")

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return printChainResult(chainResult{OK: false, Error: err.Error()})
	}

	headerBytes, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return printChainResult(chainResult{OK: false, Error: err.Error()})
	}

	headers, err := headerchain.NewArray(headerBytes)
	if err != nil {
		return printChainResult(chainResult{OK: false, Error: err.Error()})
	}

	total, err := headerchain.ValidateHeaderChain(headers, constantDifficulty)
	if err != nil {
		log.WithField("error", err).Warn("header chain validation failed")
		return printChainResult(chainResult{OK: false, Error: err.Error()})
	}

	be := total.BEBytes()
	log.WithField("headers", headers.Len()).Info("header chain validated")
	return printChainResult(chainResult{OK: true, TotalDifficulty: hex.EncodeToString(be[:])})
}

func printChainResult(result chainResult) error {
	out, _ := json.Marshal(result)
	fmt.Println(string(out))
	if !result.OK {
		os.Exit(1)
	}
	return nil
}
