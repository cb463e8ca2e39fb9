package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chainlens/btcspv/pkg/proof"
)

type proofResult struct {
	OK    bool   `json:"ok"`
	TxID  string `json:"txid,omitempty"`
	Error string `json:"error,omitempty"`
}

var verifyProofCmd = &cobra.Command{
	Use:   "verify-proof <proof.json>",
	Short: "Decode and validate an SPVProof JSON envelope",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerifyProof,
}

func runVerifyProof(cmd *cobra.Command, args []string) error {
	log := logger.WithField("command", "verify-proof")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return printProofResult(log, proofResult{OK: false, Error: err.Error()})
	}

	p, err := proof.Decode(data)
	if err != nil {
		return printProofResult(log, proofResult{OK: false, Error: err.Error()})
	}

	if err := p.Validate(); err != nil {
		return printProofResult(log, proofResult{OK: false, TxID: hexTxID(p), Error: err.Error()})
	}

	return printProofResult(log, proofResult{OK: true, TxID: hexTxID(p)})
}

func printProofResult(log *logrus.Entry, result proofResult) error {
	out, _ := json.Marshal(result)
	fmt.Println(string(out))
	if !result.OK {
		log.WithField("error", result.Error).Warn("proof validation failed")
		os.Exit(1)
	}
	log.Info("proof validated")
	return nil
}

func hexTxID(p *proof.SPVProof) string {
	return fmt.Sprintf("%x", p.TxID)
}
