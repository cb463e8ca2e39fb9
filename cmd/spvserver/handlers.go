package main

import (
	"encoding/hex"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/chainlens/btcspv/pkg/headerchain"
	"github.com/chainlens/btcspv/pkg/proof"
)

var (
	proofsValidatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spv_proofs_validated_total",
		Help: "Count of proof validation attempts by result.",
	}, []string{"result"})

	headersValidatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spv_headers_validated_total",
		Help: "Count of header chain validation attempts by result.",
	}, []string{"result"})
)

type proofResponse struct {
	OK    bool   `json:"ok"`
	TxID  string `json:"txid,omitempty"`
	Error string `json:"error,omitempty"`
}

func handleValidateProof(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		proofsValidatedTotal.WithLabelValues("fail").Inc()
		c.JSON(400, proofResponse{OK: false, Error: err.Error()})
		return
	}

	p, err := proof.Decode(body)
	if err != nil {
		proofsValidatedTotal.WithLabelValues("fail").Inc()
		c.JSON(400, proofResponse{OK: false, Error: err.Error()})
		return
	}

	txid := hex.EncodeToString(p.TxID[:])

	if err := p.Validate(); err != nil {
		proofsValidatedTotal.WithLabelValues("fail").Inc()
		c.JSON(200, proofResponse{OK: false, TxID: txid, Error: err.Error()})
		return
	}

	proofsValidatedTotal.WithLabelValues("ok").Inc()
	c.JSON(200, proofResponse{OK: true, TxID: txid})
}

type headersRequest struct {
	HeadersHex         string `json:"headers_hex"`
	ConstantDifficulty bool   `json:"constant_difficulty"`
}

type headersResponse struct {
	OK              bool   `json:"ok"`
	TotalDifficulty string `json:"total_difficulty,omitempty"`
	Error           string `json:"error,omitempty"`
}

func handleValidateHeaders(c *gin.Context) {
	var req headersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		headersValidatedTotal.WithLabelValues("fail").Inc()
		c.JSON(400, headersResponse{OK: false, Error: err.Error()})
		return
	}

	raw, err := hex.DecodeString(req.HeadersHex)
	if err != nil {
		headersValidatedTotal.WithLabelValues("fail").Inc()
		c.JSON(400, headersResponse{OK: false, Error: err.Error()})
		return
	}

	headers, err := headerchain.NewArray(raw)
	if err != nil {
		headersValidatedTotal.WithLabelValues("fail").Inc()
		c.JSON(400, headersResponse{OK: false, Error: err.Error()})
		return
	}

	total, err := headerchain.ValidateHeaderChain(headers, req.ConstantDifficulty)
	if err != nil {
		headersValidatedTotal.WithLabelValues("fail").Inc()
		c.JSON(200, headersResponse{OK: false, Error: err.Error()})
		return
	}

	headersValidatedTotal.WithLabelValues("ok").Inc()
	be := total.BEBytes()
	c.JSON(200, headersResponse{OK: true, TotalDifficulty: hex.EncodeToString(be[:])})
}
