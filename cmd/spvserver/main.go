// Command spvserver exposes the SPV verification core over a thin gin
// JSON HTTP boundary: decode, call into pkg/proof or pkg/headerchain,
// format the result. All verification logic lives in pkg/.
package main

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "spvserver",
	Short: "spvserver validates SPV proofs and header chains over HTTP",
	RunE:  runServer,
}

func init() {
	rootCmd.Flags().String("listen-addr", "127.0.0.1:8080", "address to listen on")
	rootCmd.Flags().String("log-level", "info", "log level (panic|fatal|error|warn|info|debug|trace)")
	rootCmd.Flags().String("log-format", "text", "log format (text|json)")
	rootCmd.Flags().String("network", "mainnet", "network used by the address-enrichment adjunct (mainnet|testnet)")

	viper.BindPFlag("listen-addr", rootCmd.Flags().Lookup("listen-addr"))
	viper.BindPFlag("log-level", rootCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("log-format", rootCmd.Flags().Lookup("log-format"))
	viper.BindPFlag("network", rootCmd.Flags().Lookup("network"))

	replacer := strings.NewReplacer("-", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.SetEnvPrefix("spvserver")
	viper.AutomaticEnv()
}

func runServer(cmd *cobra.Command, args []string) error {
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

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/v1/proofs/validate", handleValidateProof)
	r.POST("/v1/headers/validate", handleValidateHeaders)

	addr := viper.GetString("listen-addr")
	logger.WithField("addr", addr).Info("spvserver listening")
	return r.Run(addr)
}

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		}).Info("request handled")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.WithField("error", err).Fatal("spvserver exited")
	}
}
