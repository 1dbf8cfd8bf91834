package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/reviewlens/reviewlens/internal"
)

var (
	log *logrus.Logger

	cfgFile     string
	showVersion bool
	dumpConfig  bool
	generateKey bool
)

var cmd = &cobra.Command{
	Use:   "reviewlens",
	Short: "reviewlens answers seller questions about a product grounded in its customer reviews",
	Run:   func(cmd *cobra.Command, args []string) { run() },
}

func init() {
	cmd.AddCommand(chatCmd)
	cmd.AddCommand(evaluateCmd)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")
	cmd.PersistentFlags().BoolVarP(&dumpConfig, "dump-config", "d", false, "dump config")
	cmd.PersistentFlags().
		BoolVarP(&generateKey, "generate-token", "g", false, "generate a new JWT token")

	chatCmd.Flags().StringVarP(&chatASIN, "asin", "a", "", "ASIN of the product to chat about")
	_ = chatCmd.MarkFlagRequired("asin")

	evaluateCmd.Flags().
		StringVarP(&datasetPath, "dataset", "f", "", "path to the evaluation dataset JSON file")
	_ = evaluateCmd.MarkFlagRequired("dataset")
	evaluateCmd.Flags().StringVarP(&evalASIN, "asin", "a", "", "ASIN whose reviews to index")
	_ = evaluateCmd.MarkFlagRequired("asin")
	evaluateCmd.Flags().IntVarP(&evalTopK, "top-k", "k", 0, "retrieval depth (default from config)")
}

// Execute executes the root cobra command.
func Execute() {
	log = internal.GetLogger()
	log.SetLevel(logrus.InfoLevel)

	err := cmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
