package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/mobiusclinic/clinica_backend/cmd/http"
	systemcmd "github.com/mobiusclinic/clinica_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "clinica",
	Short: "Clinica record-keeping backend for the clinic roleplay.",
	Long: `Clinica is the record-keeping backend of an in-person clinic roleplay.
It tracks patients and doctors, the mental-state scale, the two map
worksheets and the authored recipe and device ledgers.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
