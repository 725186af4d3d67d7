package entrocheck

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON       bool
	flagSARIF      bool
	flagThreads    int
	flagFailOn     string
	flagNoColor    bool
	flagSelfUpdate bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the entrocheck CLI.
var rootCmd = &cobra.Command{
	Use:           "entrocheck",
	Short:         "Flag config values that look like plaintext secrets",
	Long:          "Entrocheck scans configuration files (YAML, JSON, INI, .env) and flags values whose randomness marks them as likely secrets or weak credentials.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the entrocheck CLI. It should be called by the main package.
// Operational errors (bad files, malformed trees, invalid policy) exit 2;
// findings above the fail-on severity exit 1 from the scan command itself.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "", "fail on suspicious|weak|never (default weak)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update entrocheck to the latest release")
}
