package cmd

import (
	"bytes"
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/user/token-auditor/pkg/config"
	"github.com/user/token-auditor/pkg/engine"
	"github.com/user/token-auditor/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "token-auditor --file <contract.sol>",
	Short: "Heuristic risk audit for token smart contracts",
	Long: `token-auditor reads a single token contract source file, extracts lexical
risk features (mint authority, adjustable fees, blacklists, trading locks,
transaction limits, size) and reports a 0-100 risk score with a verdict.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if DebugMode {
			opts.LogLevel = "debug"
		}
		opts.Normalize()
		logger := logging.New(opts.LogLevel, opts.LogFormat, cmd.ErrOrStderr())
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(cmd.Context(), cmd.OutOrStdout(), &opts)
	},
}

var (
	DebugMode bool
	opts      = *config.Default()
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// runAudit audits opts.File and writes the rendered result to out.
// Nothing is written unless the whole result rendered successfully.
func runAudit(ctx context.Context, out io.Writer, opts *config.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	log.Debug("auditing contract", "file", opts.File, "format", opts.Format)

	result, err := engine.AuditToken(opts.File)
	if err != nil {
		return err
	}

	log.Debug("audit complete",
		"file", result.File,
		"risk_score", result.RiskScore,
		"risk_level", result.RiskLevel,
		"label", result.Label,
		"fingerprint", result.Fingerprint.Hex(),
	)

	var buf bytes.Buffer
	if err := engine.Render(&buf, opts.Format, result); err != nil {
		return err
	}
	_, err = out.Write(buf.Bytes())
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", config.DefaultLogFormat, "Log format (text, json)")

	rootCmd.Flags().StringVarP(&opts.File, "file", "f", "", "Path to the token contract source (e.g. contracts/Token.sol)")
	rootCmd.Flags().StringVarP(&opts.Format, "format", "o", config.DefaultFormat, "Output format (json, yaml, text)")
	_ = rootCmd.MarkFlagRequired("file")
}
