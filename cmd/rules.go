package cmd

import (
	"github.com/spf13/cobra"
	"github.com/user/token-auditor/pkg/engine"
	"gopkg.in/yaml.v3"
)

// ruleView is the printable form of one detection rule
type ruleView struct {
	Name        string `yaml:"name"`
	Expression  string `yaml:"expression"`
	Description string `yaml:"description"`
	Points      int    `yaml:"points"`
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the built-in detection rules and their score weights",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rules []ruleView
		for _, p := range engine.Patterns() {
			rules = append(rules, ruleView{
				Name:        p.Name,
				Expression:  p.Expr.String(),
				Description: p.Description,
				Points:      engine.PatternPoints(p.Name),
			})
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(rules); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
