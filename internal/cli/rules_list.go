package cli

import (
	"fmt"
	"io"

	"rootlint/internal/lint"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rulesListQuiet bool
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the built-in rules",
	Long: `Inspect the lint rules compiled into this build.

This command group helps you discover which rules exist and what each rule
checks. Rules are evaluated during lint runs (see "rootlint lint --help").

Examples:
  # List all registered rules
  rootlint rules list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered rules",
	Long: `List all rules registered in this build.

The default output is one YAML document describing each rule's name,
severity, description and root-type restriction, in registry order.

Examples:
  rootlint rules list
  rootlint rules list --quiet
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if rulesListQuiet {
			for _, r := range lint.All() {
				fmt.Fprintln(cmd.OutOrStdout(), r.Name)
			}
			return nil
		}
		return lint.WriteList(cmd.OutOrStdout())
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show [rule-name]",
	Short: "Show details of a specific rule",
	Long: `Show details of a specific rule by its name.

Examples:
  rootlint rules show var-run
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range lint.All() {
			if r.Name == args[0] {
				printRule(cmd.OutOrStdout(), r)
				return nil
			}
		}
		return fmt.Errorf("rule not found: %s", args[0])
	},
}

func printRule(w io.Writer, r lint.Rule) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "RULE: %s\n", r.Name)
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintf(w, "Severity: %s\n", r.Severity)
	if r.RootType != nil {
		fmt.Fprintf(w, "Root type: %s\n", r.RootType)
	}
	fmt.Fprintln(w, r.Description)
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesListCmd.Flags().BoolVarP(&rulesListQuiet, "quiet", "q", false, "Only print rule names")
	rulesCmd.AddCommand(rulesShowCmd)
}
