// Package cmd - fmt command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pricing-expr/core/expr"
	"pricing-expr/internal/config"
	"pricing-expr/internal/errors"
)

var (
	fmtIndent  int
	fmtCompact bool
)

// fmtCmd represents the fmt command
var fmtCmd = &cobra.Command{
	Use:   "fmt EXPR",
	Short: "Re-emit an expression in canonical or pretty form",
	Long: `Parse an expression and print it back, pretty-printed by default.

The canonical form (--compact) is the wire form: no whitespace, suitable
for embedding in an outbound request field.

Examples:
  pricexpr fmt "add(mul(tag('PREMIUM_CALL'),3),tag('EXTRA_FEE'),250)"
  pricexpr fmt --compact "add(
    tag('A'),
    1
  )"`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().IntVarP(&fmtIndent, "indent", "i", 0, "indent width (default from config)")
	fmtCmd.Flags().BoolVarP(&fmtCompact, "compact", "c", false, "emit the canonical single-line form")
}

func runFmt(cmd *cobra.Command, args []string) error {
	e, err := expr.Parse(args[0])
	if err != nil {
		if _, ok := err.(*expr.SyntaxError); ok {
			return errors.Parsing("invalid expression syntax", err)
		}
		return errors.Validation("invalid expression", err)
	}

	if fmtCompact {
		fmt.Println(expr.Serialize(e))
		return nil
	}

	indent := fmtIndent
	if indent <= 0 {
		indent = config.Get().Output.Indent
	}
	fmt.Println(expr.PrettyPrint(e, indent))
	return nil
}
