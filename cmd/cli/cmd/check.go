// Package cmd - check command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pricing-expr/core/expr"
	"pricing-expr/internal/errors"
	"pricing-expr/internal/logging"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check EXPR...",
	Short: "Validate pricing expressions",
	Long: `Parse each argument as a pricing expression and report the first
violation found.

Examples:
  pricexpr check "add(tag('PREMIUM_CALL'),250)"
  pricexpr check "div(100,0)" "tag('EXTRA_FEE')"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	for _, input := range args {
		logging.Debug("checking expression", zap.String("input", input))
		e, err := expr.Parse(input)
		if err != nil {
			if _, ok := err.(*expr.SyntaxError); ok {
				return errors.Parsing("invalid expression syntax", err)
			}
			return errors.Validation("invalid expression", err)
		}
		fmt.Printf("ok: %s\n", expr.Serialize(e))
	}
	return nil
}
