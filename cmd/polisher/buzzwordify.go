package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/message-polisher/internal/buzzword"
	"github.com/jonathan/message-polisher/internal/observability"
	"github.com/spf13/cobra"
)

var buzzIntensity int

var buzzwordifyCmd = &cobra.Command{
	Use:   "buzzwordify <text>",
	Short: "Apply corporate jargon substitution to text",
	Long:  `Rewrite text with tiered whole-word buzzword substitution. Intensity 0 leaves the text unchanged; 3 is maximum corporatese.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBuzzwordify,
}

func init() {
	buzzwordifyCmd.Flags().IntVar(&buzzIntensity, "intensity", 2, "Substitution intensity (0-3)")
	rootCmd.AddCommand(buzzwordifyCmd)
}

func runBuzzwordify(_ *cobra.Command, args []string) error {
	if buzzIntensity < 0 || buzzIntensity > buzzword.MaxIntensity {
		return fmt.Errorf("intensity must be between 0 and %d, got %d", buzzword.MaxIntensity, buzzIntensity)
	}

	text := strings.Join(args, " ")
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintTransform(text, buzzword.Apply(text, buzzIntensity))
	return nil
}
