package main

import (
	"fmt"
	"os"

	"github.com/jonathan/message-polisher/internal/observability"
	"github.com/jonathan/message-polisher/internal/phrasebank"
	"github.com/spf13/cobra"
)

var phrasesCmd = &cobra.Command{
	Use:   "phrases [context]",
	Short: "Show the static phrase reference",
	Long:  `Print the phrase reference. With a context argument (e.g. one_on_one, status, follow_up, wfh) only that context's phrases are shown.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPhrases,
}

func init() {
	rootCmd.AddCommand(phrasesCmd)
}

func runPhrases(_ *cobra.Command, args []string) error {
	banks := phrasebank.Defaults()
	printer := observability.NewPrinter(os.Stdout)

	if len(args) == 1 {
		phrases, ok := banks.ReferenceContext(args[0])
		if !ok {
			return fmt.Errorf("unknown context %q", args[0])
		}
		printer.PrintPhraseMap(map[string][]string{args[0]: phrases})
		return nil
	}

	printer.PrintPhraseMap(banks.Reference)
	return nil
}
