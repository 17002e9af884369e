package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/jonathan/message-polisher/internal/compose"
	"github.com/jonathan/message-polisher/internal/observability"
	"github.com/jonathan/message-polisher/internal/phrasebank"
	"github.com/jonathan/message-polisher/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	polishTone        string
	polishMedium      string
	polishLength      string
	polishLocale      string
	polishSuggestions int
	polishSubject     bool
	polishBullets     bool
	polishFiles       []string
)

var polishCmd = &cobra.Command{
	Use:   "polish [text]",
	Short: "Polish raw text into message variants",
	Long: `Compose polished message variants from raw text. Text is taken from the
argument, or from one or more files given with --file; files are processed
concurrently, each with its own deterministic random sequence.`,
	RunE: runPolish,
}

func init() {
	polishCmd.Flags().StringVar(&polishTone, "tone", "formal", "Tone: formal, casual, executive, empathetic, assertive, friendly, persuasive")
	polishCmd.Flags().StringVar(&polishMedium, "medium", "slack", "Medium: email, slack, teams, whatsapp, text, doc")
	polishCmd.Flags().StringVar(&polishLength, "length", "short", "Length: short, medium, long")
	polishCmd.Flags().StringVar(&polishLocale, "locale", "Generic", "Locale: US, IN, UK, AU, SG, Generic")
	polishCmd.Flags().IntVar(&polishSuggestions, "suggestions", 3, "How many alternative phrasings to produce (1-8)")
	polishCmd.Flags().BoolVar(&polishSubject, "subject", false, "Include subject suggestions (email medium only)")
	polishCmd.Flags().BoolVar(&polishBullets, "bullets", false, "Include a concise bullet list of key points")
	polishCmd.Flags().StringSliceVarP(&polishFiles, "file", "f", nil, "Read input text from file (repeatable)")
	rootCmd.AddCommand(polishCmd)
}

func runPolish(_ *cobra.Command, args []string) error {
	if len(args) == 0 && len(polishFiles) == 0 {
		return fmt.Errorf("provide text as an argument or at least one --file")
	}

	composer := compose.New(phrasebank.Defaults())
	printer := observability.NewPrinter(os.Stdout)

	if len(args) > 0 {
		req, err := polishRequest(strings.Join(args, " "))
		if err != nil {
			return err
		}
		printer.PrintVariants(polishVariants(composer, req))
	}

	if len(polishFiles) == 0 {
		return nil
	}

	// Each file is an independent request, so they can run concurrently:
	// every one gets its own generator seeded from its own input.
	results := make([][]types.MessageVariant, len(polishFiles))
	var g errgroup.Group
	for i, path := range polishFiles {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			req, err := polishRequest(strings.TrimSpace(string(data)))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = polishVariants(composer, req)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, variants := range results {
		fmt.Printf("== %s\n", polishFiles[i])
		printer.PrintVariants(variants)
	}
	return nil
}

// polishRequest builds and validates the request for one input text.
func polishRequest(text string) (*types.PolishRequest, error) {
	req := &types.PolishRequest{
		Text:           text,
		Tone:           types.Tone(polishTone),
		Medium:         types.Medium(polishMedium),
		Length:         types.Length(polishLength),
		Locale:         types.Locale(polishLocale),
		Suggestions:    polishSuggestions,
		AddSubject:     polishSubject,
		IncludeBullets: polishBullets,
	}
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	return req, nil
}

func polishVariants(composer *compose.Composer, req *types.PolishRequest) []types.MessageVariant {
	rng := rand.New(rand.NewSource(compose.Seed(req.Text, req.Suggestions)))
	return composer.Variants(req.Params(), req.Suggestions, rng)
}
