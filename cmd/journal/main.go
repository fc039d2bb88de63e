package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hrut/journal/internal/api"
	"github.com/hrut/journal/internal/classifier"
	"github.com/hrut/journal/internal/config"
	"github.com/hrut/journal/internal/lexicon"
	"github.com/hrut/journal/internal/logger"
	"github.com/hrut/journal/internal/store"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "journal",
		Short: "Journaling backend with sentiment analysis",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(categoriesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var addr string
	var seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Addr
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Seed
			}

			s, err := store.New()
			if err != nil {
				return err
			}
			// Note: don't defer s.Close() as server runs indefinitely

			if seed {
				if err := s.Seed(); err != nil {
					return err
				}
			}

			server := api.New(s, classifier.New(classifier.NewVaderScorer()), addr)
			return server.Run()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8000", "server address")
	cmd.Flags().BoolVar(&seed, "seed", false, "load sample entries at startup")
	return cmd
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [text]",
		Short: "Classify a piece of text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			clf := classifier.New(classifier.NewVaderScorer())
			result, err := clf.Classify(text)
			if err != nil {
				return err
			}

			fmt.Printf("Sentiment:  %s (intensity %d, confidence %.2f)\n",
				result.Sentiment, result.Intensity, result.Confidence)
			if len(result.Emotions) > 0 {
				fmt.Printf("Emotions:   %s\n", strings.Join(result.Emotions, ", "))
			}
			if len(result.Themes) > 0 {
				fmt.Printf("Themes:     %s\n", strings.Join(result.Themes, ", "))
			}

			return nil
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List detectable emotions and themes",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Emotions (%d):\n", len(lexicon.Emotions))
			for _, name := range lexicon.Emotions.Names() {
				fmt.Printf("  - %s\n", name)
			}
			fmt.Printf("\nThemes (%d):\n", len(lexicon.Themes))
			for _, name := range lexicon.Themes.Names() {
				fmt.Printf("  - %s\n", name)
			}
		},
	}
}
