package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitaqa/gitaqa-go/logging"
	"github.com/gitaqa/gitaqa-go/qa"
	"github.com/gitaqa/gitaqa-go/server"
)

var askConfigPath string

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question from the command line",
	Long: `Index the configured PDF and answer one question, then exit.

Examples:
  gitaqa ask --config gitaqa.yaml "What does verse 2.47 say?"
  gitaqa ask "Who is Bheeshma?"
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askConfigPath, "config", "c", "gitaqa.yaml", "Path to configuration file")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := server.LoadConfig(askConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewLogger(&cfg.Logging)
	defer func() { _ = logger.Sync() }()

	system, err := buildSystem(context.Background(), cfg, logger)
	if err != nil {
		return err
	}

	question := strings.Join(args, " ")
	switch res := system.AnswerQuestion(question).(type) {
	case qa.Answered:
		fmt.Println(res.Text)
		fmt.Printf("\nConfidence: %.2f\n", res.Confidence)
		for _, src := range res.Sources {
			if src.Page > 0 {
				fmt.Printf("Source: %s (page %d)\n", src.Source, src.Page)
			} else {
				fmt.Printf("Source: %s\n", src.Source)
			}
		}
	case qa.NotFound:
		fmt.Println(qa.AnswerPrefix + res.Reason)
	case qa.Fault:
		return fmt.Errorf("%s", res.Message)
	}
	return nil
}
