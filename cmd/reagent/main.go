// Command reagent runs a ReAct reasoning agent from the terminal, either as
// an interactive session or as a single question with the ask subcommand.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanvu/reagent/agent"
	"github.com/phanvu/reagent/capability"
	"github.com/phanvu/reagent/config"
	"github.com/phanvu/reagent/llm"
)

var (
	flagConfig   string
	flagProvider string
	flagModel    string
	flagMaxTurns int
	flagVerbose  bool
)

func main() {
	root := &cobra.Command{
		Use:   "reagent",
		Short: "A ReAct reasoning agent with web search, scraping, weather, math, and file tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context())
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&flagProvider, "provider", "", "completion provider (openai or anthropic)")
	root.PersistentFlags().StringVar(&flagModel, "model", "", "model identifier")
	root.PersistentFlags().IntVar(&flagMaxTurns, "max-turns", 0, "maximum model calls per question")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print loop events as they happen")

	ask := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question and print the final answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context(), strings.Join(args, " "))
		},
	}
	root.AddCommand(ask)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads configuration and wires the logger, llm client, capability
// registry, and agent.
func setup() (*agent.Agent, *zap.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if flagProvider != "" {
		cfg.Provider = flagProvider
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagMaxTurns > 0 {
		cfg.MaxTurns = flagMaxTurns
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, nil, err
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	registry := agent.NewRegistry()
	registry.Register(capability.NewCalculator())
	registry.Register(capability.NewSearch(cfg.SerperAPIKey))
	registry.Register(capability.NewScraper())
	registry.Register(capability.NewWeather(cfg.WeatherAPIKey))
	registry.Register(capability.NewFileReader())
	registry.Register(capability.NewFileWriter())

	temp := cfg.Temperature
	a := agent.New(client, registry, agent.Config{
		Model:         cfg.Model,
		Provider:      cfg.Provider,
		MaxTurns:      cfg.MaxTurns,
		Temperature:   &temp,
		DetectRepeats: true,
	}, agent.WithLogger(logger))

	if flagVerbose {
		go printEvents(a.Events())
	}
	return a, logger, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newClient(cfg config.Config, logger *zap.Logger) (*llm.Client, error) {
	client := llm.NewClient(llm.WithMiddleware(llm.LoggingMiddleware(logger)))
	if cfg.MaxRetries > 0 {
		policy := llm.DefaultRetryPolicy()
		policy.MaxRetries = cfg.MaxRetries
		client = llm.NewClient(
			llm.WithMiddleware(llm.LoggingMiddleware(logger)),
			llm.WithRetry(policy),
		)
	}

	registered := 0
	if cfg.OpenAIAPIKey != "" {
		adapter, err := llm.NewGollmAdapter("openai", cfg.OpenAIAPIKey, llm.WithModel(cfg.Model))
		if err != nil {
			return nil, fmt.Errorf("configuring openai: %w", err)
		}
		client.RegisterProvider("openai", adapter)
		registered++
	}
	if cfg.AnthropicAPIKey != "" {
		adapter, err := llm.NewGollmAdapter("anthropic", cfg.AnthropicAPIKey, llm.WithModel(cfg.Model))
		if err != nil {
			return nil, fmt.Errorf("configuring anthropic: %w", err)
		}
		client.RegisterProvider("anthropic", adapter)
		registered++
	}
	if registered == 0 {
		return nil, fmt.Errorf("no API keys found; set OPENAI_API_KEY or ANTHROPIC_API_KEY")
	}
	return client, nil
}

func printEvents(events <-chan agent.Event) {
	for ev := range events {
		switch ev.Kind {
		case agent.EventActionDispatch:
			fmt.Printf(" -- Running %v: %v\n", ev.Data["action"], ev.Data["argument"])
		case agent.EventObservation:
			fmt.Printf(" -- Observation: %v\n", ev.Data["observation"])
		case agent.EventAssistantReply:
			fmt.Printf("%v\n", ev.Data["content"])
		case agent.EventRepeatWarning:
			fmt.Printf(" -- Repeated action: %v\n", ev.Data["action"])
		}
	}
}

func runOnce(ctx context.Context, question string) error {
	a, logger, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()
	defer logger.Sync()

	result, err := a.Run(ctx, question)
	if err != nil {
		return err
	}
	fmt.Printf("\nFinal Response:\n%s\n", result.Answer)
	return nil
}

func runInteractive(ctx context.Context) error {
	a, logger, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()
	defer logger.Sync()

	fmt.Println("Welcome to the ReAct Agent. Type 'exit' to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nEnter your question: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if strings.EqualFold(question, "exit") {
			return nil
		}

		result, err := a.Run(ctx, question)
		if err != nil {
			return err
		}
		fmt.Printf("\n\nFinal Response:\n%s\n", result.Answer)
	}
}
