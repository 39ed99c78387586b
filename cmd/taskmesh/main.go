// Command taskmesh runs the interactive multi-agent coordination session: a
// coordinator that delegates research, code analysis and content creation
// requests to specialist agents backed by a language model provider.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/taskmesh"
	"github.com/hupe1980/taskmesh/core"
	"github.com/hupe1980/taskmesh/logging"
	"github.com/hupe1980/taskmesh/model"
	"github.com/hupe1980/taskmesh/model/anthropic"
	"github.com/hupe1980/taskmesh/model/openai"
)

var (
	provider  string
	modelName string
	logLevel  string
	logFormat string
)

// quitWords terminate the interactive session (case-insensitive).
var quitWords = map[string]bool{"quit": true, "exit": true, "bye": true, "q": true}

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskmesh",
		Short: "TaskMesh - multi-agent task delegation",
		Long: `An interactive coordinator that delegates requests to specialist agents:
a research agent for topic investigation, a code agent for code review and a
creative agent for content creation. Type a request and the coordinator picks
the right specialist; complex analysis requests run a research-then-report
pipeline.`,
		RunE: runInteractive,
	}

	rootCmd.PersistentFlags().StringVarP(&provider, "provider", "p", "openai", "model provider (openai or anthropic)")
	rootCmd.PersistentFlags().StringVarP(&modelName, "model", "m", "", "model name override")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text or json)")

	examplesCmd := &cobra.Command{
		Use:   "examples",
		Short: "Run example interactions",
		Long:  `Run a fixed set of example requests demonstrating specialist coordination.`,
		RunE:  runExamples,
	}
	rootCmd.AddCommand(examplesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildMesh wires configuration, credential validation and the model backend.
// A missing credential is fatal before any session starts.
func buildMesh() (*taskmesh.TaskMesh, error) {
	viper.SetDefault("provider", "openai")
	if err := viper.BindEnv("openai_api_key", "OPENAI_API_KEY"); err != nil {
		return nil, err
	}
	if err := viper.BindEnv("anthropic_api_key", "ANTHROPIC_API_KEY"); err != nil {
		return nil, err
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.ParseLevel(logLevel),
		Format:    logFormat,
		Output:    os.Stderr,
		Component: "taskmesh",
	})

	var llm model.Model
	switch provider {
	case "openai":
		if viper.GetString("openai_api_key") == "" {
			return nil, core.NewConfigError("OPENAI_API_KEY", "")
		}
		llm = openai.NewModel(func(o *openai.Options) {
			if modelName != "" {
				o.Model = modelName
			}
		})
	case "anthropic":
		key := viper.GetString("anthropic_api_key")
		if key == "" {
			return nil, core.NewConfigError("ANTHROPIC_API_KEY", "")
		}
		llm = anthropic.NewModel(func(o *anthropic.Options) {
			o.APIKey = key
			if modelName != "" {
				o.Model = anthropicsdk.Model(modelName)
			}
		})
	default:
		return nil, core.NewConfigError("provider", fmt.Sprintf("unknown provider %q", provider))
	}

	return taskmesh.New(llm, func(o *taskmesh.Options) {
		o.Logger = logger
	}), nil
}

// runInteractive is the session driver loop: one request per turn, with the
// "history" and quit literals special-cased.
func runInteractive(cmd *cobra.Command, _ []string) error {
	mesh, err := buildMesh()
	if err != nil {
		return err
	}

	sessionID, err := mesh.NewSession()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Multi-agent system started.")
	fmt.Println("Available agents: research, code analysis, content creation.")
	fmt.Println("Type a request, 'history' for the task log, or 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		lower := strings.ToLower(input)
		if quitWords[lower] {
			fmt.Println("Shutting down. Goodbye!")
			return nil
		}
		if lower == "history" {
			history, err := mesh.History(sessionID, 0)
			if err != nil {
				return err
			}
			fmt.Printf("\n%s\n", history)
			continue
		}

		response, err := mesh.Process(ctx, sessionID, input)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			return err
		}
		fmt.Printf("\n%s\n", response)
	}

	if err := scanner.Err(); err != nil {
		return err
	}
	fmt.Println("\nSession ended. Goodbye!")
	return nil
}

// runExamples processes the canned example requests sequentially.
func runExamples(cmd *cobra.Command, _ []string) error {
	mesh, err := buildMesh()
	if err != nil {
		return err
	}

	sessionID, err := mesh.NewSession()
	if err != nil {
		return err
	}

	examples := []string{
		"Research quantum computing trends",
		"Analyze this Python code: def factorial(n): return 1 if n <= 1 else n * factorial(n-1)",
		"Write a professional email about project updates",
		"Do a complex analysis on artificial intelligence impact on healthcare",
	}

	for i, example := range examples {
		fmt.Printf("\n%d. Example: %s\n", i+1, example)
		fmt.Println(strings.Repeat("-", 40))
		response, err := mesh.Process(cmd.Context(), sessionID, example)
		if err != nil {
			return err
		}
		fmt.Println(response)
	}

	history, err := mesh.History(sessionID, 0)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s\n", history)

	return nil
}
