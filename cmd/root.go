package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"plx/internal/api"
	"plx/internal/config"
	"plx/internal/models"
	"plx/internal/ui"
)

var (
	configFile    string
	verboseFlag   bool
	usageFlag     bool
	citationsFlag bool
	glowFlag      bool
	apiKeyFlag    string
	modelFlag     string
)

// rootCmd is the main entry point: ask one question, print one answer.
var rootCmd = &cobra.Command{
	Use:   "plx [question]",
	Short: "Ask Perplexity from the command line",
	Long: `plx sends a single question to the Perplexity chat-completions API
and prints the answer, optionally with token usage and citations.

The API key is taken from --api-key, the PERPLEXITY_API_KEY environment
variable, or a settings file, in that order.

Examples:
  plx "how do goroutines differ from OS threads?"
  plx -m sonar-pro -c "who won the 2024 Tour de France?"
  plx -g "explain CRDTs" | glow -`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// MinimumNArgs only guards the argument count; an explicit
		// empty argument (plx "") still needs rejecting before any
		// key resolution or network work.
		question := strings.TrimSpace(strings.Join(args, " "))
		if question == "" {
			return fmt.Errorf("question must not be empty")
		}
		return runAsk(cmd.Context(), question)
	},
}

// GetRootCommand returns the root command with the version set. Called from
// main with the build version string.
func GetRootCommand(v string) *cobra.Command {
	rootCmd.Version = v
	return rootCmd
}

// initConfig loads .env and the settings file, then adjusts the log level.
// Automatically called by cobra before command execution.
func initConfig() {
	if err := config.Init(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if viper.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", "", "settings file (default is ./.plx.yml, then $HOME/.plx.yml)")

	flags := rootCmd.Flags()
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging of request/response details")
	flags.BoolVarP(&usageFlag, "usage", "u", false, "print token usage statistics")
	flags.BoolVarP(&citationsFlag, "citations", "c", false, "print the citation list")
	flags.BoolVarP(&glowFlag, "glow", "g", false, "emit markdown for glow-style rendering instead of styled output")
	flags.StringVarP(&apiKeyFlag, "api-key", "a", "", "API key (overrides "+config.APIKeyEnvVar+")")
	flags.StringVarP(&modelFlag, "model", "m", models.Default, "model to use (see 'plx models')")

	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("model", flags.Lookup("model"))
}

// runAsk performs the single request/response cycle: validate the model,
// resolve the key, send the question, render the result.
func runAsk(ctx context.Context, question string) error {
	model := viper.GetString("model")
	if err := models.GetGlobalRegistry().Validate(model); err != nil {
		return err
	}

	apiKey, err := config.ResolveAPIKey(apiKeyFlag)
	if err != nil {
		return err
	}
	log.Debug("resolved API key", "length", len(apiKey))

	var opts []api.Option
	if baseURL := config.ResolveBaseURL(); baseURL != "" {
		log.Debug("using endpoint override", "base-url", baseURL)
		opts = append(opts, api.WithBaseURL(baseURL))
	}
	client := api.NewClient(apiKey, opts...)

	// The spinner stays off in glow mode and when stderr is not a
	// terminal, so piped output is never polluted.
	var spinner *ui.Spinner
	if !glowFlag && term.IsTerminal(int(os.Stderr.Fd())) {
		spinner = ui.NewSpinner("Thinking")
		spinner.Start()
	}

	resp, err := client.Ask(ctx, model, question)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	renderer := ui.NewRenderer(glowFlag, ui.TerminalWidth())
	fmt.Print(renderer.RenderAnswer(resp.Answer()))

	if citationsFlag {
		if len(resp.Citations) > 0 {
			fmt.Print(renderer.RenderCitations(resp.Citations))
		} else {
			log.Debug("response carried no citations")
		}
	}

	if usageFlag {
		if resp.Usage != nil {
			fmt.Print(renderer.RenderUsage(resp.Usage))
		} else {
			log.Debug("response carried no usage data")
		}
	}

	return nil
}
