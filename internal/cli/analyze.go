package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/config"
	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/runner"
	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/ui/live"
)

// runAnalysis is a test seam for analysis execution.
var runAnalysis = runner.Run

// runAnalyze builds the handler for the analyze command.
func runAnalyze(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		defaults := config.Default()
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to quizanalyze.yml (default: use it when present)")
		quizzes := fs.String("quizzes", defaults.Quizzes, "Path to the quiz questions CSV")
		results := fs.String("results", defaults.Results, "Path to the quiz results CSV")
		outputDir := fs.String("output-dir", defaults.OutputDir, "Directory for per-result analyses")
		model := fs.String("model", defaults.Model, "Perplexity model name")
		timeout := fs.Int("timeout", defaults.TimeoutSeconds, "API request timeout in seconds (0 disables)")
		uiMode := fs.String("ui", defaults.UI, "UI mode: auto, live, or plain")
		dryRun := fs.Bool("dry-run", false, "Build prompts without calling the API")
		limit := fs.Int("limit", 0, "Process at most N result rows (0 = all)")
		printJSON := fs.Bool("print-json", false, "Print raw API response JSON to stdout")
		verbose := fs.Bool("verbose", false, "Verbose logging")
		noColor := fs.Bool("no-color", false, "Disable ANSI colors")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadRunConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "quizzes":
				cfg.Quizzes = *quizzes
			case "results":
				cfg.Results = *results
			case "output-dir":
				cfg.OutputDir = *outputDir
			case "model":
				cfg.Model = *model
			case "timeout":
				cfg.TimeoutSeconds = *timeout
			case "ui":
				cfg.UI = *uiMode
			}
		})
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(stderr, "Invalid configuration:\n%s\n", err.Error())
			return ExitError
		}

		decision, err := resolveUIMode(cfg.UI, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		params := runner.RunParams{
			DryRun:        *dryRun,
			Limit:         *limit,
			PrintJSON:     *printJSON,
			Credentials:   config.LoadCredentials(),
			Verbose:       *verbose,
			VerboseWriter: stdout,
			NoColor:       *noColor,
			Stdout:        stdout,
		}

		var controller *live.Controller
		if decision.useLive {
			controller = live.Start(stdout, live.Options{NoColor: *noColor})
			params.Observer = controller
			params.Stdout = nil
		}

		runResults, err := runAnalysis(context.Background(), cfg, params)
		if controller != nil {
			controller.Close()
			controller.Wait()
		}
		if err != nil {
			fmt.Fprintf(stderr, "Analysis failed: %v\n", err)
			return ExitError
		}

		runner.WriteReport(stdout, runResults, cfg.OutputDir)
		return ExitOK
	}
}
