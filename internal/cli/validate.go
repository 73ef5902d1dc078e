package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/dataset"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to quizanalyze.yml (default: use it when present)")
		quizzes := fs.String("quizzes", "", "Path to the quiz questions CSV")
		results := fs.String("results", "", "Path to the quiz results CSV")
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
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
		if strings.TrimSpace(*quizzes) != "" {
			cfg.Quizzes = *quizzes
		}
		if strings.TrimSpace(*results) != "" {
			cfg.Results = *results
		}

		questions, questionWarnings, err := dataset.LoadQuestions(cfg.Quizzes)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		printDatasetReport(stdout, cfg.Quizzes, fmt.Sprintf("%d question(s)", len(questions)), questionWarnings)

		resultRows, resultWarnings, err := dataset.LoadResults(cfg.Results)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		printDatasetReport(stdout, cfg.Results, fmt.Sprintf("%d result(s)", len(resultRows)), resultWarnings)

		fmt.Fprintln(stdout, "Data OK")
		return ExitOK
	}
}

// printDatasetReport prints one file's row count and load warnings.
func printDatasetReport(w io.Writer, path, summary string, warnings []dataset.Warning) {
	fmt.Fprintf(w, "%s: %s\n", filepath.Base(path), summary)
	for _, warning := range warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
}
