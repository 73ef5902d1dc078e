package cucumber

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/cli"
)

const quizzesFixture = `question_id,question,category,expected_answer,source_1
q1,Capital of France?,geography,Paris,Wikipedia|https://en.wikipedia.org/wiki/Paris
q2,Boiling point of water in C?,science,100,
`

const resultsFixture = `result_id,question_id,submitted_value,actualValue
r1,q1,Lyon,Paris
r2,q2,90,100
`

// featureState carries the scenario workspace and the outcome of the
// last command. Scenarios run sequentially, so a single shared state
// that is reset between scenarios is enough.
type featureState struct {
	workDir     string
	previousWD  string
	previousEnv map[string]*string

	stdout   bytes.Buffer
	stderr   bytes.Buffer
	exitCode int
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		return ctx, state.cleanup()
	})

	ctx.Step(`^a workspace with quiz and result fixtures$`, state.setupWorkspace)
	ctx.Step(`^no Perplexity credentials are configured$`, state.noCredentialsConfigured)
	ctx.Step(`^the results reference an unknown question$`, state.resultsReferenceUnknownQuestion)
	ctx.Step(`^the results file is missing the "([^"]*)" column$`, state.resultsFileMissingColumn)
	ctx.Step(`^the results file contains a row with an empty result id$`, state.resultsFileContainsEmptyResultID)
	ctx.Step(`^I run "([^"]*)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.exitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.exitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]*)"$`, state.outputContains)
	ctx.Step(`^the error output contains "([^"]*)"$`, state.errorOutputContains)
	ctx.Step(`^the file "([^"]*)" exists$`, state.fileExists)
	ctx.Step(`^the file "([^"]*)" does not exist$`, state.fileDoesNotExist)
	ctx.Step(`^rerunning "([^"]*)" leaves "([^"]*)" unchanged$`, state.rerunningLeavesFileUnchanged)
}

func (s *featureState) reset() {
	s.workDir = ""
	s.previousWD = ""
	s.previousEnv = map[string]*string{}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
}

func (s *featureState) cleanup() error {
	for key, value := range s.previousEnv {
		if value == nil {
			os.Unsetenv(key)
		} else {
			os.Setenv(key, *value)
		}
	}
	if s.previousWD != "" {
		if err := os.Chdir(s.previousWD); err != nil {
			return fmt.Errorf("restore working directory: %w", err)
		}
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
	return nil
}

// unsetEnv removes a variable for the scenario, remembering the prior
// value so cleanup can restore it.
func (s *featureState) unsetEnv(key string) error {
	if _, tracked := s.previousEnv[key]; !tracked {
		if value, ok := os.LookupEnv(key); ok {
			saved := value
			s.previousEnv[key] = &saved
		} else {
			s.previousEnv[key] = nil
		}
	}
	return os.Unsetenv(key)
}

func (s *featureState) setupWorkspace() error {
	dir, err := os.MkdirTemp("", "quizanalyze-cucumber-")
	if err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("enter workspace: %w", err)
	}
	s.workDir = dir
	s.previousWD = wd
	if err := s.writeWorkspaceFile("quizzes.csv", quizzesFixture); err != nil {
		return err
	}
	return s.writeWorkspaceFile("results.csv", resultsFixture)
}

func (s *featureState) noCredentialsConfigured() error {
	for _, key := range []string{"PPLX_API_KEY", "PERPLEXITY_API_KEY"} {
		if err := s.unsetEnv(key); err != nil {
			return err
		}
	}
	return nil
}

func (s *featureState) resultsReferenceUnknownQuestion() error {
	return s.writeWorkspaceFile("results.csv", resultsFixture+"r3,missing,42,41\n")
}

func (s *featureState) resultsFileMissingColumn(column string) error {
	switch column {
	case "actualValue":
		return s.writeWorkspaceFile("results.csv", "result_id,question_id,submitted_value\nr1,q1,Lyon\nr2,q2,90\n")
	default:
		return fmt.Errorf("no fixture without column %q", column)
	}
}

func (s *featureState) resultsFileContainsEmptyResultID() error {
	return s.writeWorkspaceFile("results.csv", resultsFixture+",q1,Paris,Paris\n")
}

func (s *featureState) writeWorkspaceFile(name, content string) error {
	if s.workDir == "" {
		return errors.New("workspace is not initialized")
	}
	if err := os.WriteFile(filepath.Join(s.workDir, name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) > 0 && args[0] == "quizanalyze" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) exitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) exitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected a non-zero exit code (stdout: %s)", s.stdout.String())
	}
	return nil
}

func (s *featureState) outputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("stdout does not contain %q:\n%s", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) errorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("stderr does not contain %q:\n%s", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) fileExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("expected %s to exist: %w", path, err)
	}
	return nil
}

func (s *featureState) fileDoesNotExist(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return fmt.Errorf("expected %s to be absent", path)
	}
	if !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *featureState) rerunningLeavesFileUnchanged(command, path string) error {
	before, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s before rerun: %w", path, err)
	}
	if err := s.iRunCommand(command); err != nil {
		return err
	}
	if s.exitCode != 0 {
		return fmt.Errorf("rerun exited %d: %s", s.exitCode, s.stderr.String())
	}
	after, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s after rerun: %w", path, err)
	}
	if !bytes.Equal(before, after) {
		return fmt.Errorf("%s changed between runs", path)
	}
	return nil
}
