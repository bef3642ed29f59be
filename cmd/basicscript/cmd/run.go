package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dws-sandbox/basicscript/pkg/script"
)

var (
	runEvalExpr string
	runTrace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a script file or inline code",
	Long: `Execute a program from a file or inline source text.

Examples:
  # Run a script file
  basicscript run script.bas

  # Evaluate inline code instead of reading from file
  basicscript run -e "Print 1 + 2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "run inline code instead of reading from file")
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "announce execution start/end on stderr")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(runEvalExpr, args)
	if err != nil {
		return err
	}

	engine, err := script.New(script.WithOutput(os.Stdout), script.WithInput(os.Stdin))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	if runTrace {
		fmt.Fprintf(os.Stderr, "[trace] running %s\n", filename)
	}

	if err := engine.AddCode(input); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return fmt.Errorf("execution failed")
	}

	if runTrace {
		fmt.Fprintf(os.Stderr, "[trace] finished %s\n", filename)
	}

	return nil
}

// readSource resolves the -e flag / positional file argument / neither into
// source text plus a display name, shared by run/lex/parse.
func readSource(evalExpr string, args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
