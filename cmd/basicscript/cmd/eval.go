package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dws-sandbox/basicscript/pkg/script"
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate a single expression and print its value",
	Long: `Evaluate a single expression (from the argument or stdin) and print
its result using the engine's embedding surface (pkg/script's Eval), rather
than executing a full program.

Examples:
  basicscript eval "5 + 3 * 2"
  echo "UCase(\"abc\")" | basicscript eval`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(_ *cobra.Command, args []string) error {
	var expr string
	if len(args) == 1 {
		expr = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		expr = string(data)
	}

	engine, err := script.New(script.WithOutput(os.Stdout), script.WithInput(os.Stdin))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	result, err := engine.Eval(expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return fmt.Errorf("evaluation failed")
	}

	fmt.Printf("%v\n", result)
	return nil
}
