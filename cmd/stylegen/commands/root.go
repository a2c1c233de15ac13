// Package commands implements the CLI commands for the stylegen tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/stylegen/internal/app"
	"go.trai.ch/stylegen/internal/build"
)

// Runner executes a generation run.
type Runner interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// CLI represents the command line interface for stylegen.
type CLI struct {
	runner  Runner
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given runner.
func New(r Runner) *CLI {
	c := &CLI{runner: r}

	rootCmd := &cobra.Command{
		Use:   "stylegen",
		Short: "Generate UI stylesheets from sprite folders",
		Long: "Scans a directory of PNG sprites laid out as <Variant>/Default/<name>.png and writes\n" +
			"a generated stylesheet plus a demo layout document into that directory.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runGenerate,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().StringP("path", "p", "", "The target directory to process")
	rootCmd.Flags().StringP("root", "r", "", "Package root directory. Defaults to the nearest parent containing package.json")
	rootCmd.Flags().StringP("config", "c", "", "Style configuration file. Defaults to stylegen.yaml in the package root")
	rootCmd.Flags().BoolP("keep-going", "k", false, "Skip unreadable images instead of failing")
	_ = rootCmd.MarkFlagRequired("path")

	rootCmd.AddCommand(c.newVersionCmd())

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) runGenerate(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("path")
	root, _ := cmd.Flags().GetString("root")
	configPath, _ := cmd.Flags().GetString("config")
	keepGoing, _ := cmd.Flags().GetBool("keep-going")

	return c.runner.Run(cmd.Context(), app.RunOptions{
		Path:       path,
		Root:       root,
		ConfigPath: configPath,
		KeepGoing:  keepGoing,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output and errors. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
