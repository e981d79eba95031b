package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fentz26/taskmenu/internal/config"
	"github.com/fentz26/taskmenu/internal/persist"
	"github.com/fentz26/taskmenu/internal/session"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newRootCmd builds the taskmenu command. argv is only logged; the program
// behaves the same however it is invoked.
func newRootCmd(cfg *config.Config, argv []string) *cobra.Command {
	return &cobra.Command{
		Use:                "taskmenu",
		Short:              "taskmenu - interactive task list",
		Long:               `taskmenu keeps a list of tasks, lets you view, add, complete and delete them from a numbered menu, and saves the list to tasks.json on exit.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cfg, argv, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// execute runs the root command. cobra is always given an empty argument
// list so nothing in argv, including its hidden completion commands, can
// route away from the menu.
func execute(cfg *config.Config, argv []string, in io.Reader, out, errOut io.Writer) error {
	cmd := newRootCmd(cfg, argv)
	cmd.SetArgs([]string{})
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd.Execute()
}

func run(cfg *config.Config, argv []string, in io.Reader, out, errOut io.Writer) error {
	id := uuid.NewString()
	logger := cfg.NewLogger()
	logger.SetOutput(errOut)
	entry := logger.WithField("session", id)
	if len(argv) > 0 {
		entry.WithField("args", argv).Debug("ignoring arguments")
	}

	file := persist.NewOsFile(cfg.DataFile, entry)

	s, err := session.LoadStore(file, out, entry)
	if err != nil {
		return fmt.Errorf("session %s: %w", id, err)
	}

	if err := session.New(s, session.NewLineReader(in), out, file, entry).Run(); err != nil {
		return fmt.Errorf("session %s: %w", id, err)
	}
	return nil
}

func main() {
	if err := execute(config.DefaultConfig(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
