package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/japaniel/jpwords/pkg/loader"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "dbsetup",
		Short:         "Create japanese_words.db from word_list.json and kanji_meanings.json",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := loader.New(loader.DefaultConfig())
			l.Out = cmd.OutOrStdout()
			// Detail goes to stderr so stdout carries only the run report.
			l.Logger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			if err := l.Run(cmd.Context()); err != nil {
				return fmt.Errorf("set up database: %w", err)
			}
			return nil
		},
	}
}

func main() {
	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}
