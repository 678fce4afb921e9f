package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var corpusFile string
	s := &session{}

	root := &cobra.Command{
		Use:           "explore",
		Short:         "Explore chord and scale relationships offline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(corpusFile)
		},
	}
	root.PersistentFlags().StringVar(&corpusFile, "corpus", "", "YAML corpus file (defaults to the generated corpus)")

	root.AddCommand(newChordCmd(s))
	root.AddCommand(newScaleCmd(s))
	return root
}
