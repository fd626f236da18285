package main

import (
	"fmt"
	"io"

	"github.com/akerr/qit/ginternals/object"
	"github.com/spf13/cobra"
)

func newLogCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [START]",
		Short: "render the commit graph as a Graphviz digraph",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		start := "HEAD"
		if len(args) > 0 {
			start = args[0]
		}
		return logCmd(cmd.OutOrStdout(), cfg, start)
	}
	return cmd
}

func logCmd(out io.Writer, cfg *globalFlags, start string) error {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	// a tag peels to the commit it names
	oid, err := r.Find(start, object.TypeCommit, true)
	if err != nil {
		return err
	}

	dot, err := r.Log(oid)
	if err != nil {
		return err
	}
	fmt.Fprint(out, dot)
	return nil
}
