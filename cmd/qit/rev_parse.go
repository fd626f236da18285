package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newRevParseCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rev-parse NAME",
		Short: "resolve a name to the object ID it designates",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return revParseCmd(cmd.OutOrStdout(), cfg, args[0])
	}
	return cmd
}

func revParseCmd(out io.Writer, cfg *globalFlags, name string) error {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	oid, err := r.Resolve(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, oid.String())
	return nil
}
