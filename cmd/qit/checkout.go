package main

import (
	"io"

	"github.com/akerr/qit/ginternals/object"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func newCheckoutCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout TREEISH DESTINATION",
		Short: "materialize a tree into an empty directory",
		Args:  cobra.ExactArgs(2),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return checkoutCmd(cmd.OutOrStdout(), cfg, args[0], args[1])
	}
	return cmd
}

func checkoutCmd(out io.Writer, cfg *globalFlags, treeish, dest string) error {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	// a tag peels to its target, a commit peels to its tree
	oid, err := r.Find(treeish, object.TypeTree, true)
	if err != nil {
		return err
	}

	if err := r.Checkout(oid, cfg.fs, dest); err != nil {
		return xerrors.Errorf("could not checkout %s into %s: %w", treeish, dest, err)
	}

	fprintln(false, out, "Checked out", treeish, "into", dest)
	return nil
}
