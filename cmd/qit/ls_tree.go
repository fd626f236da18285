package main

import (
	"fmt"
	"io"

	"github.com/akerr/qit/ginternals/object"
	"github.com/spf13/cobra"
)

func newLsTreeCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls-tree TREEISH",
		Short: "list the contents of a tree object",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return lsTreeCmd(cmd.OutOrStdout(), cfg, args[0])
	}
	return cmd
}

func lsTreeCmd(out io.Writer, cfg *globalFlags, treeish string) error {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	// a tag peels to its target, a commit peels to its tree
	oid, err := r.Find(treeish, object.TypeTree, true)
	if err != nil {
		return err
	}

	tree, err := r.GetTree(oid)
	if err != nil {
		return err
	}

	for _, e := range tree.Entries() {
		fmt.Fprintf(out, "%06o %s %s\t%s\n", e.Mode, e.Mode.ObjectType().String(), e.ID.String(), e.Path)
	}
	return nil
}
