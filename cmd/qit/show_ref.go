package main

import (
	"fmt"
	"io"

	"github.com/akerr/qit/ginternals"
	"github.com/spf13/cobra"
)

func newShowRefCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show-ref",
		Short: "list references in the repository",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return showRefCmd(cmd.OutOrStdout(), cfg)
	}
	return cmd
}

func showRefCmd(out io.Writer, cfg *globalFlags) error {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	tree, err := r.ListRefs()
	if err != nil {
		return err
	}
	printRefTree(out, "refs", tree)
	return nil
}

func printRefTree(out io.Writer, prefix string, node *ginternals.RefTree) {
	for _, child := range node.Children {
		name := prefix + "/" + child.Name
		if child.IsLeaf {
			fmt.Fprintf(out, "%s %s\n", child.Oid.String(), name)
			continue
		}
		printRefTree(out, name, child)
	}
}
