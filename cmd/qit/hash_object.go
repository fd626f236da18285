package main

import (
	"fmt"
	"io"

	"github.com/akerr/qit/ginternals/object"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func newHashObjectCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-object FILE",
		Short: "compute an object's ID and optionally persist it",
		Args:  cobra.ExactArgs(1),
	}

	typ := cmd.Flags().StringP("type", "t", "blob", "Specify the type")
	write := cmd.Flags().BoolP("write", "w", false, "Actually write the object into the object database.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return hashObjectCmd(cmd.OutOrStdout(), cfg, args[0], *typ, *write)
	}

	return cmd
}

func hashObjectCmd(out io.Writer, cfg *globalFlags, filePath, typ string, write bool) error {
	content, err := afero.ReadFile(cfg.fs, filePath)
	if err != nil {
		return err
	}

	var o *object.Object
	switch typ {
	case object.TypeBlob.String():
		o = object.New(object.TypeBlob, content)
	case object.TypeCommit.String():
		o = object.New(object.TypeCommit, content)
		if _, err := object.NewCommitFromObject(o); err != nil {
			return xerrors.Errorf("invalid commit file: %w", err)
		}
	case object.TypeTree.String():
		o = object.New(object.TypeTree, content)
		if _, err := object.NewTreeFromObject(o); err != nil {
			return xerrors.Errorf("invalid tree file: %w", err)
		}
	case object.TypeTag.String():
		o = object.New(object.TypeTag, content)
		if _, err := object.NewTagFromObject(o); err != nil {
			return xerrors.Errorf("invalid tag file: %w", err)
		}
	default:
		return xerrors.Errorf("unsupported object type %s", typ)
	}

	if !write {
		fmt.Fprintln(out, o.ID().String())
		return nil
	}

	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	id, err := r.WriteObject(o)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, id.String())
	return nil
}
