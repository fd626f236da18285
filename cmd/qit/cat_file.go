package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/akerr/qit/ginternals/object"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

var errBadFile = errors.New("bad file")

func newCatFileCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat-file [TYPE] OBJECT",
		Short: "provide content or type and size information for repository objects",
		Args:  cobra.RangeArgs(1, 2),
	}

	typeOnly := cmd.Flags().BoolP("t", "t", false, "Instead of the content, show the object type identified by <object>.")
	sizeOnly := cmd.Flags().BoolP("s", "s", false, "Instead of the content, show the object size identified by <object>.")
	prettyPrint := cmd.Flags().BoolP("p", "p", false, "Pretty-print the contents of <object> based on its type.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		p := catFileParams{
			typeOnly:    *typeOnly,
			sizeOnly:    *sizeOnly,
			prettyPrint: *prettyPrint,
			objectName:  args[0],
		}
		if len(args) == 2 {
			p.typ = args[0]
			p.objectName = args[1]
		}
		return catFileCmd(cmd.OutOrStdout(), cfg, p)
	}
	return cmd
}

type catFileParams struct {
	typeOnly    bool
	sizeOnly    bool
	prettyPrint bool
	objectName  string
	typ         string
}

func catFileCmd(out io.Writer, cfg *globalFlags, p catFileParams) error {
	if p.typ != "" && (p.typeOnly || p.sizeOnly || p.prettyPrint) {
		return errors.New("type not supported with options -t, -s, -p")
	}
	if p.typ == "" && !p.typeOnly && !p.sizeOnly && !p.prettyPrint {
		return errors.New("type and object required")
	}
	if p.typeOnly && (p.sizeOnly || p.prettyPrint) {
		return errors.New("option -t not supported with options -s/-p")
	}
	if p.sizeOnly && p.prettyPrint {
		return errors.New("option -p not supported with option -s")
	}

	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	oid, err := r.Resolve(p.objectName)
	if err != nil {
		return xerrors.Errorf("not a valid object name %s: %w", p.objectName, err)
	}

	o, err := r.GetObject(oid)
	if err != nil {
		return err
	}

	if p.typ != "" {
		if _, err := object.NewTypeFromString(p.typ); err != nil {
			return xerrors.Errorf("%s: %w", p.typ, err)
		}
		if o.Type().String() != p.typ {
			return xerrors.Errorf("%s: %w", p.objectName, errBadFile)
		}
	}

	switch {
	case p.sizeOnly:
		fmt.Fprintln(out, strconv.Itoa(o.Size()))
	case p.typeOnly:
		fmt.Fprintln(out, o.Type().String())
	case p.prettyPrint:
		return prettyPrint(out, o)
	default:
		fmt.Fprint(out, string(o.Bytes()))
	}
	return nil
}

func prettyPrint(out io.Writer, o *object.Object) error {
	switch o.Type() {
	case object.TypeCommit:
		c, err := object.NewCommitFromObject(o)
		if err != nil {
			return xerrors.Errorf("could not parse commit: %w", err)
		}
		fmt.Fprintf(out, "tree %s\n", c.TreeID().String())
		for _, id := range c.ParentIDs() {
			fmt.Fprintf(out, "parent %s\n", id.String())
		}
		fmt.Fprintf(out, "author %s\n", c.Author().String())
		fmt.Fprintf(out, "committer %s\n", c.Committer().String())
		if c.GPGSig() != "" {
			fmt.Fprintf(out, "gpgsig %s\n", c.GPGSig())
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, c.Message())
	case object.TypeTag:
		t, err := object.NewTagFromObject(o)
		if err != nil {
			return xerrors.Errorf("could not parse tag: %w", err)
		}
		fmt.Fprintf(out, "object %s\n", t.Target().String())
		fmt.Fprintf(out, "type %s\n", t.TargetType().String())
		fmt.Fprintf(out, "tag %s\n", t.Name())
		fmt.Fprintf(out, "tagger %s\n", t.Tagger().String())
		if t.GPGSig() != "" {
			fmt.Fprintf(out, "gpgsig %s\n", t.GPGSig())
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, t.Message())
	case object.TypeTree:
		tree, err := object.NewTreeFromObject(o)
		if err != nil {
			return xerrors.Errorf("could not parse tree: %w", err)
		}
		for _, e := range tree.Entries() {
			fmt.Fprintf(out, "%06o %s %s\t%s\n", e.Mode, e.Mode.ObjectType().String(), e.ID.String(), e.Path)
		}
	case object.TypeBlob:
		fmt.Fprint(out, string(o.Bytes()))
	default:
		return xerrors.Errorf("pretty-print not supported for type %s", o.Type().String())
	}
	return nil
}
