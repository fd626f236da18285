package main

import (
	"io"
	"path/filepath"

	"github.com/akerr/qit/repo"
	"github.com/spf13/cobra"
)

// initCmdFlags represents the flags accepted by the init command
//
// Reference: https://git-scm.com/docs/git-init#_options
type initCmdFlags struct {
	quiet bool
}

func newInitCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "create an empty repository",
		Long:  "Create an empty repository: a .git directory with object database, refs/heads, refs/tags, HEAD, description, and config.",
		Args:  cobra.MaximumNArgs(1),
	}

	flags := initCmdFlags{}
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Only print error messages; all other output is suppressed.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		directory := cfg.C.String()
		if len(args) > 0 {
			directory = filepath.Join(cfg.C.String(), args[0])
		}
		return initCmd(cmd.OutOrStdout(), cfg, flags, directory)
	}

	return cmd
}

func initCmd(out io.Writer, cfg *globalFlags, flags initCmdFlags, directory string) error {
	if err := cfg.fs.MkdirAll(directory, 0o755); err != nil {
		return err
	}

	r, err := repo.Create(cfg.fs, directory)
	if err != nil {
		return err
	}

	fprintln(flags.quiet, out, "Initialized empty qit repository in", r.GitDir())
	return nil
}
