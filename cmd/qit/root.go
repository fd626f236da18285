package main

import (
	"fmt"
	"io"

	"github.com/akerr/qit/internal/pathutil"
	"github.com/akerr/qit/repo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalFlags holds the flags every subcommand shares
type globalFlags struct {
	C  pflag.Value // simpler version of git's -C: https://git-scm.com/docs/git#Documentation/git.txt--Cltpathgt
	fs afero.Fs
}

func newRootCmd(cwd string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "qit",
		Short:         "a minimal, read-compatible git implementation",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cfg := &globalFlags{fs: afero.NewOsFs()}
	cfg.C = pathutil.NewDirPathFlagWithDefault(cwd)
	cmd.PersistentFlags().VarP(cfg.C, "C", "C", "Run as if qit was started in the provided path instead of the current working directory.")

	// porcelain
	cmd.AddCommand(newInitCmd(cfg))
	cmd.AddCommand(newLogCmd(cfg))
	cmd.AddCommand(newCheckoutCmd(cfg))
	cmd.AddCommand(newShowRefCmd(cfg))

	// plumbing
	cmd.AddCommand(newCatFileCmd(cfg))
	cmd.AddCommand(newHashObjectCmd(cfg))
	cmd.AddCommand(newLsTreeCmd(cfg))
	cmd.AddCommand(newRevParseCmd(cfg))

	return cmd
}

// loadRepository opens the repository containing cfg.C (cfg.C itself or
// the nearest parent with a .git directory), failing if there is none
func loadRepository(cfg *globalFlags) (*repo.Repository, error) {
	r, err := repo.Find(cfg.fs, cfg.C.String(), true)
	if err != nil {
		return nil, fmt.Errorf("could not open repository: %w", err)
	}
	return r, nil
}

func fprintln(quiet bool, out io.Writer, msg ...interface{}) {
	if !quiet {
		fmt.Fprintln(out, msg...)
	}
}
