// Command kerrgen generates the kerr boilerplate file for a module.
//
//	kerrgen -name net [-package netx] [-log] errors_gen.go
//
// The target file must not exist yet. kerrgen exits with status 0 on success and 1 on any error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/eluv-io/kerr-go/gen"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	flags := flag.NewFlagSet("kerrgen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	name := flags.String("name", "", "module name, must be globally unique")
	pkg := flags.String("package", "", "package name of the generated file (default: derived from the module name)")
	withLog := flags.Bool("log", false, "log a warning in the generated Ignore and Block functions")
	flags.Usage = func() {
		_, _ = fmt.Fprintln(flags.Output(), "usage: kerrgen -name <module> [-package <pkg>] [-log] <target>")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 1
	}

	target, err := filepath.Abs(flags.Arg(0))
	if err != nil {
		logger.Error("invalid target", "target", flags.Arg(0), "error", err)
		return 1
	}

	// osfs creates missing directories, the target directory must already exist
	dir := filepath.Dir(target)
	if fi, err := os.Stat(dir); err != nil {
		logger.Error("invalid target directory", "dir", dir, "error", err)
		return 1
	} else if !fi.IsDir() {
		logger.Error("invalid target directory", "dir", dir, "error", "not a directory")
		return 1
	}

	fs := osfs.New(dir)
	err = gen.WriteFile(fs, filepath.Base(target), gen.Options{
		Name:    *name,
		Package: *pkg,
		Log:     *withLog,
	})
	if err != nil {
		logger.Error("generate failed", "target", target, "error", err)
		return 1
	}

	logger.Info("generate success", "target", target, "module", *name)
	return 0
}
