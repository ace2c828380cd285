package gen_test

import (
	"go/parser"
	"go/token"
	"os"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eluv-io/kerr-go/gen"
)

func TestPackageName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"net", "net"},
		{"Net", "net"},
		{"NetStack", "netstack"},
		{"net-stack", "netstack"},
		{"net.stack_v2", "netstackv2"},
		{"9p", "m9p"},
		{"type", "typeerr"},
		{"---", ""},
		{"ÉCOLE", "école"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, gen.PackageName(test.name))
		})
	}
}

func TestOptions_Validate(t *testing.T) {
	opts := gen.Options{Name: "net-stack"}
	require.NoError(t, opts.Validate())
	require.Equal(t, "netstack", opts.Package)

	opts = gen.Options{Name: "net", Package: "custom"}
	require.NoError(t, opts.Validate())
	require.Equal(t, "custom", opts.Package)

	for _, opts := range []gen.Options{
		{},
		{Name: "---"},
		{Name: "net", Package: "not-valid"},
		{Name: "net", Package: "1net"},
	} {
		err := opts.Validate()
		require.Error(t, err, "%+v", opts)
		require.ErrorIs(t, err, gen.ErrInvalidOptions)
	}
}

func parse(t *testing.T, src []byte) {
	_, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.AllErrors)
	require.NoError(t, err, string(src))
}

func TestGenerate(t *testing.T) {
	src, err := gen.Generate(gen.Options{Name: "net", Package: "neterr"})
	require.NoError(t, err)
	parse(t, src)

	s := string(src)
	assert.True(t, strings.HasPrefix(s, "// Code generated by kerrgen. DO NOT EDIT.\n"))
	assert.Contains(t, s, "package neterr\n")
	assert.Contains(t, s, `var module = kerr.Register("net")`)
	for _, fn := range []string{
		"func NewSimple(kind kerr.Kind) kerr.Error",
		"func NewSimpleMsg(kind kerr.Kind, msg string) kerr.Error",
		"func NewCustomMsg(kind kerr.Kind, msg string) kerr.Error",
		"func New(kind kerr.Kind) kerr.Error",
		"func NewMsg(kind kerr.Kind, msg string) kerr.Error",
		"func Newf(kind kerr.Kind, format string, args ...interface{}) kerr.Error",
		"func Throw(kind kerr.Kind) error",
		"func ThrowMsg(kind kerr.Kind, msg string) error",
		"func Throwf(kind kerr.Kind, format string, args ...interface{}) error",
		"func Ignore(err *kerr.Error)",
		"func Block(err *kerr.Error)",
	} {
		assert.Contains(t, s, fn)
	}

	// without logging, the warnings are commented out and slog is not imported
	assert.NotContains(t, s, `"log/slog"`)
	assert.Contains(t, s, `// slog.Warn(err.Error() + ". Ignore it.")`)
	assert.Contains(t, s, `// slog.Warn(err.Error() + ". Block it.")`)
}

func TestGenerate_Log(t *testing.T) {
	src, err := gen.Generate(gen.Options{Name: "net", Log: true})
	require.NoError(t, err)
	parse(t, src)

	s := string(src)
	assert.Contains(t, s, "package net\n")
	assert.Contains(t, s, `"log/slog"`)
	assert.Contains(t, s, "\tslog.Warn(err.Error() + \". Ignore it.\")\n")
	assert.Contains(t, s, "\tslog.Warn(err.Error() + \". Block it.\")\n")
	assert.NotContains(t, s, "// slog.Warn")
}

func TestGenerate_QuotesName(t *testing.T) {
	src, err := gen.Generate(gen.Options{Name: `we"ird`, Package: "weird"})
	require.NoError(t, err)
	parse(t, src)
	assert.Contains(t, string(src), `kerr.Register("we\"ird")`)
}

func TestGenerate_Invalid(t *testing.T) {
	_, err := gen.Generate(gen.Options{})
	require.ErrorIs(t, err, gen.ErrInvalidOptions)
}

func TestWriteFile(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("net", 0o755))

	err := gen.WriteFile(fs, "net/errors_gen.go", gen.Options{Name: "net"})
	require.NoError(t, err)

	bts, err := util.ReadFile(fs, "net/errors_gen.go")
	require.NoError(t, err)
	expected, err := gen.Generate(gen.Options{Name: "net"})
	require.NoError(t, err)
	require.Equal(t, string(expected), string(bts))

	// the target is never overwritten
	err = gen.WriteFile(fs, "net/errors_gen.go", gen.Options{Name: "other", Log: true})
	require.Error(t, err)
	require.ErrorIs(t, err, gen.ErrExists)

	bts, err = util.ReadFile(fs, "net/errors_gen.go")
	require.NoError(t, err)
	require.Equal(t, string(expected), string(bts))
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	fs := memfs.New()

	err := gen.WriteFile(fs, "missing/errors_gen.go", gen.Options{Name: "net"})
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = fs.Stat("missing")
	require.Error(t, err, "the directory is not created")

	// a file is not a directory
	require.NoError(t, util.WriteFile(fs, "file", []byte("x"), 0o644))
	err = gen.WriteFile(fs, "file/errors_gen.go", gen.Options{Name: "net"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a directory")
}

func TestWriteFile_InvalidOptions(t *testing.T) {
	fs := memfs.New()
	err := gen.WriteFile(fs, "errors_gen.go", gen.Options{})
	require.ErrorIs(t, err, gen.ErrInvalidOptions)

	_, err = fs.Stat("errors_gen.go")
	require.Error(t, err, "no file is created for invalid options")
}
