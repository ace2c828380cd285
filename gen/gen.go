// Package gen generates the per-module boilerplate for kerr: a source file that registers the module once when its
// package is loaded and exposes constructor wrappers with the module identity pre-filled.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/go-git/go-billy/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrExists is returned by WriteFile if the target file already exists.
var ErrExists = errors.New("target file already exists")

// ErrInvalidOptions is returned for options that cannot produce a valid source file.
var ErrInvalidOptions = errors.New("invalid options")

var tmpl = template.Must(template.New("kerr").Parse(fileTemplate))

// Options configure the generated file.
type Options struct {
	// Name is the module name passed to kerr.Register. It must be globally unique.
	Name string
	// Package is the Go package name of the generated file. Derived from Name if empty.
	Package string
	// Log enables the warning emitted by the generated Ignore and Block functions.
	Log bool
}

// Validate checks the options and fills in the package name if it is missing.
func (o *Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("%w: module name is empty", ErrInvalidOptions)
	}
	if o.Package == "" {
		o.Package = PackageName(o.Name)
	}
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("%w: %q is not a valid package name", ErrInvalidOptions, o.Package)
	}
	return nil
}

// PackageName derives a Go package name from a module name: the name is lower-cased and every rune that is not a letter
// or digit is dropped. A leading digit is prefixed with "m". Returns the empty string if nothing remains.
func PackageName(name string) string {
	lower := cases.Lower(language.Und).String(name)
	sb := strings.Builder{}
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	pkg := sb.String()
	if pkg != "" && unicode.IsDigit([]rune(pkg)[0]) {
		pkg = "m" + pkg
	}
	if token.IsKeyword(pkg) {
		pkg += "err"
	}
	return pkg
}

// Generate renders the boilerplate source for the given options. The result is gofmt-ed.
func Generate(opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	b := new(bytes.Buffer)
	if err := tmpl.Execute(b, opts); err != nil {
		return nil, fmt.Errorf("gen: execute template: %w", err)
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format source: %w", err)
	}
	return src, nil
}

// WriteFile generates the boilerplate for the given options and writes it to target on the given filesystem. The
// target is created exclusively: if it already exists, WriteFile returns an error wrapping ErrExists and leaves the
// file untouched. The directory of the target must exist.
func WriteFile(fs billy.Filesystem, target string, opts Options) (err error) {
	src, err := Generate(opts)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(target); dir != "." {
		fi, err := fs.Stat(dir)
		if err != nil {
			return fmt.Errorf("gen: target directory %q: %w", dir, err)
		}
		if !fi.IsDir() {
			return fmt.Errorf("gen: target directory %q: not a directory", dir)
		}
	}

	f, err := fs.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("gen: create %q: %w", target, ErrExists)
		}
		return fmt.Errorf("gen: create %q: %w", target, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("gen: close %q: %w", target, cerr)
		}
	}()

	if _, err = f.Write(src); err != nil {
		return fmt.Errorf("gen: write %q: %w", target, err)
	}
	return nil
}
