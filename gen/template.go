package gen

const fileTemplate = `// Code generated by kerrgen. DO NOT EDIT.

package {{.Package}}

import (
{{- if .Log}}
	"log/slog"
{{end}}
	"github.com/eluv-io/kerr-go"
)

// module is the identity of the {{printf "%q" .Name}} module, registered when the package is loaded.
var module = kerr.Register({{printf "%q" .Name}})

// Module returns the identity of this module.
func Module() kerr.Module {
	return module
}

// NewSimple creates an error of this module without message.
func NewSimple(kind kerr.Kind) kerr.Error {
	return kerr.NewSimple(module, kind)
}

// NewSimpleMsg creates an error of this module with a static message.
func NewSimpleMsg(kind kerr.Kind, msg string) kerr.Error {
	return kerr.NewSimpleMsg(module, kind, msg)
}

// NewCustomMsg creates an error of this module with a message built at runtime.
func NewCustomMsg(kind kerr.Kind, msg string) kerr.Error {
	return kerr.NewCustomMsg(module, kind, msg)
}

// New creates an error of this module without message.
func New(kind kerr.Kind) kerr.Error {
	return kerr.NewSimple(module, kind)
}

// NewMsg creates an error of this module with a static message.
func NewMsg(kind kerr.Kind, msg string) kerr.Error {
	return kerr.NewSimpleMsg(module, kind, msg)
}

// Newf creates an error of this module with a formatted message.
func Newf(kind kerr.Kind, format string, args ...interface{}) kerr.Error {
	return kerr.Newf(module, kind, format, args...)
}

// Throw creates an error of this module and resolves it for propagation:
//
//	return {{.Package}}.Throw(kerr.K.NotFound)
func Throw(kind kerr.Kind) error {
	e := kerr.NewSimple(module, kind)
	return e.Into()
}

// ThrowMsg is like Throw, with a static message.
func ThrowMsg(kind kerr.Kind, msg string) error {
	e := kerr.NewSimpleMsg(module, kind, msg)
	return e.Into()
}

// Throwf is like Throw, with a formatted message.
func Throwf(kind kerr.Kind, format string, args ...interface{}) error {
	e := kerr.Newf(module, kind, format, args...)
	return e.Into()
}

// Ignore discards the given error.
func Ignore(err *kerr.Error) {
	{{if not .Log}}// {{end}}slog.Warn(err.Error() + ". Ignore it.")
	err.Discard()
}

// Block discards the given error at a point where it must not propagate any further.
func Block(err *kerr.Error) {
	{{if not .Log}}// {{end}}slog.Warn(err.Error() + ". Block it.")
	err.Discard()
}
`
