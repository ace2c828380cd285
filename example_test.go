package kerr_test

import (
	"errors"
	"fmt"

	"github.com/eluv-io/kerr-go"
)

var storageModule = kerr.Register("storage")

const errQuotaExceeded uint8 = 1

func openBlob(name string) (string, error) {
	if name == "" {
		e := kerr.NewSimpleMsg(storageModule, kerr.K.InvalidValue, "empty name")
		return kerr.IntoResult[string](&e)
	}
	if name == "big" {
		e := kerr.Newf(storageModule, kerr.Custom(errQuotaExceeded), "blob %q exceeds quota", name)
		return "", e.Into()
	}
	e := kerr.NewSimple(storageModule, kerr.K.NotFound)
	return "", e.Into()
}

func ExampleError() {
	for _, name := range []string{"", "big", "missing"} {
		_, err := openBlob(name)
		fmt.Println(err)
	}

	// Output:
	//
	// INVALID ARGUMENT (6). empty name. FROM 'storage'
	// MODULE ERROR (1). blob "big" exceeds quota. FROM 'storage'
	// NOT FOUND (1). Null. FROM 'storage'
}

func ExampleError_Discard() {
	e := kerr.NewSimple(storageModule, kerr.K.Changed)
	// the caller decides the error is not worth propagating
	fmt.Println(e.Error(), "- ignored")
	e.Discard()
	fmt.Println(e.Resolved())

	// Output:
	//
	// SOMETHING CHANGED (15). Null. FROM 'storage' - ignored
	// true
}

func ExampleIsKind() {
	_, err := openBlob("missing")

	fmt.Println(kerr.IsKind(kerr.K.NotFound, err))

	// errors.Is compares module and kind, but not the message
	target := kerr.NewSimpleMsg(storageModule, kerr.K.NotFound, "any message")
	fmt.Println(errors.Is(err, &target))
	target.Discard()

	// Output:
	//
	// true
	// true
}

func ExampleKind() {
	fmt.Println(kerr.K.TimedOut)
	fmt.Println(kerr.Custom(42))
	fmt.Println(kerr.Builtin(100))

	// Output:
	//
	// TIME OUT (12)
	// MODULE ERROR (42)
	// UNKNOWN ERROR (100)
}
