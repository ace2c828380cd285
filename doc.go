/*
Package kerr provides compact, classified errors tagged with the module that created them. Refer to the README.md,
examples and unit tests for usage and details.

An error is a module identity, a Kind and an optional message. The kind is either one of the built-in kinds in K or a
module-custom code created with Custom(). Modules register a globally unique name once, usually in a package-level
variable, and use the returned identity to create errors:

	var module = kerr.Register("net")

	func dial(addr string) error {
		e := kerr.NewSimple(module, kerr.K.Unreachable)
		return e.Into()
	}

Errors without a message are stored in a single tagged integer and do not allocate. Errors with a message allocate one
record. Two errors are equal if their module and kind are equal; the message is not compared.

Every Error must be resolved exactly once: propagated with Into/IntoResult or dropped with Discard. Enable handle
tracking with SetTrackHandles(true) to have Checkpoint and VerifyResolved report handles that were never resolved,
together with the stack at which they were created.

The rendered form of an error is

	<kind>. <message or Null>. FROM '<module>'

e.g. "NOT FOUND (1). Null. FROM 'net'" or "MODULE ERROR (5). disk full. FROM 'net'".

The kerrgen command generates the per-module boilerplate (registration and thin constructor wrappers).
*/
package kerr
