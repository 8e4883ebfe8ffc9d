// Package fallible adapts operations that return errors to the no-error
// function shapes callers are often required to hand over: predicates,
// functions, suppliers, consumers and runnables, in one- and two-argument
// forms.
//
// Every shape offers three conversion families:
//   - Unchecked / UncheckedWith: run the operation and panic with a mapped
//     failure when it fails
//   - Lift: report absence (or false) instead of failing
//   - Ignore / IgnoreWith: substitute a zero or supplied default instead of
//     failing
//
// Composition helpers (And, Or, Negate, AndThen, Compose and friends)
// mirror their no-error analogues and propagate the first failure without
// invoking the second operand. Failing* constructors build stub operations
// that always fail, for tests.
//
// Failures raised by unchecked forms are ordinary errors; Recover and
// Catch turn them back into returned errors at a boundary of the caller's
// choosing. The raised error is shaped by a Mapper: per call site through
// UncheckedWith, or resolved by failure type through a mappers.Registry.
package fallible
