// Package mappers resolves which error an unchecked form should raise for
// a given original failure. Rules bind a failure type to a mapping
// function; a Registry holds rules and applies the best match.
//
// Key operations:
//   - For: build a Rule from a target failure type and a mapping function
//   - New / Install / InstallFrom: assemble a Registry explicitly, with no
//     process-wide state
//   - Resolve: map a failure through the best-matching rule
//   - Mapper: expose the registry as a fallible.Mapper, with WrapFailure
//     as the fallthrough for unmatched failures
//
// Rule selection: a rule targeting a concrete type beats a rule targeting
// an interface; remaining ties break on the declared order (lower wins),
// then on installation sequence.
package mappers
