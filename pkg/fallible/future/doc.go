// Package future holds settled results for callers whose downstream code
// expects an asynchronous result holder. Futures here are always complete
// at construction: the staged conversions run the operation synchronously
// and wrap its outcome, spawning nothing.
//
// Key operations:
//   - Settled / Rejected: construct a completed Future
//   - Func, BiFunc, Predicate, BiPredicate, Supplier, Consumer,
//     BiConsumer, Runnable: stage a fallible shape into a Future-producing
//     form
//   - Await: read the outcome, honoring context cancellation while a
//     holder is still open
//
// Void shapes settle with fallible.Unit.
package future
