// Package trace decorates fallible shapes with logging. Decorators return
// the same shape they wrap and never alter values or failures: a debug
// line on success, a warning carrying the failure otherwise.
package trace

import "github.com/ib-77/fallible/pkg/fallible"

// DebugLogger is a logger emitting only debug messages.
type DebugLogger interface {
	// Debug emits a debug message.
	Debug(msg string)

	// Debugf formats and emits a debug message.
	Debugf(format string, v ...interface{})
}

// InfoLogger is a DebugLogger with info messages.
type InfoLogger interface {
	DebugLogger

	// Info emits an informational message.
	Info(msg string)

	// Infof formats and emits an informational message.
	Infof(format string, v ...interface{})
}

// Logger is an InfoLogger with warnings. This interface is out of the box
// compatible with log.Log in github.com/apex/log.
type Logger interface {
	InfoLogger

	// Warn emits a warning message.
	Warn(msg string)

	// Warnf formats and emits a warning message.
	Warnf(format string, v ...interface{})
}

// DiscardLogger discards all input.
var DiscardLogger Logger = logDiscarder{}

type logDiscarder struct{}

func (logDiscarder) Debug(msg string) {}

func (logDiscarder) Debugf(format string, v ...interface{}) {}

func (logDiscarder) Info(msg string) {}

func (logDiscarder) Infof(format string, v ...interface{}) {}

func (logDiscarder) Warn(msg string) {}

func (logDiscarder) Warnf(format string, v ...interface{}) {}

// ValidLoggerOrDefault returns logger when non-nil and DiscardLogger
// otherwise
func ValidLoggerOrDefault(logger Logger) Logger {
	if logger != nil {
		return logger
	}
	return DiscardLogger
}

// Func logs op's outcomes under label
func Func[T, R any](logger Logger, label string, op fallible.Func[T, R]) fallible.Func[T, R] {
	logger = ValidLoggerOrDefault(logger)
	return func(t T) (R, error) {
		v, err := op(t)
		if err != nil {
			logger.Warnf("%s: %s", label, err.Error())
			return v, err
		}
		logger.Debugf("%s: ok", label)
		return v, nil
	}
}

// BiFunc logs op's outcomes under label
func BiFunc[T, U, R any](logger Logger, label string, op fallible.BiFunc[T, U, R]) fallible.BiFunc[T, U, R] {
	logger = ValidLoggerOrDefault(logger)
	return func(t T, u U) (R, error) {
		v, err := op(t, u)
		if err != nil {
			logger.Warnf("%s: %s", label, err.Error())
			return v, err
		}
		logger.Debugf("%s: ok", label)
		return v, nil
	}
}

// Predicate logs op's verdicts under label
func Predicate[T any](logger Logger, label string, op fallible.Predicate[T]) fallible.Predicate[T] {
	logger = ValidLoggerOrDefault(logger)
	return func(t T) (bool, error) {
		ok, err := op(t)
		if err != nil {
			logger.Warnf("%s: %s", label, err.Error())
			return ok, err
		}
		logger.Debugf("%s: %v", label, ok)
		return ok, nil
	}
}

// BiPredicate logs op's verdicts under label
func BiPredicate[T, U any](logger Logger, label string, op fallible.BiPredicate[T, U]) fallible.BiPredicate[T, U] {
	logger = ValidLoggerOrDefault(logger)
	return func(t T, u U) (bool, error) {
		ok, err := op(t, u)
		if err != nil {
			logger.Warnf("%s: %s", label, err.Error())
			return ok, err
		}
		logger.Debugf("%s: %v", label, ok)
		return ok, nil
	}
}

// Supplier logs op's outcomes under label
func Supplier[R any](logger Logger, label string, op fallible.Supplier[R]) fallible.Supplier[R] {
	logger = ValidLoggerOrDefault(logger)
	return func() (R, error) {
		v, err := op()
		if err != nil {
			logger.Warnf("%s: %s", label, err.Error())
			return v, err
		}
		logger.Debugf("%s: ok", label)
		return v, nil
	}
}

// Consumer logs op's outcomes under label
func Consumer[T any](logger Logger, label string, op fallible.Consumer[T]) fallible.Consumer[T] {
	logger = ValidLoggerOrDefault(logger)
	return func(t T) error {
		if err := op(t); err != nil {
			logger.Warnf("%s: %s", label, err.Error())
			return err
		}
		logger.Debugf("%s: ok", label)
		return nil
	}
}

// BiConsumer logs op's outcomes under label
func BiConsumer[T, U any](logger Logger, label string, op fallible.BiConsumer[T, U]) fallible.BiConsumer[T, U] {
	logger = ValidLoggerOrDefault(logger)
	return func(t T, u U) error {
		if err := op(t, u); err != nil {
			logger.Warnf("%s: %s", label, err.Error())
			return err
		}
		logger.Debugf("%s: ok", label)
		return nil
	}
}

// Runnable logs op's outcomes under label
func Runnable(logger Logger, label string, op fallible.Runnable) fallible.Runnable {
	logger = ValidLoggerOrDefault(logger)
	return func() error {
		if err := op(); err != nil {
			logger.Warnf("%s: %s", label, err.Error())
			return err
		}
		logger.Debugf("%s: ok", label)
		return nil
	}
}
