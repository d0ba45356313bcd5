package log

import (
	"sync"

	"github.com/Invicton-Labs/go-lists/collections"
	"github.com/Invicton-Labs/go-lists/gensync"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"
)

type defaultLoggerHook func(logger Logger) stackerr.Error

type defaultLoggerHookRegistration struct {
	id string
}

func (dlhr defaultLoggerHookRegistration) Close() {
	defaultLoggerHooks.Delete(dlhr.id)
}

var defaultLoggerHooks gensync.Map[string, defaultLoggerHook]

// registerDefaultLoggerHook will register a hook function that will be called whenever
// the default logger is updated. The hook is run once immediately with the
// current default logger.
func registerDefaultLoggerHook(hook defaultLoggerHook) (defaultLoggerHookRegistration, stackerr.Error) {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()

	registration := defaultLoggerHookRegistration{
		id: uuid.New().String(),
	}
	if err := hook(defaultLogger); err != nil {
		return defaultLoggerHookRegistration{}, err
	}
	defaultLoggerHooks.Store(registration.id, hook)
	return registration, nil
}

// A DynamicDefaultLogger is a logger derived from the default logger that is
// rebuilt every time the default logger changes. Packages hold one of these
// as their component logger so that InitDefault in main applies to them.
type DynamicDefaultLogger interface {
	Logger() Logger
	Close()
}

type dynamicDefaultLogger struct {
	lock         sync.Mutex
	registration defaultLoggerHookRegistration
	logger       Logger
}

func (ddl *dynamicDefaultLogger) Logger() Logger {
	ddl.lock.Lock()
	defer ddl.lock.Unlock()
	return ddl.logger
}

func (ddl *dynamicDefaultLogger) Close() {
	ddl.lock.Lock()
	defer ddl.lock.Unlock()
	ddl.registration.Close()
}

// NewDynamicDefaultLogger creates a DynamicDefaultLogger. The config func, if
// not nil, receives the default logger's config each time it changes and
// returns the config for the derived logger.
func NewDynamicDefaultLogger(loggerConfigFunc func(input NewInput) NewInput) DynamicDefaultLogger {
	ddl := &dynamicDefaultLogger{}
	hook := func(logger Logger) stackerr.Error {
		ddl.lock.Lock()
		defer ddl.lock.Unlock()
		if loggerConfigFunc != nil {
			ddl.logger = New(loggerConfigFunc(logger.Config()))
		} else {
			ddl.logger = New(logger.Config())
		}
		return nil
	}
	ddl.registration, _ = registerDefaultLoggerHook(hook)
	return ddl
}

// ComponentLogger returns a DynamicDefaultLogger that tags every entry with
// the given component name.
func ComponentLogger(component string) DynamicDefaultLogger {
	return NewDynamicDefaultLogger(func(in NewInput) NewInput {
		in.InitialFields = collections.MergeMaps(in.InitialFields, map[string]any{
			"component": component,
		})
		return in
	})
}

var defaultLogger Logger
var defaultLoggerLock sync.Mutex

var Debugf func(template string, args ...interface{})
var Infof func(template string, args ...interface{})
var Warnf func(template string, args ...interface{})
var Errorf func(template string, args ...interface{})
var Fatalf func(template string, args ...interface{})

var Debugw func(msg string, keysAndValues ...interface{})
var Infow func(msg string, keysAndValues ...interface{})
var Warnw func(msg string, keysAndValues ...interface{})
var Errorw func(msg string, keysAndValues ...interface{})
var Fatalw func(msg string, keysAndValues ...interface{})

var Error func(err error)

var With func(args ...interface{}) Logger
var WithError func(err error) Logger

func init() {
	if err := InitDefault(NewInput{Level: zapcore.InfoLevel}); err != nil {
		panic(err)
	}
}

// Default returns the current default logger.
func Default() Logger {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()
	return defaultLogger
}

// InitDefault will create a new logger with the given settings
// and will set it as the default global logger. Every registered
// DynamicDefaultLogger is rebuilt from the new settings. The package-level
// functions are swapped without synchronization, so this should not be
// called while other routines are logging through them.
func InitDefault(input NewInput) stackerr.Error {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()

	defaultLogger = New(input)

	Debugf = defaultLogger.Debugf
	Infof = defaultLogger.Infof
	Warnf = defaultLogger.Warnf
	Errorf = defaultLogger.Errorf
	Fatalf = defaultLogger.Fatalf

	Debugw = defaultLogger.Debugw
	Infow = defaultLogger.Infow
	Warnw = defaultLogger.Warnw
	Errorw = defaultLogger.Errorw
	Fatalw = defaultLogger.Fatalw

	Error = defaultLogger.Error

	With = defaultLogger.With
	WithError = defaultLogger.WithError

	var err stackerr.Error
	defaultLoggerHooks.Range(func(key string, hook defaultLoggerHook) bool {
		err = hook(defaultLogger)
		return err == nil
	})
	return err
}

// SweetenDefaultLogger will add fields to the default logger.
func SweetenDefaultLogger(fields map[string]any) stackerr.Error {
	input := Default().Config()
	input.InitialFields = collections.MergeMaps(input.InitialFields, fields)
	return InitDefault(input)
}

// UnsweetenDefaultLogger will remove fields from the default logger.
func UnsweetenDefaultLogger(fieldKeys []string) stackerr.Error {
	input := Default().Config()
	needsUpdate := false
	for _, key := range fieldKeys {
		if _, ok := input.InitialFields[key]; ok {
			needsUpdate = true
			delete(input.InitialFields, key)
		}
	}
	if needsUpdate {
		return InitDefault(input)
	}
	return nil
}
