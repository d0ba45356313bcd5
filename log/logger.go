package log

import (
	"time"

	"github.com/Invicton-Labs/go-lists/collections"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})

	// Error logs the error message at the Error level, with the error's
	// stackerr fields and stack traces attached.
	Error(err error)

	With(args ...interface{}) Logger
	WithOptions(opts ...zap.Option) Logger
	WithError(err error) Logger

	// Enabled reports whether entries at the given level would be written.
	// Callers on hot paths check this before building fields.
	Enabled(level zapcore.Level) bool

	// Config gets the config values that can be used to re-create this logger
	Config() NewInput

	// Clone returns a copy of the logger
	Clone() Logger

	Sync() error
}

type logger struct {
	*zap.SugaredLogger
	config NewInput
}

func (l logger) Clone() Logger {
	return logger{
		SugaredLogger: l.SugaredLogger.With(),
		config:        l.config.Clone(),
	}
}

func (l logger) Config() NewInput {
	return l.config.Clone()
}

func (l logger) Enabled(level zapcore.Level) bool {
	return l.SugaredLogger.Desugar().Core().Enabled(level)
}

func (l logger) Error(err error) {
	if err == nil {
		return
	}
	// Reuse the existing stack if there is one, otherwise capture the
	// caller's stack.
	serr := stackerr.WrapWithFrameSkipsWithoutExtraStack(err, 1)
	fields := serr.Fields()
	keys := collections.MapKeys(fields)
	collections.SortSliceAscendingInPlace(keys)
	kvp := make([]any, 0, 2*len(keys)+2)
	for _, k := range keys {
		kvp = append(kvp, k, fields[k])
	}
	kvp = append(kvp, "error_stacks", serr.FormatStacks())
	l.SugaredLogger.WithOptions(zap.AddCallerSkip(1)).Errorw(err.Error(), kvp...)
}

func (l logger) With(args ...interface{}) Logger {
	return logger{l.SugaredLogger.With(args...), l.config.Clone()}
}

func (l logger) WithOptions(opts ...zap.Option) Logger {
	return logger{l.SugaredLogger.WithOptions(opts...), l.config.Clone()}
}

func (l logger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return l.With(zap.Error(err))
}

type NewInput struct {
	Name          string
	Level         zapcore.Level
	IsDevelopment bool
	InitialFields map[string]any
	SkippedFrames int
	// Output receives the encoded entries. Stdout is used when nil.
	Output zapcore.WriteSyncer
}

func (ni *NewInput) Clone() NewInput {
	return NewInput{
		Name:          ni.Name,
		Level:         ni.Level,
		IsDevelopment: ni.IsDevelopment,
		InitialFields: collections.CopyMap(ni.InitialFields),
		SkippedFrames: ni.SkippedFrames,
		Output:        ni.Output,
	}
}

func newEncoder(isDevelopment bool) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktraces",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if isDevelopment {
		// If it's development mode, modify some settings
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}

func New(input NewInput) Logger {
	sink := input.Output
	if sink == nil {
		out, _, err := zap.Open("stdout")
		if err != nil {
			panic(err)
		}
		sink = out
	}
	errSink, _, err := zap.Open("stderr")
	if err != nil {
		panic(err)
	}

	core := zapcore.NewCore(newEncoder(input.IsDevelopment), sink, zap.NewAtomicLevelAt(input.Level))

	buildOpts := []zap.Option{
		zap.ErrorOutput(errSink),
	}
	if input.IsDevelopment {
		buildOpts = append(buildOpts, zap.Development())
	} else {
		buildOpts = append(buildOpts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewSamplerWithOptions(core, time.Second, 100, 100)
		}))
	}

	return newFromCore(core, input, buildOpts...)
}

// NewFromCore builds a logger that writes to an existing zap core, such as
// an observer core in tests. Output, Level and IsDevelopment in the input
// are recorded in Config but otherwise ignored.
func NewFromCore(core zapcore.Core, input NewInput) Logger {
	return newFromCore(core, input)
}

func newFromCore(core zapcore.Core, input NewInput, buildOpts ...zap.Option) Logger {
	input = input.Clone()

	// Add the caller field and the stacktraces
	buildOpts = append(buildOpts, zap.AddCaller(), zap.AddStacktrace(zap.WarnLevel))

	if len(input.InitialFields) > 0 {
		keys := collections.MapKeys(input.InitialFields)
		collections.SortSliceAscendingInPlace(keys)
		fs := make([]zap.Field, 0, len(keys))
		for _, k := range keys {
			if f, ok := input.InitialFields[k].(zap.Field); ok {
				f.Key = k
				fs = append(fs, f)
			} else {
				fs = append(fs, zap.Any(k, input.InitialFields[k]))
			}
		}
		buildOpts = append(buildOpts, zap.Fields(fs...))
	}

	if input.SkippedFrames != 0 {
		buildOpts = append(buildOpts, zap.AddCallerSkip(input.SkippedFrames))
	}

	zapLogger := zap.New(core, buildOpts...)
	if input.Name != "" {
		zapLogger = zapLogger.Named(input.Name)
	}
	return logger{zapLogger.Sugar(), input}
}
