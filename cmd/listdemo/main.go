// Command listdemo exercises the list implementations in this module and
// prints what each step did: prime lists, insert/remove/pop traces, capacity
// changes of the array list and Josephus eliminations on the circular list.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/Invicton-Labs/go-lists/config"
	"github.com/Invicton-Labs/go-lists/log"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

// runIDField tags every log entry of one invocation.
const runIDField = "run_id"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

// run executes the command and returns its exit code. The config file is
// read from fs. The report goes to stdout; logs go to stderr.
func run(ctx context.Context, args []string, fs afero.Fs, stdout io.Writer, stderr io.Writer, getenv func(string) string) int {
	logOutput := zapcore.Lock(zapcore.AddSync(stderr))
	if err := log.InitDefault(log.NewInput{Name: "listdemo", Level: zapcore.InfoLevel, Output: logOutput}); err != nil {
		panic(err)
	}

	flags := pflag.NewFlagSet("listdemo", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.StringP("config", "c", "", "path to a TOML config file")
	logLevel := flags.String("log-level", "", "log level: debug, info, warn or error")
	dev := flags.Bool("dev", false, "write human-readable logs")
	jsonOutput := flags.Bool("json", false, "write the report as one JSON object per line")
	primes := flags.Int("primes", 0, "number of primes to append in the prime-list scenario")
	participants := flags.Int("participants", 0, "number of Josephus participants")
	step := flags.Int("step", 0, "Josephus step length")
	mem := flags.Bool("mem", false, "report heap usage in the reclaim scenario")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(fs, *configPath, getenv)
	if err != nil {
		log.Error(err)
		return 1
	}

	// Flags take precedence over the file and the environment.
	if flags.Changed("log-level") {
		cfg.Log.Level = *logLevel
	}
	if flags.Changed("dev") {
		cfg.Log.Development = *dev
	}
	if flags.Changed("json") {
		cfg.Demo.JSON = *jsonOutput
	}
	if flags.Changed("primes") {
		cfg.Demo.Primes = *primes
	}
	if flags.Changed("participants") {
		cfg.Josephus.Participants = *participants
	}
	if flags.Changed("step") {
		cfg.Josephus.Step = *step
	}
	if flags.Changed("mem") {
		cfg.Demo.Memory = *mem
	}

	if err := cfg.Validate(); err != nil {
		log.Error(err)
		return 1
	}
	input, err := cfg.LoggerInput()
	if err != nil {
		log.Error(err)
		return 1
	}
	input.Output = logOutput
	if err := log.InitDefault(input); err != nil {
		log.Error(err)
		return 1
	}
	if err := log.SweetenDefaultLogger(map[string]any{runIDField: uuid.New().String()}); err != nil {
		log.Error(err)
		return 1
	}
	defer func() {
		log.Default().Sync()
		if err := log.UnsweetenDefaultLogger([]string{runIDField}); err != nil {
			log.Error(err)
		}
	}()

	log.Debugw("Loaded config",
		"config_path", *configPath,
		"primes", cfg.Demo.Primes,
		"participants", cfg.Josephus.Participants,
		"step", cfg.Josephus.Step,
	)

	ctx = log.LogContext(ctx, log.Default())
	reports, runErr := runScenarios(ctx, cfg)
	if err := writeReports(stdout, reports, cfg.Demo.JSON); err != nil {
		log.Error(err)
		return 1
	}
	if runErr != nil {
		log.Error(runErr)
		return 1
	}
	log.Infow("All scenarios passed", "scenarios", len(reports))
	return 0
}
