// SPDX-License-Identifier: EPL-2.0

// Command sndcat inspects and converts sound files, locally or in an
// S3-compatible object store.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/blob"
	"github.com/ik5/sndstream/internal/config"
	"github.com/ik5/sndstream/stream"
)

// Populated via -ldflags="-X main.Version=...".
var Version = "dev"

const helpString = `Inspect and convert sound files

Usage: sndcat [OPTION]... COMMAND [ARG]...

Commands:
  info [--remote] FILE            Print the format and metadata of FILE
  convert [FORMAT] IN OUT         Re-encode IN as OUT
  fetch [FORMAT] KEY OUT          Download the object KEY into the file OUT
  put [FORMAT] IN KEY             Upload the file IN as the object KEY

Format options:
      --container=NAME   Output container (default: from the extension)
      --subtype=NAME     Output encoding (default: the source encoding)
      --kind=NAME        Sample kind used in transit (default: float64)

Options:
  -c, --config=FILE      Config file (default: sndcat.yaml)
      --env-file=FILE    Dotenv file (default: .env)
  -e, --engine=NAME      Codec engine: go or native (default: go)
      --log-level=LEVEL  none, error, warn, info or debug (default: info)
      --log-file=FILE    Write JSON logs to FILE
      --no-color         Disable colored output
  -h, --help             Prints this help message and exits
  -v, --version          Prints version information and exits

The object store is configured with MINIO_ENDPOINT, MINIO_USERNAME,
MINIO_PASSWORD, MINIO_BUCKET, MINIO_REGION and MINIO_SECURE.`

type palette struct {
	label func(a ...any) string
	good  func(a ...any) string
	bad   func(a ...any) string

	colors []*color.Color
}

func newPalette() palette {
	label := color.New(color.FgCyan)
	good := color.New(color.FgGreen)
	bad := color.New(color.FgRed, color.Bold)
	return palette{
		label:  label.SprintFunc(),
		good:   good.SprintFunc(),
		bad:    bad.SprintFunc(),
		colors: []*color.Color{label, good, bad},
	}
}

func (p palette) disable() {
	for _, c := range p.colors {
		c.DisableColor()
	}
}

type app struct {
	stdout io.Writer
	stderr io.Writer

	v       *viper.Viper
	logger  *slog.Logger
	colors  palette
	newBlob func(ctx context.Context, opts ...blob.Option) (*blob.Store, error)
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:  stdout,
		stderr:  stderr,
		v:       viper.New(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		colors:  newPalette(),
		newBlob: blob.NewFromEnv,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := newApp(os.Stdout, os.Stderr).run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// usageError marks errors caused by the command line.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// run executes one command line and returns the exit code.
func (a *app) run(ctx context.Context, args []string) int {
	flags := globalFlags()
	if err := flags.Parse(args); err != nil {
		return a.exit(usageError{err})
	}

	if help, _ := flags.GetBool("help"); help {
		fmt.Fprintln(a.stdout, helpString)
		return 0
	}
	if version, _ := flags.GetBool("version"); version {
		fmt.Fprintln(a.stdout, "sndcat", Version)
		fmt.Fprintln(a.stdout, "engines:", audio.Engines())
		return 0
	}

	logFile, err := a.configure(flags)
	if err != nil {
		return a.exit(err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	rest := flags.Args()
	if len(rest) == 0 {
		return a.exit(usagef("no command given"))
	}
	cmd, ok := lookupCommand(rest[0])
	if !ok {
		return a.exit(usagef("unknown command %q", rest[0]))
	}
	if err := a.runCommand(ctx, cmd, rest[1:]); err != nil {
		return a.exit(fmt.Errorf("%s: %w", cmd.name, err))
	}
	return 0
}

// configure loads the dotenv file, the environment and the config file, then
// builds the logger.
func (a *app) configure(flags *pflag.FlagSet) (*os.File, error) {
	envFile, _ := flags.GetString(keyEnvFile)
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || flags.Changed(keyEnvFile) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	ec, err := config.NewEngineConfigFromEnv()
	if err != nil {
		return nil, err
	}
	found, err := loadConfig(a.v, flags, ec)
	if err != nil {
		return nil, err
	}

	if a.v.GetBool(keyNoColor) {
		a.colors.disable()
	}

	logger, f, err := config.ConfigureLogger(a.v.GetString(keyLogLevel), a.v.GetString(keyLogFile), a.stderr, slog.HandlerOptions{})
	if err != nil {
		return nil, err
	}
	a.logger = logger.With("component", "sndcat")
	if !found {
		a.logger.Debug("no config file found", "configFilePath", a.v.GetString(keyConfig))
	}
	return f, nil
}

func (a *app) exit(err error) int {
	fmt.Fprintln(a.stderr, a.colors.bad("sndcat:"), err)

	var usage usageError
	if errors.As(err, &usage) {
		fmt.Fprintln(a.stderr, "Try 'sndcat --help' for more information.")
		return 2
	}
	return 1
}

func (a *app) streamOptions() []stream.Option {
	return []stream.Option{
		stream.WithEngineName(a.v.GetString(keyEngine)),
		stream.WithLogger(a.logger),
	}
}

func (a *app) store(ctx context.Context) (*blob.Store, error) {
	opts := []blob.Option{blob.WithLogger(a.logger)}
	if n := a.v.GetInt(keyWindow); n > 0 {
		opts = append(opts, blob.WithWindow(n))
	}
	return a.newBlob(ctx, opts...)
}
