package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"t0ast.cc/brave-alfred/internal"
	uerror "t0ast.cc/brave-alfred/util/error"
	ulog "t0ast.cc/brave-alfred/util/log"
)

const description = "List Brave Browser profiles as Alfred script filter items."

type CLI struct {
	Home       string `help:"Home directory to look for Brave profiles in (default: the current user's home)" optional:"" type:"path"`
	Executable string `help:"Path of the Brave Browser executable" default:"/Applications/Brave Browser.app/Contents/MacOS/Brave Browser"`
	LogLevel   string `help:"Minimum level of log messages written to stderr (debug, info, warn, error)" default:"warn" name:"log-level"`

	Mode  string `arg:"" help:"launch or incognito" default:"launch" optional:""`
	Param string `arg:"" help:"A URL or search term to open" optional:""`
}

// Run parses the command line and writes the resulting items to
// `stdout`. Log messages go to `stderr`.
func Run(args []string, stdout io.Writer, stderr io.Writer) error {
	ulog.SetOutput(stderr)

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("brave-alfred"), kong.Description(description))
	if err != nil {
		return uerror.WithStackTrace(err)
	}
	if _, err := parser.Parse(args[1:]); err != nil {
		return uerror.WithExitCode(uerror.ExitCodeUsage, uerror.WithStackTrace(err))
	}

	if err := ulog.SetLevel(cli.LogLevel); err != nil {
		return uerror.WithExitCode(uerror.ExitCodeUsage, uerror.WithStackTrace(err))
	}

	envelope, err := cli.Items()
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(envelope); err != nil {
		return uerror.WithStackTrace(err)
	}
	return nil
}

// Items runs the whole pipeline. Nothing is returned unless every
// profile could be read.
func (cli CLI) Items() (internal.Envelope, error) {
	mode := internal.Mode(cli.Mode)
	if err := mode.Validate(); err != nil {
		return internal.Envelope{}, err
	}

	home := cli.Home
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return internal.Envelope{}, uerror.WithStackTrace(err)
		}
	}

	profiles, err := internal.LocateProfiles(home, mode)
	if err != nil {
		return internal.Envelope{}, uerror.WithStackTrace(err)
	}
	ulog.Debugf("Located %d profiles in %s", len(profiles), home)

	builder := internal.ActionBuilder{
		Executable: cli.Executable,
		Param:      cli.Param,
	}
	actions, err := builder.BuildAll(profiles, mode)
	if err != nil {
		return internal.Envelope{}, uerror.WithStackTrace(err)
	}

	return internal.Assemble(actions), nil
}
