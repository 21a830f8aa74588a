package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"
	kongcompletion "github.com/jotaen/kong-completion"
	"gopkg.in/natefinch/lumberjack.v2"

	lxmenu "github.com/lxmenu/lxmenu"
)

// Context carries the global flag values and the container service into the
// subcommand Run methods.
type Context struct {
	LogFile    string
	LogLevel   string
	Padding    int
	Containers *lxmenu.ContainerSvc
}

type CLI struct {
	LogFile  string `default:"~/.cache/lxmenu/lxmenu.log" type:"path" placeholder:"<log-file-path>" help:"location of log file"`
	LogLevel string `default:"info" placeholder:"<debug|info|warn|error>" help:"the logging level (debug, info, warn, error)"`
	Padding  int    `default:"2" placeholder:"<spaces>" help:"spaces between menu listing columns"`

	Pick       PickCmd                   `cmd:"" default:"1" help:"show the container menu and attach to the chosen container"`
	Ls         LsCmd                     `cmd:"" help:"list containers"`
	Attach     AttachCmd                 `cmd:"" help:"attach this terminal to a container (and start it, if necessary)"`
	Install    InstallCmd                `cmd:"" help:"add the menu to your shell's startup file"`
	Doctor     DoctorCmd                 `cmd:"" help:"check that this host can run the menu"`
	Config     ConfigCmd                 `cmd:"" help:"print the effective configuration as YAML"`
	Version    VersionCmd                `cmd:"" help:"print version information about this command"`
	Completion kongcompletion.Completion `cmd:"" help:"print shell completion code"`
}

// initSlog sends logs to a rotated file, never the terminal: the menu owns
// the terminal during shell startup.
func (c *CLI) initSlog() {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo // Default to info if invalid
	}

	logger := slog.New(slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	slog.Debug("slog initialized")
}

const description = `Pick an LXC container to attach to when a new terminal opens.

Run "lxmenu install" once to hook the menu into your shell startup file;
after that every new terminal session lists the containers on this host and
attaches to whichever one you choose. Choosing "host" (or just pressing
Enter) drops you into a normal host shell.

Requires the classic LXC command line tools (lxc-ls, lxc-attach).`

func main() {
	var cli CLI

	parser := kong.Must(&cli,
		kong.Name("lxmenu"),
		kong.Description(description),
		kong.Configuration(kongyaml.Loader, "/etc/lxmenu/config.yaml", "~/.config/lxmenu/config.yaml"),
	)
	kongcompletion.Register(parser,
		kongcompletion.WithPredictor("container", containerPredictor()))

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	cli.initSlog()

	err = kctx.Run(&Context{
		LogFile:    cli.LogFile,
		LogLevel:   cli.LogLevel,
		Padding:    cli.Padding,
		Containers: lxmenu.Containers,
	})
	kctx.FatalIfErrorf(err)
}
