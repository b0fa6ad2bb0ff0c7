package ui

import (
	"clickchess/src"
	"clickchess/src/logx"
	clic "clickchess/src/ui/cli"
	"clickchess/src/ui/gconf"
	"clickchess/src/ui/gui"
	"clickchess/src/ui/gui/gbase"
	"clickchess/src/ui/tui"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"
)

const logfile string = "clickchess.log"

type env struct {
	logger  *logx.Logx
	config  *gconf.Config
	session *src.Session
	closer  io.Closer
}

func (e *env) Close() {
	_ = e.logger.Sync()
	if e.closer != nil {
		e.closer.Close()
	}
}

// setup opens the log, loads the config and creates the session from the flags
func setup(c *cli.Command) (*env, error) {
	e := &env{}
	opts := logx.Options{
		Level:   logx.LevelFromString(c.String("level")),
		Dev:     c.Bool("dev"),
		Console: c.Bool("console"),
	}
	if opts.Console {
		e.logger = logx.New(nil, opts)
	} else {
		file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("error open logfile: %w", err)
		}
		e.closer = file
		e.logger = logx.New(file, opts)
	}

	cfg, err := gconf.NewConfig(c.String("config"))
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("error load config: %w", err)
	}
	policy, err := cfg.SelectionPolicy(c.String("policy"))
	if err != nil {
		e.Close()
		return nil, err
	}
	e.config = cfg

	e.session = src.NewSession(e.logger, policy)
	if fen := c.String("fen"); fen != "" {
		if err := e.session.CreateFromFEN(fen); err != nil {
			e.Close()
			return nil, err
		}
	}
	e.logger.Infof("session ready, policy %v", policy)
	return e, nil
}

func runGUI(c *cli.Command) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.Close()
	if err := gui.NewGUI(e.session, e.config, e.logger).Run(); err != nil && !errors.Is(err, gbase.ErrExit) {
		e.logger.Errorf("error GUI: %v", err)
		return fmt.Errorf("error GUI: %w", err)
	}
	return nil
}

func runTUI(c *cli.Command) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.Close()
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("error create screen: %w", err)
	}
	t := tui.NewTUI(e.session, screen, tui.ThemeFromString(e.config.Theme), e.config.Flipped, e.logger)
	return t.Run()
}

func runCLI(c *cli.Command) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.Close()
	clic.PrepareTerminal(os.Stdout)
	return clic.NewCLI(e.session, os.Stdin, os.Stdout, e.config.Flipped).Run()
}

func RunClickChess(args []string) error {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "fen",
			Usage: "start from a FEN position",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to config file (default: XDG config dir)",
		},
		&cli.StringFlag{
			Name:  "policy",
			Usage: "selection policy on a missed click: sticky|clear",
		},
		&cli.BoolFlag{
			Name:    "dev",
			Aliases: []string{"d"},
			Usage:   "dev encode log",
		},
		&cli.StringFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Usage:   "level log",
			Value:   "info",
		},
		&cli.BoolFlag{
			Name:    "console",
			Aliases: []string{"c"},
			Usage:   "console log",
		},
	}

	return (&cli.Command{
		Name:  "clickchess",
		Usage: "click-to-move chess board",
		Flags: flags,
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "window with mouse input",
				Action: func(ctx context.Context, c *cli.Command) error {
					return runGUI(c)
				},
			},
			{
				Name:  "tui",
				Usage: "terminal board with mouse input",
				Action: func(ctx context.Context, c *cli.Command) error {
					return runTUI(c)
				},
			},
			{
				Name:  "cli",
				Usage: "line mode, type a square to click it",
				Action: func(ctx context.Context, c *cli.Command) error {
					return runCLI(c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runGUI(c)
		},
	}).Run(context.Background(), args)
}
