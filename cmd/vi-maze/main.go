package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/vi-maze/audio"
	"github.com/lixenwraith/vi-maze/game"
	"github.com/lixenwraith/vi-maze/input"
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/render"
	"github.com/lixenwraith/vi-maze/score"
	"github.com/lixenwraith/vi-maze/screen"
	"github.com/lixenwraith/vi-maze/terminal"
)

const (
	uiText  = "text"
	uiTcell = "tcell"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-MAZE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Optional .env, flags and real env vars take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
	}

	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "vi-maze: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "vi-maze",
		Usage:  "walk a random maze from S to E against the clock",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "scores",
				Value:   score.DefaultFile,
				Usage:   "append-only score log",
				Sources: cli.EnvVars("VI_MAZE_SCORES"),
			},
			&cli.StringFlag{
				Name:    "ui",
				Value:   uiText,
				Usage:   "frontend: text or tcell",
				Sources: cli.EnvVars("VI_MAZE_UI"),
			},
			&cli.StringFlag{
				Name:    "keys",
				Usage:   "TOML keymap overriding w/a/s/d",
				Sources: cli.EnvVars("VI_MAZE_KEYS"),
			},
			&cli.BoolFlag{
				Name:    "sound",
				Usage:   "play a chime on win",
				Sources: cli.EnvVars("VI_MAZE_SOUND"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "write logs to logs/" + logFileName,
				Sources: cli.EnvVars("VI_MAZE_DEBUG"),
			},
		},
		Action: play,
		Commands: []*cli.Command{
			{
				Name:  "scores",
				Usage: "list recorded times, fastest first",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "top", Value: 10, Usage: "number of times to show, 0 for all"},
				},
				Action: listScores,
			},
		},
	}
}

func play(ctx context.Context, cmd *cli.Command) error {
	if f := setupLogging(cmd.Bool("debug")); f != nil {
		defer f.Close()
	}
	out := cmd.Root().Writer

	ui := cmd.String("ui")
	if ui != uiText && ui != uiTcell {
		return fmt.Errorf("unknown ui %q (want %s or %s)", ui, uiText, uiTcell)
	}

	keys, err := input.LoadKeyFile(cmd.String("keys"))
	if err != nil {
		return err
	}

	// Fail before prompting when keys can't be read one at a time
	var keySrc game.KeySource
	if ui == uiText {
		kr, err := terminal.NewKeyReader(os.Stdin)
		if err != nil {
			return fmt.Errorf("keyboard input needs an interactive terminal: %w", err)
		}
		keySrc = kr
	}

	level := game.ReadLevel(bufio.NewReader(os.Stdin), out)
	grid := maze.Generate(level)
	log.Printf("level %d: %dx%d maze", level, grid.Width(), grid.Height())

	var renderer game.Renderer
	closeUI := func() {}
	if ui == uiTcell {
		sc, err := screen.New()
		if err != nil {
			return fmt.Errorf("open screen: %w", err)
		}
		renderer, keySrc, closeUI = sc, sc, sc.Close
	} else {
		renderer = render.NewText(out)
	}

	store := score.NewStore(cmd.String("scores"))
	loop := game.NewLoop(renderer, keySrc, store)

	if cmd.Bool("sound") {
		if chime, err := audio.NewChime(); err == nil {
			loop.SetNotifier(chime)
			defer chime.Close()
		} else {
			log.Printf("%v (continuing without audio)", err)
		}
	}

	res, err := loop.Run(game.NewSession(grid, keys, nil))
	closeUI()
	if err != nil {
		if errors.Is(err, terminal.ErrInterrupt) || errors.Is(err, io.EOF) {
			fmt.Fprintln(out, "\nAborted, no score recorded.")
			return nil
		}
		return err
	}

	game.Report(out, res)
	return nil
}

func listScores(ctx context.Context, cmd *cli.Command) error {
	out := cmd.Root().Writer
	store := score.NewStore(cmd.String("scores"))

	best, err := store.Best(int(cmd.Int("top")))
	if err != nil {
		return err
	}
	if len(best) == 0 {
		fmt.Fprintf(out, "No scores recorded in %s yet.\n", store.Path())
		return nil
	}
	for i, s := range best {
		fmt.Fprintf(out, "%3d. %9.3fs\n", i+1, s)
	}
	return nil
}
