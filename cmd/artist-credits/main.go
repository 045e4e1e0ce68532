package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/artist-credits/internal/artist"
	"github.com/handiism/artist-credits/internal/audio"
	"github.com/handiism/artist-credits/internal/config"
	"github.com/handiism/artist-credits/internal/scan"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD93D"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
)

// colorize is false when stdout is not a terminal.
var colorize = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func paint(style lipgloss.Style, s string) string {
	if !colorize {
		return s
	}
	return style.Render(s)
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, paint(errorStyle, "Error: "+err.Error()))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "artist-credits",
		Usage: "Parse, check and normalize nested artist credits such as Group（Member（RealName））、Guest",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a JSON, TOML or YAML config file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "show verbose output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "Parse credit strings given as arguments or read line by line from stdin",
				ArgsUsage: "[credit...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output format: tree, flat, json or yaml"},
					&cli.BoolFlag{Name: "strict", Usage: "reject tokens left over after the top-level list"},
					&cli.BoolFlag{Name: "tokens", Usage: "print the token stream instead of the tree"},
				},
				Action: parseAction,
			},
			{
				Name:      "scan",
				Usage:     "Check the artist credits in audio file tags",
				ArgsUsage: "<path...>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "report format: tree, flat, json or yaml"},
				},
				Action: scanAction,
			},
			{
				Name:      "normalize",
				Usage:     "Rewrite artist credits in audio file tags in canonical form",
				ArgsUsage: "<path...>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "dry-run", Usage: "show the changes without writing them"},
				},
				Action: normalizeAction,
			},
		},
	}
}

func loadSettings(c *cli.Context) (*config.Settings, error) {
	path := c.String("config")
	if path == "" {
		return config.DefaultSettings(), nil
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return settings, nil
}

func reportFormat(c *cli.Context, settings *config.Settings) (audio.ReportFormat, error) {
	if f := c.String("format"); f != "" {
		return audio.ParseReportFormat(f)
	}
	return settings.ToReportFormat(), nil
}

func parseAction(c *cli.Context) error {
	settings, err := loadSettings(c)
	if err != nil {
		return err
	}
	if c.Bool("strict") {
		settings.RejectTrailing = true
	}
	format, err := reportFormat(c, settings)
	if err != nil {
		return err
	}

	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		if inputs, err = readLines(os.Stdin); err != nil {
			return err
		}
	}

	parser := artist.NewParser(settings.ParserOptions())
	report := audio.NewReportCreator(format)
	out := c.App.Writer

	failed := 0
	for i, input := range inputs {
		if i > 0 && !c.Bool("tokens") {
			fmt.Fprintln(out)
		}

		if c.Bool("tokens") {
			for _, tok := range artist.Tokenize(input).Remaining() {
				fmt.Fprintln(out, tok)
			}
			continue
		}

		list, err := parser.Parse(input)
		if err != nil {
			failed++
			fmt.Fprintln(out, paint(errorStyle, "❌ "+input))
			var perr *artist.ParseError
			if errors.As(err, &perr) {
				fmt.Fprintln(out, paint(errorStyle, "   "+caret(input, perr.Offset)))
			}
			fmt.Fprintln(out, "   "+err.Error())
			continue
		}

		rendered, err := report.RenderList(list)
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
	}

	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func scanAction(c *cli.Context) error {
	settings, err := loadSettings(c)
	if err != nil {
		return err
	}
	format, err := reportFormat(c, settings)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	manager, err := newManager(c, settings)
	if err != nil {
		return err
	}
	if err := manager.Initialize(ctx, c.Args().Slice()); err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	if err := manager.Run(ctx); err != nil {
		return interrupted(ctx, err)
	}

	report, err := audio.NewReportCreator(format).CreateReport(manager.Tracks())
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer)
	fmt.Fprint(c.App.Writer, report)

	processed, total, failed, invalid := manager.GetProgress()
	fmt.Fprintln(c.App.Writer)
	fmt.Fprintf(c.App.Writer, "✨ Scanned %d/%d files, %d unreadable, %d invalid credit(s)\n", processed, total, failed, invalid)

	if invalid > 0 || failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func normalizeAction(c *cli.Context) error {
	settings, err := loadSettings(c)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	manager, err := newManager(c, settings)
	if err != nil {
		return err
	}
	if err := manager.Initialize(ctx, c.Args().Slice()); err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	if err := manager.Run(ctx); err != nil {
		return interrupted(ctx, err)
	}

	dryRun := c.Bool("dry-run")
	n, err := manager.Normalize(ctx, dryRun)
	if err != nil {
		return interrupted(ctx, err)
	}

	fmt.Fprintln(c.App.Writer)
	if dryRun {
		fmt.Fprintf(c.App.Writer, "[Dry run] %d credit(s) would be rewritten\n", n)
	} else {
		fmt.Fprintf(c.App.Writer, "✨ Rewrote %d credit(s)\n", n)
	}
	return nil
}

func newManager(c *cli.Context, settings *config.Settings) (*scan.Manager, error) {
	if c.NArg() == 0 {
		return nil, errors.New("at least one path is required")
	}
	verbose := c.Bool("verbose")
	out := c.App.Writer

	return scan.NewManager(settings, func(event scan.ProgressEvent) {
		if event.Level == scan.LevelVerbose && !verbose {
			return
		}

		var line string
		switch event.Level {
		case scan.LevelError:
			line = paint(errorStyle, "❌ "+event.Message)
		case scan.LevelWarning:
			line = paint(warningStyle, "⚠️  "+event.Message)
		case scan.LevelSuccess:
			line = paint(successStyle, "✅ "+event.Message)
		case scan.LevelInfo:
			line = paint(infoStyle, "ℹ️  "+event.Message)
		default:
			line = "   " + event.Message
		}

		fmt.Fprintln(out, line)
	})
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func interrupted(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return cli.Exit("Cancelled.", 130)
	}
	return err
}

// caret points at byte offset in input, counting display columns.
func caret(input string, offset int) string {
	if offset > len(input) {
		offset = len(input)
	}
	return strings.Repeat(" ", lipgloss.Width(input[:offset])) + "^"
}

// readLines returns the non-empty lines of r. Lines may be of any length.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line = strings.TrimRight(line, "\r\n"); line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
