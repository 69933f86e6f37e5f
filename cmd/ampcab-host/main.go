// Command ampcab-host streams a WAV file through the amp/cab effect and
// plays the result, with a terminal browser for models, cabs, and levels.
// It stands in for the host runtime the effect core normally lives inside.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tonefold/ampcab/pkg/audiofile"
	"github.com/tonefold/ampcab/pkg/framework/debug"
	"github.com/tonefold/ampcab/pkg/fx"
)

var cli struct {
	Dir   string `short:"d" default:"." type:"existingdir" help:"Base directory holding models/ and cabs/ subdirectories."`
	Log   string `default:"ampcab-host.log" help:"Diagnostic log file (the terminal belongs to the UI)."`
	Input string `arg:"" type:"existingfile" help:"Input WAV file streamed through the effect, looped."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("ampcab-host"),
		kong.Description("Neural amp + cabinet IR host with a terminal browser."),
		kong.UsageOnError(),
	)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ampcab-host:", err)
		os.Exit(1)
	}
}

func run() error {
	logFile, err := os.OpenFile(cli.Log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	log := debug.New(logFile, "ampcab")

	input, rate, err := audiofile.ReadIR(cli.Input, 0)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if rate != fx.SampleRate {
		log.Warn("input is %d Hz, playing at %d Hz without resampling", rate, fx.SampleRate)
	}

	inst, err := fx.New(cli.Dir, &fx.Config{Logger: log})
	if err != nil {
		return err
	}
	defer inst.Close()

	meter := &debug.Meter{}
	player, err := startPlayback(inst, input, meter)
	if err != nil {
		return fmt.Errorf("start playback: %w", err)
	}
	defer player.Close()

	prog := tea.NewProgram(newBrowser(inst, meter), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	stats := meter.Stats()
	log.Info("processed %d blocks, avg %v, max %v", stats.Count, stats.Avg, stats.Max)
	return nil
}
