package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"onepage/internal/config"
	"onepage/internal/document"
	"onepage/internal/eventbus"
	"onepage/internal/location"
	"onepage/internal/transition"
	"onepage/internal/ui"
)

func runView(cmd *cobra.Command, args []string) error {
	path, fragment := location.ParseTarget(args[0])

	// Set up logging
	logFile, err := os.OpenFile("onepage.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	bus := eventbus.New()
	defer bus.Close()

	cfg, err := loadConfig(cmd, bus)
	if err != nil {
		return err
	}

	doc, err := loadDocument(path, cfg)
	if err != nil {
		return err
	}

	fragment = strings.TrimPrefix(fragment, "#")
	if fragment != "" && !hasAnchor(doc, fragment) {
		fmt.Fprintln(cmd.ErrOrStderr(), unknownAnchorMessage(doc, fragment))
		log.Printf("ignoring unknown anchor %q for %s", fragment, path)
		fragment = ""
	}

	// Without a terminal there is nothing to page: print the text instead
	if !isTerminal(os.Stdout) {
		return printPlain(cmd.OutOrStdout(), doc, fragment)
	}

	var loc transition.Location
	var store *location.FileStore
	if noState {
		loc = location.NewMemory(fragment)
	} else {
		store, err = location.NewFileStore(resolveStatePath(cfg), path)
		if err != nil {
			return err
		}
		if fragment != "" {
			if err := store.PushFragment(fragment); err != nil {
				return err
			}
		}
		loc = store
	}

	log.Printf("Creating UI model for %s (%d sections)", path, doc.Len())
	uiModel := ui.NewModel(bus, cfg, doc, loc)

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Navigation.Wheel || cfg.Navigation.Touch {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, programOpts...)
	uiModel.SetProgram(p)

	// Forward the events the UI reacts to
	forward := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventScrollingToggled, forward)
	bus.Subscribe(eventbus.EventSectionChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SectionChangedEvent); ok {
			log.Printf("Section %d -> %d (#%s)", ev.PreviousIndex, ev.NewIndex, ev.Anchor)
		}
	})

	bus.Subscribe(eventbus.EventLocationChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.LocationChangedEvent); ok {
			log.Printf("Following external location #%s", ev.Fragment)
		}
	})

	if store != nil {
		go func() {
			err := store.Watch(ctx, func(fragment string) {
				p.Send(ui.LocationChangedMsg{Fragment: fragment})
			})
			if err != nil {
				log.Printf("Location watch stopped: %v", err)
				bus.Publish(eventbus.ErrorEvent{Message: "Not following external section changes", Err: err})
			}
		}()
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(cmd *cobra.Command, bus eventbus.EventBus) (*config.Config, error) {
	svc := config.NewConfigServiceWithBus(bus, configPath)
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Scrolling.SpeedMS = speedMS
	}
	if flags.Changed("easing") {
		cfg.Scrolling.Easing = easingName
	}
	if flags.Changed("anchors") {
		cfg.Navigation.Anchors = anchorList
	}
	if flags.Changed("lock-anchors") {
		cfg.Navigation.LockAnchors = lockAnchors
	}
	if noMenu {
		cfg.UISettings.ShowMenu = false
	}
	if noMouse {
		cfg.Navigation.Wheel = false
		cfg.Navigation.Touch = false
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// loadDocument parses path and applies configured anchors
func loadDocument(path string, cfg *config.Config) (*document.Document, error) {
	doc, err := document.Load(path, document.ParseOptions{
		MaxLevel: cfg.Document.MaxHeadingLevel,
		Breaks:   cfg.Document.Breaks,
	})
	if err != nil {
		return nil, err
	}
	if len(cfg.Navigation.Anchors) > 0 {
		doc.ApplyAnchors(cfg.Navigation.Anchors)
	}
	return doc, nil
}

func resolveStatePath(cfg *config.Config) string {
	if statePath != "" {
		return statePath
	}
	if cfg.UISettings.StatePath != "" {
		return cfg.UISettings.StatePath
	}
	return location.DefaultStatePath()
}

func hasAnchor(doc *document.Document, anchor string) bool {
	for _, a := range doc.Anchors() {
		if a == anchor {
			return true
		}
	}
	return false
}

func unknownAnchorMessage(doc *document.Document, anchor string) string {
	if suggestion, ok := document.Suggest(doc.Anchors(), anchor); ok {
		return fmt.Sprintf("onepage: no section #%s (did you mean #%s?)", anchor, suggestion)
	}
	return fmt.Sprintf("onepage: no section #%s", anchor)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printPlain writes the whole document, or only the section named by
// fragment, separated by blank lines
func printPlain(w io.Writer, doc *document.Document, fragment string) error {
	for i, s := range doc.Sections {
		if fragment != "" && s.Anchor != fragment {
			continue
		}
		if i > 0 && fragment == "" {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(s.Lines, "\n")); err != nil {
			return err
		}
	}
	return nil
}
