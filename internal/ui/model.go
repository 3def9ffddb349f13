package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"onepage/internal/anim"
	"onepage/internal/config"
	"onepage/internal/document"
	"onepage/internal/domain"
	"onepage/internal/eventbus"
	"onepage/internal/gesture"
	"onepage/internal/location"
	"onepage/internal/menu"
	"onepage/internal/section"
	"onepage/internal/transition"
	"onepage/internal/ui/input"
	inputtypes "onepage/internal/ui/input/types"
	"onepage/internal/ui/state"
	"onepage/internal/ui/viewmodels"
	"onepage/internal/ui/views"
)

// cellPixels converts terminal rows to the pixel-like units drag thresholds use
const cellPixels = 16

// ModelOption customizes a Model
type ModelOption func(*Model)

// WithClock replaces the clock used for gestures and animation starts
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) { m.now = now }
}

// WithClipboard replaces the clipboard writer
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) { m.copyText = write }
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	doc    *document.Document
	state  *state.AppState

	// Paging machinery
	registry   *section.Registry
	menus      *menu.Registry
	sidebar    *menu.Region
	surface    *scrollSurface
	frames     *tickScheduler
	driver     *anim.Driver
	controller *transition.Controller
	ctx        context.Context

	// Input interpreters
	wheel    *gesture.Wheel
	touch    *gesture.Touch
	keyboard *gesture.Keyboard

	help         help.Model
	keys         KeyMap
	inputHandler *input.Handler
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	pager        *PagerOps

	now      func() time.Time
	copyText func(string) error

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model paging through doc. loc may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, doc *document.Document, loc transition.Location, opts ...ModelOption) *Model {
	m := &Model{
		bus:          bus,
		config:       cfg,
		doc:          doc,
		state:        state.NewAppState(),
		registry:     section.NewRegistry(),
		menus:        menu.NewRegistry(),
		surface:      &scrollSurface{},
		frames:       newTickScheduler(cfg.FrameInterval()),
		help:         help.New(),
		keys:         DefaultKeyMap(),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		pager:        NewPagerOps(),
		now:          time.Now,
		copyText:     clipboard.WriteAll,
	}
	for _, o := range opts {
		o(m)
	}

	m.state.ShowMenu = cfg.UISettings.ShowMenu
	m.state.ShowStatus = cfg.UISettings.ShowStatus

	if len(cfg.Navigation.Anchors) > 0 {
		doc.ApplyAnchors(cfg.Navigation.Anchors)
	}

	items := make([]menu.Item, 0, doc.Len())
	for _, s := range doc.Sections {
		m.registry.Register(s)
		items = append(items, menu.Item{Label: s.Title, MenuAnchor: s.Anchor})
	}
	m.registry.OnChange(func(count int) {
		if m.bus != nil {
			m.bus.Publish(eventbus.SectionsChangedEvent{Count: count})
		}
	})

	menuName := cfg.UISettings.Menu
	if menuName == "" {
		menuName = "sidebar"
	}
	m.sidebar = menu.NewRegion(menuName, items...)
	m.menus.Add(m.sidebar)

	easing, ok := anim.EasingByName(cfg.Scrolling.Easing)
	if !ok {
		easing = anim.EaseInOutCubic
	}

	m.driver = anim.NewDriver(m.surface, m.frames, anim.WithClock(m.now))

	options := []transition.Option{
		transition.WithMenus(m.menus),
		transition.WithClock(m.now),
	}
	if loc != nil {
		options = append(options, transition.WithLocation(loc))
	}
	if bus != nil {
		options = append(options, transition.WithPublisher(bus))
	}

	m.controller = transition.New(m.registry, m.driver, m.surface, transition.Options{
		ScrollingSpeed: cfg.ScrollingSpeed(),
		Anchors:        doc.Anchors(),
		Menu:           menuName,
		LockAnchors:    cfg.Navigation.LockAnchors,
		Easing:         easing,
		AfterScroll: func(origin, destination domain.SectionInfo) {
			m.state.ClearStatus()
		},
		OnSectionChange: func(previous, next int) {
			log.Printf("ui: section %d -> %d", previous, next)
		},
	}, options...)
	m.ctx = transition.NewContext(context.Background(), m.controller)

	m.wheel = gesture.NewWheel(m.controller, cfg.Navigation.ScrollThreshold)
	m.wheel.SetEnabled(cfg.Navigation.Wheel)
	m.touch = gesture.NewTouch(m.controller, cfg.Navigation.TouchThreshold, m.controller.Options().ScrollingSpeed)
	m.touch.SetEnabled(cfg.Navigation.Touch)
	m.keyboard = gesture.NewKeyboard(m.controller)
	m.keyboard.SetEnabled(cfg.Navigation.Keyboard)

	m.viewModel = viewmodels.NewViewModel(m.state, doc, m.sidebar)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Controller returns the transition controller the model drives
func (m *Model) Controller() *transition.Controller {
	return m.controller
}

// Context carries the controller for view code
func (m *Model) Context() context.Context {
	return m.ctx
}

// ScrollOffset is the current viewport offset in rows
func (m *Model) ScrollOffset() float64 {
	return m.surface.ScrollOffset()
}

// StatusMessage is the message currently shown in the status bar
func (m *Model) StatusMessage() string {
	return m.state.StatusMessage
}

// Active reports whether paging mode is on
func (m *Model) Active() bool {
	return m.state.Active
}

// Init returns an initial command. The controller mounts on the first
// WindowSizeMsg, once section offsets are known.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case frameMsg:
		m.driver.Frame(msg.token, msg.at)
		if m.state.NeedsRealign && !m.controller.InTransition() {
			m.state.NeedsRealign = false
			m.controller.Realign()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg)
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	case LocationChangedMsg:
		m.controller.LocationChanged(msg.Fragment)

	case EventMsg:
		m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("ui: help pager failed: %v", msg.err)
		}

	case documentPagerMsg:
		if msg.err != nil {
			log.Printf("ui: document pager failed: %v", msg.err)
			m.state.SetStatus("Pager unavailable")
		}

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("ui: clipboard write failed: %v", msg.err)
			m.state.SetStatus("Clipboard unavailable")
		} else {
			m.state.SetStatus("Copied " + msg.link)
		}

	case pauseRenderingMsg:
		m.state.InPagerMode = true

	case resumeRenderingMsg:
		m.state.InPagerMode = false

	default:
		cmds = append(cmds, m.inputHandler.Update(msg))
	}

	// Frames requested while handling msg are delivered as ticks
	cmds = append(cmds, m.frames.Flush())
	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}
	if m.state.InPagerMode {
		return ""
	}

	m.viewModel.SetOffset(m.surface.ScrollOffset())
	m.viewModel.SetHelp(m.help, m.keys)
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.SetInput(m.inputHandler.Prompt(), ti.View())
	} else {
		m.viewModel.SetInput("", "")
	}

	return m.renderer.Render(m.ctx, m.viewModel.BuildViewState())
}

// resize lays the sections out one page apart and mounts on first call
func (m *Model) resize(width, height int) {
	menuWidth := views.MenuWidth(width, m.state.ShowMenu)
	m.state.Resize(width, height, views.ChromeRows(m.state.ShowStatus), menuWidth)
	m.help.Width = width

	m.doc.Layout(m.state.PageHeight)
	m.registry.Resort()

	if m.controller.InTransition() {
		m.state.NeedsRealign = true
	} else {
		m.controller.Realign()
	}

	if !m.state.Mounted {
		m.state.Mounted = true
		m.state.Active = true
		m.controller.Mount()
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	now := m.now()
	y := float64(msg.Y * cellPixels)
	step := m.config.Scrolling.WheelStep

	var res gesture.Result
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		res = m.wheel.Handle(step, now)

	case msg.Button == tea.MouseButtonWheelUp:
		res = m.wheel.Handle(-step, now)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.inSidebar(msg.X) {
			m.clickMenu(msg.Y)
			return
		}
		res = m.touch.Start(y, now)

	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		res = m.touch.Move(y, now)

	case msg.Action == tea.MouseActionRelease:
		res = m.touch.End(y, now)
	}

	if res.Emitted {
		m.controller.Dispatch(res.Intent)
	}
}

func (m *Model) inSidebar(x int) bool {
	return m.state.ShowMenu && x < m.state.Width-m.state.ContentWidth
}

// clickMenu jumps to the section whose menu row was clicked
func (m *Model) clickMenu(row int) {
	if row < 0 || row >= m.doc.Len() {
		return
	}
	m.controller.MoveTo(transition.Index(row))
}

// processAction executes one input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if res := m.keyboard.Handle(a.Key); res.Emitted {
			m.controller.Dispatch(res.Intent)
		}

	case inputtypes.JumpAction:
		if m.keyboard.Enabled() {
			m.controller.MoveTo(transition.Index(a.Index))
		}

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeGoto {
			m.gotoAnchor(a.Text)
		}

	case inputtypes.CancelTextAction:
		m.state.ClearStatus()

	case inputtypes.ToggleScrollingAction:
		enabled := !m.controller.ScrollingEnabled()
		m.controller.SetScrollingEnabled(enabled)
		if enabled {
			m.state.SetStatus("Scrolling resumed")
		} else {
			m.state.SetStatus("Scrolling paused")
		}

	case inputtypes.ToggleMenuAction:
		m.state.ShowMenu = !m.state.ShowMenu
		if m.state.Width > 0 {
			m.resize(m.state.Width, m.state.Height)
		}

	case inputtypes.CopyLinkAction:
		return m.copyLink()

	case inputtypes.ToggleHelpAction:
		content := m.helpRenderer.RenderHelpContent(m.controller.Anchors())
		return m.showInPager(content, func(err error) tea.Msg { return helpPagerMsg{err: err} })

	case inputtypes.OpenPagerAction:
		return m.showInPager(RenderDocument(m.doc), func(err error) tea.Msg { return documentPagerMsg{err: err} })

	case inputtypes.QuitAction:
		m.state.Active = false
		m.driver.Cancel()
		return tea.Quit
	}
	return nil
}

// gotoAnchor navigates to a typed anchor; unknown anchors only set a hint
func (m *Model) gotoAnchor(text string) {
	anchor := strings.TrimPrefix(strings.TrimSpace(text), "#")
	if anchor == "" {
		return
	}
	if m.controller.MoveTo(transition.Anchor(anchor)) {
		return
	}

	anchors := m.controller.Anchors()
	for _, a := range anchors {
		if a == anchor {
			return
		}
	}

	if suggestion, ok := document.Suggest(anchors, anchor); ok {
		m.state.SetStatus(fmt.Sprintf("No section #%s (did you mean #%s?)", anchor, suggestion))
	} else {
		m.state.SetStatus(fmt.Sprintf("No section #%s", anchor))
	}
}

func (m *Model) copyLink() tea.Cmd {
	link := location.Link(m.doc.Path, m.controller.ActiveSection().Anchor)
	write := m.copyText
	return func() tea.Msg {
		return clipboardMsg{link: link, err: write(link)}
	}
}

// showInPager returns a command that hands the terminal to the pager
func (m *Model) showInPager(content string, done func(error) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		if m.program != nil {
			m.program.Send(pauseRenderingMsg{})
		}
		err := m.pager.ShowInPager(content)
		if m.program != nil {
			m.program.Send(resumeRenderingMsg{})
		}
		return done(err)
	}
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		m.state.SetStatus(e.Message)
	case eventbus.ScrollingToggledEvent:
		log.Printf("ui: scrolling enabled=%v", e.Enabled)
	case eventbus.ConfigLoadedEvent:
		log.Printf("ui: config loaded from %s", e.Path)
	}
}
