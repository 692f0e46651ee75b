package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/internal/service"
	"github.com/MKhiriev/go-qr-scanner/models"
)

type screen int

const (
	screenMain screen = iota
	screenPicker
	screenBuildInfo
)

const statusTimeout = 2 * time.Second

var menuItems = []string{"Use camera", "Pick from gallery", "Scan"}

// appModel is the single scanner screen. All controller calls happen here,
// on the bubbletea loop; tasks run as commands and come back as eventMsg.
type appModel struct {
	ctx        context.Context
	scanner    service.Scanner
	galleryDir string
	buildInfo  models.AppBuildInfo

	currentScreen screen
	idx           int
	notice        string
	status        string
	running       int
	dialog        *permissionDialog
	picker        pickerModel
	spinner       spinner.Model
	width         int
	height        int

	logger *logger.Logger
}

func newAppModel(ctx context.Context, scanner service.Scanner, galleryDir string, buildInfo models.AppBuildInfo, logger *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:        ctx,
		scanner:    scanner,
		galleryDir: galleryDir,
		buildInfo:  buildInfo,
		spinner:    s,
		logger:     logger,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.currentScreen == screenPicker {
			m.picker = m.picker.Resize(m.width, m.height)
		}
		return m, nil
	case eventMsg:
		m.running--
		return m.apply(m.scanner.Handle(m.ctx, msg.event))
	case spinner.TickMsg:
		if m.running > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.logger.Err(msg.err).Msg("copy to clipboard")
		m.status = "Copy failed"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.currentScreen {
	case screenPicker:
		return m.updatePicker(msg)
	case screenBuildInfo:
		return m.updateBuildInfo(msg)
	default:
		return m.updateMain(msg)
	}
}

func (m appModel) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.dialog != nil {
		return m.updateDialog(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(menuItems)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m.runMenuItem(m.idx)
	case key.Matches(keyMsg, keys.camera):
		return m.runMenuItem(0)
	case key.Matches(keyMsg, keys.gallery):
		return m.runMenuItem(1)
	case key.Matches(keyMsg, keys.scan):
		return m.runMenuItem(2)
	case key.Matches(keyMsg, keys.copy):
		text := m.scanner.Result()
		if text == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(text)
	case key.Matches(keyMsg, keys.info):
		m.currentScreen = screenBuildInfo
	}

	return m, nil
}

func (m appModel) updateDialog(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var granted bool
	switch {
	case key.Matches(keyMsg, keys.yes):
		granted = true
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		granted = false
	default:
		return m, nil
	}

	code := m.dialog.request.Code
	m.dialog = nil
	return m.apply(m.scanner.Handle(m.ctx, service.PermissionResult{Code: code, Granted: granted}))
}

func (m appModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenMain
		return m.apply(m.scanner.Handle(m.ctx, service.GalleryPicked{}))
	}

	var (
		cmd  tea.Cmd
		path string
	)
	m.picker, cmd, path = m.picker.Update(msg)
	if path == "" {
		return m, cmd
	}

	m.currentScreen = screenMain
	next, handled := m.apply(m.scanner.Handle(m.ctx, service.GalleryPicked{Path: path}))
	return next, tea.Batch(cmd, handled)
}

func (m appModel) updateBuildInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.info):
		m.currentScreen = screenMain
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) runMenuItem(idx int) (tea.Model, tea.Cmd) {
	m.idx = idx
	m.notice = ""

	switch idx {
	case 0:
		return m.apply(m.scanner.UseCamera(m.ctx))
	case 1:
		return m.apply(m.scanner.UseGallery(m.ctx))
	case 2:
		return m.apply(m.scanner.Scan(m.ctx))
	}
	return m, nil
}

// apply carries out what the controller asked for.
func (m appModel) apply(action service.Action) (tea.Model, tea.Cmd) {
	if action.Notice != "" {
		m.notice = action.Notice
	}
	if action.Err != nil {
		m.logger.Debug().Err(action.Err).Msg("scanner action")
	}

	var cmds []tea.Cmd
	if action.Prompt != nil {
		m.dialog = &permissionDialog{request: *action.Prompt}
	}
	if action.OpenGallery {
		m.picker = newPickerModel(m.galleryDir).Resize(m.width, m.height)
		m.currentScreen = screenPicker
		cmds = append(cmds, m.picker.Init())
	}
	if action.Task != nil {
		if m.running == 0 {
			cmds = append(cmds, m.spinner.Tick)
		}
		m.running++
		cmds = append(cmds, cmdRunTask(m.ctx, action.Task))
	}

	return m, tea.Batch(cmds...)
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenPicker:
		body = m.picker.View()
	case screenBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	default:
		body = m.viewMain()
		if m.dialog != nil {
			body += "\n\n" + m.dialog.View()
		}
	}

	return appStyle.Render(body)
}

func (m appModel) viewMain() string {
	var b strings.Builder

	for i, item := range menuItems {
		line := fmt.Sprintf("%d. %s", i+1, item)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nImage: ")
	b.WriteString(fitText(valueOrDash(m.scanner.Image().Path), 60))
	b.WriteString("\n")

	if m.running > 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(" Working...\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(resultBoxStyle.Render(valueOrDash(m.scanner.Result())))

	return renderPage(
		"QR SCANNER",
		b.String(),
		"1/2/3 or ↑/↓ + enter: choose    c: copy result    v: about",
	)
}

func cmdRunTask(ctx context.Context, task service.Task) tea.Cmd {
	return func() tea.Msg {
		return eventMsg{event: task(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
