package tui

import (
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-scanner/internal/acquisition"
)

// pickerChrome is the number of lines around the file list.
const pickerChrome = 10

// pickerModel is the gallery page. esc leaves it, so the picker's own back
// binding is limited to h/left/backspace.
type pickerModel struct {
	fp filepicker.Model
}

func newPickerModel(dir string) pickerModel {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = acquisition.ImageExtensions
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "back"))

	return pickerModel{fp: fp}
}

func (m pickerModel) Init() tea.Cmd {
	return m.fp.Init()
}

// Resize fits the file list into a terminal of the given size.
func (m pickerModel) Resize(width, height int) pickerModel {
	if height <= pickerChrome {
		return m
	}
	m.fp, _ = m.fp.Update(tea.WindowSizeMsg{Width: width, Height: height - pickerChrome})
	return m
}

// Update forwards msg to the picker and reports the path the user chose, if
// any. Files with unsupported extensions are reported too and rejected by the
// gallery.
func (m pickerModel) Update(msg tea.Msg) (pickerModel, tea.Cmd, string) {
	var cmd tea.Cmd
	m.fp, cmd = m.fp.Update(msg)

	if ok, path := m.fp.DidSelectFile(msg); ok {
		return m, cmd, path
	}
	if ok, path := m.fp.DidSelectDisabledFile(msg); ok {
		return m, cmd, path
	}
	return m, cmd, ""
}

func (m pickerModel) View() string {
	return renderPage(
		"PICK IMAGE",
		m.fp.CurrentDirectory+"\n\n"+m.fp.View(),
		"↑/↓: move    →/enter: open    ←: up    esc: cancel",
	)
}
