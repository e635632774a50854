package update

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/focusd/internal/storage"
)

func (m *Model) exportState() {
	path := storage.DefaultExportFilename(m.now())
	if err := storage.ExportSnapshot(path, m.snapshot()); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("export failed: %v", err), IsError: true}
		m.LastError = err
		return
	}
	m.Status = StatusBar{Text: "exported to " + path}
}

func (m *Model) beginImport() {
	m.Import = ImportState{Stage: ImportStagePath}
	m.importInput.SetValue("")
	m.importInput.Focus()
	m.Status = StatusBar{Text: "enter path of file to import"}
}

// handleImportKey drives the two-stage import flow: pick a file, then
// confirm the destructive replace. A structurally invalid file aborts at
// stage one with no state change.
func (m Model) handleImportKey(msg tea.KeyMsg) Model {
	switch m.Import.Stage {
	case ImportStagePath:
		switch msg.String() {
		case "esc":
			m.Import = ImportState{}
			m.importInput.Blur()
			m.Status = StatusBar{Text: "import canceled"}
			return m
		case "enter":
			path := strings.TrimSpace(m.importInput.Value())
			if path == "" {
				m.Import = ImportState{}
				m.importInput.Blur()
				return m
			}
			snap, err := storage.ImportSnapshot(path)
			if err != nil {
				m.Import = ImportState{}
				m.importInput.Blur()
				if errors.Is(err, storage.ErrFormat) {
					m.Status = StatusBar{Text: "import rejected: file is not a valid snapshot", IsError: true}
				} else {
					m.Status = StatusBar{Text: fmt.Sprintf("import failed: %v", err), IsError: true}
				}
				m.LastError = err
				return m
			}
			m.Import = ImportState{Stage: ImportStageConfirm, Path: path, Pending: snap}
			m.importInput.Blur()
			return m
		}
		var cmd tea.Cmd
		m.importInput, cmd = m.importInput.Update(msg)
		_ = cmd
		return m
	case ImportStageConfirm:
		switch msg.String() {
		case "y", "Y":
			m.cancelDeferredTimers()
			m.applySnapshot(m.Import.Pending)
			m.Import = ImportState{}
			m.Status = StatusBar{Text: "import applied"}
			m.saveState()
			return m
		case "n", "N", "esc":
			m.Import = ImportState{}
			m.Status = StatusBar{Text: "import canceled, nothing changed"}
			return m
		}
	}
	return m
}
