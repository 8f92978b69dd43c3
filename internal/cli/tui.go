package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jsoncanvas/jsoncanvas/pkg/editor"
	"github.com/jsoncanvas/jsoncanvas/pkg/errors"
	"github.com/jsoncanvas/jsoncanvas/pkg/jsonpath"
	"github.com/jsoncanvas/jsoncanvas/pkg/jsontree"
	"github.com/jsoncanvas/jsoncanvas/pkg/layout"
)

// newTUICmd creates the tui command for the interactive editor.
func newTUICmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui <file>",
		Short: "Open the interactive two-pane editor",
		Long: `Open a terminal editor showing the document text beside its structural
graph. Navigating the graph keeps the text view in sync; edits made on the
graph side rewrite the text through the canonical pretty-printer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			session := editor.NewSession(cfg)
			if err := session.Load(ctx, string(data)); err != nil {
				printError("%s: %s", path, errors.UserMessage(err))
				return err
			}
			session.RebuildGraph(ctx)

			model := newEditorModel(ctx, session, path)
			prog, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}

			final := prog.(editorModel)
			if final.dirty {
				out := session.Text() + "\n"
				if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				printSuccess("Saved %s", path)
			}
			return nil
		},
	}

	return cmd
}

// =============================================================================
// EditorModel - Interactive two-pane editor
// =============================================================================

var (
	paneBorderStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	nodeHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	rowSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	rowNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	rowRefStyle      = lipgloss.NewStyle().Foreground(colorGray)
	gutterStyle      = lipgloss.NewStyle().Foreground(colorDim)
	lineFocusStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	statusErrStyle   = lipgloss.NewStyle().Foreground(colorRed)
	statusOKStyle    = lipgloss.NewStyle().Foreground(colorDim)
	promptStyle      = lipgloss.NewStyle().Foreground(colorYellow)
)

// editorModel is the bubbletea model for the interactive editor.
type editorModel struct {
	ctx     context.Context
	session *editor.Session
	file    string

	node  int // cursor over graph nodes
	row   int // cursor over the current node's rows
	focus int // 1-indexed text line to highlight, 0 for none

	input  string // dialog input buffer
	status string

	width  int
	height int
	dirty  bool
}

func newEditorModel(ctx context.Context, session *editor.Session, file string) editorModel {
	return editorModel{
		ctx:     ctx,
		session: session,
		file:    file,
		status:  "e edit  a add  r rename  d delete  u undo  y redo  p pretty  c compact  s save+quit  q quit",
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if _, idle := m.session.Mode().(editor.Idle); !idle {
			return m.updateDialog(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

// updateBrowse handles keys while no dialog is open.
func (m editorModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.ctx
	g := m.session.Graph()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s":
		m.dirty = true
		return m, tea.Quit
	case "up", "k":
		if m.row > 0 {
			m.row--
		} else if m.node > 0 {
			m.node--
			m.row = 0
		}
	case "down", "j":
		if n, ok := currentNode(g, m.node); ok && m.row < n.Content.RowCount()-1 {
			m.row++
		} else if m.node < len(g.Nodes)-1 {
			m.node++
			m.row = 0
		}
	case "e":
		m.beginOnRow(func(path jsonpath.Path) error { return m.session.BeginCellEdit(path) })
	case "a":
		if n, ok := currentNode(g, m.node); ok {
			m.report(m.session.BeginAddEntry(n.Path))
		}
	case "r":
		if n, ok := currentNode(g, m.node); ok {
			if key, ok := currentKey(n, m.row); ok {
				m.report(m.session.BeginRenameKey(n.Path, key))
			} else {
				m.status = "rename needs an object row"
			}
		}
	case "d":
		m.beginOnRow(func(path jsonpath.Path) error {
			return m.session.ApplyEdit(ctx, path, editor.Delete{})
		})
	case "u":
		if !m.session.Undo(ctx) {
			m.status = "nothing to undo"
		}
	case "y":
		if !m.session.Redo(ctx) {
			m.status = "nothing to redo"
		}
	case "p":
		m.report(m.session.ApplyPrettyPrint(ctx))
	case "c":
		m.report(m.session.ApplyCompact(ctx))
	case "enter":
		if n, ok := currentNode(g, m.node); ok {
			m.session.FocusNode(n.ID)
		}
	}

	// Seed the dialog input with the draft where one exists.
	switch mode := m.session.Mode().(type) {
	case editor.EditingCell:
		m.input = mode.Draft
	case editor.RenamingKey:
		m.input = mode.Draft
	case editor.AddingEntry:
		m.input = ""
	}

	m.refresh()
	return m, nil
}

// updateDialog handles keys while an edit dialog is open. Enter commits,
// escape cancels, anything printable appends to the input buffer.
func (m editorModel) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.ctx

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.session.CancelMode()
		m.input = ""
		m.status = "cancelled"
	case tea.KeyBackspace:
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	case tea.KeyEnter:
		var err error
		switch m.session.Mode().(type) {
		case editor.EditingCell:
			err = m.session.CommitCellEdit(ctx, m.input)
		case editor.AddingEntry:
			key, raw, _ := strings.Cut(m.input, "=")
			if mode := m.session.Mode().(editor.AddingEntry); mode.Kind == jsontree.KindArray {
				key, raw = "", m.input
			}
			err = m.session.CommitAddEntry(ctx, key, raw)
		case editor.RenamingKey:
			err = m.session.CommitRename(ctx, m.input)
		}
		if err != nil {
			m.status = errors.UserMessage(err)
		} else {
			m.input = ""
			m.status = "applied"
		}
	}

	m.refresh()
	return m, nil
}

// beginOnRow resolves the cursor row to a child path and runs fn on it.
func (m *editorModel) beginOnRow(fn func(jsonpath.Path) error) {
	g := m.session.Graph()
	n, ok := currentNode(g, m.node)
	if !ok {
		return
	}
	path, ok := rowPath(n, m.row)
	if !ok {
		m.status = "no row selected"
		return
	}
	m.report(fn(path))
}

func (m *editorModel) report(err error) {
	if err != nil {
		m.status = errors.UserMessage(err)
	}
}

// refresh consumes the session's one-shot signals: pending rebuilds run
// immediately, and a pending focus updates the highlighted text line.
func (m *editorModel) refresh() {
	if m.session.TakeRebuildRequest() {
		m.session.RebuildGraph(m.ctx)
		m.dirtyClamp()
	}
	if line, ok := m.session.TakeTargetLine(); ok {
		m.focus = line
	}
	if id, ok := m.session.TakeSelectedNode(); ok {
		for i, n := range m.session.Graph().Nodes {
			if n.ID == id {
				m.node = i
				m.row = 0
				break
			}
		}
	}
}

func (m *editorModel) dirtyClamp() {
	g := m.session.Graph()
	if m.node >= len(g.Nodes) {
		m.node = len(g.Nodes) - 1
	}
	if m.node < 0 {
		m.node = 0
	}
	if n, ok := currentNode(g, m.node); ok && m.row >= n.Content.RowCount() {
		m.row = 0
	}
}

func currentNode(g *layout.Graph, i int) (layout.Node, bool) {
	if i < 0 || i >= len(g.Nodes) {
		return layout.Node{}, false
	}
	return g.Nodes[i], true
}

// currentKey returns the object key under the row cursor.
func currentKey(n layout.Node, row int) (string, bool) {
	c, ok := n.Content.(layout.ObjectContent)
	if !ok || row < 0 || row >= len(c.Rows) {
		return "", false
	}
	return c.Rows[row].Key, true
}

// rowPath returns the document path of the row under the cursor.
func rowPath(n layout.Node, row int) (jsonpath.Path, bool) {
	switch c := n.Content.(type) {
	case layout.ObjectContent:
		if row < 0 || row >= len(c.Rows) {
			return nil, false
		}
		return n.Path.Child(c.Rows[row].Key), true
	case layout.ArrayContent:
		if row < 0 || row >= len(c.Rows) {
			return nil, false
		}
		return n.Path.ChildIndex(c.Rows[row].Index), true
	}
	return nil, false
}

// =============================================================================
// View
// =============================================================================

func (m editorModel) View() string {
	paneWidth := m.width/2 - 2
	if paneWidth < 20 {
		paneWidth = 20
	}
	paneHeight := m.height - 4
	if paneHeight < 5 {
		paneHeight = 5
	}

	left := paneBorderStyle.Width(paneWidth).Height(paneHeight).Render(m.textPane(paneHeight))
	right := paneBorderStyle.Width(paneWidth).Height(paneHeight).Render(m.graphPane(paneHeight))

	var b strings.Builder
	b.WriteString(StyleTitle.Render("jsoncanvas — " + m.file))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m editorModel) textPane(height int) string {
	lines := strings.Split(m.session.Text(), "\n")
	showNumbers := m.session.Config().ShowLineNumbers

	start := 0
	if m.focus > height {
		start = m.focus - height
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		lineNo := i + 1
		if showNumbers {
			gutter := fmt.Sprintf("%4d ", lineNo)
			if lineNo == m.focus {
				b.WriteString(lineFocusStyle.Render(gutter))
			} else {
				b.WriteString(gutterStyle.Render(gutter))
			}
		}
		b.WriteString(lines[i])
		b.WriteString("\n")
	}
	return b.String()
}

func (m editorModel) graphPane(height int) string {
	g := m.session.Graph()
	var b strings.Builder
	used := 0

	for i, n := range g.Nodes {
		if used >= height {
			break
		}
		header := n.Label + "  " + StyleDim.Render(n.Path.String())
		if i == m.node {
			header = "▸ " + header
		} else {
			header = "  " + header
		}
		b.WriteString(nodeHeaderStyle.Render(header))
		b.WriteString("\n")
		used++

		if i != m.node {
			continue
		}
		used += m.renderRows(&b, n, height-used)
	}

	if len(g.Nodes) == 0 {
		b.WriteString(StyleDim.Render("  (empty document)"))
	}
	return b.String()
}

// renderRows writes the selected node's visible rows and returns how many
// lines it used.
func (m editorModel) renderRows(b *strings.Builder, n layout.Node, budget int) int {
	metrics := m.session.Config().Layout
	used := 0

	write := func(i int, text string, ref bool) {
		if used >= budget {
			return
		}
		style := rowNormalStyle
		if ref {
			style = rowRefStyle
		}
		if i == m.row {
			style = rowSelectedStyle
			text = "▸ " + text
		} else {
			text = "  " + text
		}
		b.WriteString("    " + style.Render(text))
		b.WriteString("\n")
		used++
	}

	switch c := n.Content.(type) {
	case layout.ObjectContent:
		for i, r := range c.Rows {
			if i >= metrics.MaxVisibleRows {
				break
			}
			write(i, fmt.Sprintf("%s: %s", r.Key, r.Display), r.Reference)
		}
		if hidden := metrics.HiddenRows(len(c.Rows)); hidden > 0 && used < budget {
			b.WriteString("    " + StyleDim.Render(fmt.Sprintf("  %d more", hidden)) + "\n")
			used++
		}
	case layout.ArrayContent:
		for i, r := range c.Rows {
			if i >= metrics.MaxVisibleRows {
				break
			}
			write(i, fmt.Sprintf("[%d]: %s", r.Index, r.Display), r.Reference)
		}
		if hidden := metrics.HiddenRows(len(c.Rows)); hidden > 0 && used < budget {
			b.WriteString("    " + StyleDim.Render(fmt.Sprintf("  %d more", hidden)) + "\n")
			used++
		}
	case layout.PrimitiveContent:
		write(0, c.Text, false)
	}
	return used
}

func (m editorModel) statusLine() string {
	if _, idle := m.session.Mode().(editor.Idle); !idle {
		prompt := dialogPrompt(m.session.Mode())
		return promptStyle.Render(prompt+" ") + m.input + promptStyle.Render("▏")
	}
	if err := m.session.ValidationError(); err != nil {
		return statusErrStyle.Render("invalid: " + errors.UserMessage(err))
	}
	return statusOKStyle.Render(m.status)
}

func dialogPrompt(mode editor.Mode) string {
	switch mo := mode.(type) {
	case editor.EditingCell:
		return fmt.Sprintf("edit %s (%s):", mo.Path, mo.Kind)
	case editor.AddingEntry:
		if mo.Kind == jsontree.KindArray {
			return fmt.Sprintf("append to %s:", mo.Path)
		}
		return fmt.Sprintf("add to %s (key=value):", mo.Path)
	case editor.RenamingKey:
		return fmt.Sprintf("rename %q on %s to:", mo.OldKey, mo.Path)
	}
	return ">"
}
