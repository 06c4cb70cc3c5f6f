package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/tinfo/terminfo"
	"github.com/thanhnguyen2187/tinfo/terminfo/tcaps"
)

const (
	DefaultHeight = 20
	absentValue   = "-"
)

var kinds = []tcaps.Kind{tcaps.KindBool, tcaps.KindNumber, tcaps.KindString}

type (
	Row struct {
		Name    string
		Capname string
		Value   string
	}
	// Browser lists the capabilities of one entry, one kind at a time.
	Browser struct {
		title   string
		rows    map[tcaps.Kind][]Row
		kind    int
		cursor  int
		offset  int
		height  int
		present bool
	}
)

func formatValue(caps terminfo.Capabilities, kind tcaps.Kind, name string) string {
	switch kind {
	case tcaps.KindBool:
		return strconv.FormatBool(caps.Boolean(name))
	case tcaps.KindNumber:
		if n, ok := caps.Number(name); ok {
			return strconv.Itoa(n)
		}
	case tcaps.KindString:
		if s, ok := caps.String(name); ok {
			return strconv.Quote(s)
		}
	}
	return absentValue
}

func BuildRows(caps terminfo.Capabilities, kind tcaps.Kind) []Row {
	return lo.Map(
		kind.Names(),
		func(name string, i int) Row {
			return Row{
				Name:    name,
				Capname: kind.Capname(i),
				Value:   formatValue(caps, kind, name),
			}
		},
	)
}

func NewBrowser(db *terminfo.Database) Browser {
	rows := make(map[tcaps.Kind][]Row, len(kinds))
	for _, kind := range kinds {
		rows[kind] = BuildRows(db, kind)
	}
	title := db.Name()
	if db.Description() != "" {
		title += " - " + db.Description()
	}
	return Browser{
		title:  title,
		rows:   rows,
		height: DefaultHeight,
	}
}

// visible returns the rows of the current kind, without the absent ones when
// the filter is on.
func (b Browser) visible() []Row {
	rows := b.rows[kinds[b.kind]]
	if !b.present {
		return rows
	}
	return lo.Filter(
		rows,
		func(row Row, _ int) bool {
			return row.Value != absentValue && row.Value != "false"
		},
	)
}

func (b Browser) Kind() tcaps.Kind {
	return kinds[b.kind]
}

// Selected is the row under the cursor.
func (b Browser) Selected() (Row, bool) {
	rows := b.visible()
	if b.cursor >= len(rows) {
		return Row{}, false
	}
	return rows[b.cursor], true
}

func (b Browser) moveCursor(delta int) Browser {
	count := len(b.visible())
	b.cursor = lo.Clamp(b.cursor+delta, 0, lo.Max([]int{count - 1, 0}))
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+b.height {
		b.offset = b.cursor - b.height + 1
	}
	return b
}

func (b Browser) switchKind(delta int) Browser {
	b.kind = (b.kind + delta + len(kinds)) % len(kinds)
	b.cursor, b.offset = 0, 0
	return b
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, tabs and help take four lines
		b.height = lo.Max([]int{msg.Height - 4, 1})
		return b.moveCursor(0), nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return b, tea.Quit
		case "up", "k":
			return b.moveCursor(-1), nil
		case "down", "j":
			return b.moveCursor(1), nil
		case "pgup":
			return b.moveCursor(-b.height), nil
		case "pgdown", " ":
			return b.moveCursor(b.height), nil
		case "home", "g":
			return b.moveCursor(-len(b.visible())), nil
		case "end", "G":
			return b.moveCursor(len(b.visible())), nil
		case "tab", "right", "l":
			return b.switchKind(1), nil
		case "shift+tab", "left", "h":
			return b.switchKind(-1), nil
		case "p":
			b.present = !b.present
			b.cursor, b.offset = 0, 0
			return b, nil
		}
	}
	return b, nil
}

func (b Browser) View() string {
	builder := strings.Builder{}
	builder.WriteString(b.title + "\n")

	tabs := lo.Map(
		kinds,
		func(kind tcaps.Kind, i int) string {
			if i == b.kind {
				return "[" + kind.String() + "]"
			}
			return " " + kind.String() + " "
		},
	)
	builder.WriteString(strings.Join(tabs, " ") + "\n")

	rows := b.visible()
	end := lo.Min([]int{b.offset + b.height, len(rows)})
	for i := b.offset; i < end; i++ {
		marker := "  "
		if i == b.cursor {
			marker = "> "
		}
		row := rows[i]
		builder.WriteString(fmt.Sprintf("%s%-32s %-8s %s\n", marker, row.Name, row.Capname, row.Value))
	}

	builder.WriteString("\ntab: kind  p: present only  q: quit\n")
	return builder.String()
}
