package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"record-generator/internal/schema"
	"record-generator/primitive"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
)

func runInspect(opts *options, w io.Writer) error {
	f, err := schema.LoadFile(opts.Schema)
	if err != nil {
		return err
	}

	if err := schema.Validate(f).Error(); err != nil {
		return fmt.Errorf("%w: %w", errInvalid, err)
	}

	_, err = io.WriteString(w, renderKinds(f))

	return err
}

// renderKinds draws one catalog table per kind.
func renderKinds(f *schema.File) string {
	var b strings.Builder

	for i := range f.Kinds {
		k := &f.Kinds[i]
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s.%s)", k.Name, f.Package, k.GoName)))
		b.WriteString("\n")
		b.WriteString(kindTable(k).Render())
		b.WriteString("\n")
	}

	return b.String()
}

func kindTable(k *schema.Kind) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("#", "FIELD", "TYPE", "SIZE", "GO NAME").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 || col == 3:
				return numberStyle
			default:
				return cellStyle
			}
		})

	for i, fd := range k.Fields {
		t.Row(
			strconv.Itoa(i),
			fd.Name,
			fd.Type,
			strconv.FormatUint(uint64(primitive.FromName(fd.Type).Size()), 10),
			fd.GoName,
		)
	}

	return t
}
