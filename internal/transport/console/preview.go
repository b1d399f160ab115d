package console

import (
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/reshetovitsme/nepse-digest/internal/modules/message/domain"
)

// Preview renders a per-section summary of the digest
func Preview(w io.Writer, blocks []domain.Block) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)

	rows := make([][]string, 0, len(blocks))
	for _, b := range blocks {
		status := "ok"
		if b.Empty {
			status = "fallback"
		}
		rows = append(rows, []string{
			b.Section.String(),
			strconv.Itoa(b.Items),
			strconv.Itoa(utf8.RuneCountInString(b.Text())),
			status,
		})
	}

	table.Header([]string{"section", "items", "chars", "status"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
