package nussinov

import (
	"strconv"

	"github.com/gosuri/uitable"
)

// Format lays the matrix out as a table with the sequence along both axes.
// Cells below the diagonal are shown as "-".
func Format(m *Matrix, seq Sequence) string {
	if m.Len() == 0 {
		return ""
	}

	table := uitable.New()
	table.Separator = " "

	header := []interface{}{""}
	for col, b := range seq {
		header = append(header, string(b))
		table.RightAlign(col + 1)
	}
	table.AddRow(header...)

	for i, row := range m.dp {
		cells := []interface{}{string(seq[i])}
		for j, v := range row {
			if j < i {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, strconv.Itoa(v))
		}
		table.AddRow(cells...)
	}

	return table.String()
}
