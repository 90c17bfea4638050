package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/eatonphil/sqlmatrix"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	m, err := sqlmatrix.New(3,
		sqlmatrix.WithName("users"),
		sqlmatrix.WithColumnNames("id", "name", "score"),
	)
	if err != nil {
		logger.Error("create matrix", "error", err)
		os.Exit(1)
	}

	for _, line := range []string{
		"1, 'Admin', 9.5",
		"2, 'Terry', NULL",
		"3, 'Anette', 7.25",
	} {
		row := sqlmatrix.NewRow(m.ColumnCount())
		for i, lit := range strings.Split(line, ",") {
			v, err := sqlmatrix.ParseLiteral(lit)
			if err != nil {
				logger.Error("parse literal", "literal", lit, "error", err)
				os.Exit(1)
			}
			row.Set(i, v)
		}

		if _, err := m.AppendRow(row); err != nil {
			logger.Error("append row", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("staged rows", "table", m.Name(), "rows", m.RowCount(), "capacity", m.Capacity())

	fmt.Print(m)
	fmt.Println()

	sorted, err := m.SortedBy(m.ColumnIndex("name"))
	if err != nil {
		logger.Error("sort", "error", err)
		os.Exit(1)
	}
	if err := sorted.Render(os.Stdout); err != nil {
		logger.Error("render", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	m.Each(func(_ int, r sqlmatrix.Row) bool {
		literals := []string{}
		for _, v := range r.Values() {
			literals = append(literals, v.Literal())
		}
		fmt.Printf("(%s)\n", strings.Join(literals, ", "))
		return true
	})
}
