// Package report formats pipeline results as text tables and writes the
// cloud and chart artifacts.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/wizenheimer/ngramlab"
)

const barWidth = 40

// Formatter renders tables in one style.
type Formatter struct {
	Style table.Style
}

// NewFormatter picks a rounded style for terminals and plain ASCII otherwise.
func NewFormatter(w io.Writer) Formatter {
	if f, ok := w.(*os.File); ok && isTerminal(f.Fd()) {
		return Formatter{Style: table.StyleRounded}
	}
	return Formatter{Style: table.StyleDefault}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (f Formatter) newWriter(title string) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(f.Style)
	if title != "" {
		tw.SetTitle(title)
	}
	return tw
}

// NGrams lists n-grams one per row in extraction order.
func (f Formatter) NGrams(title string, grams []ngramlab.NGram) string {
	tw := f.newWriter(title)
	tw.AppendHeader(table.Row{"#", "n-gram"})
	for i, g := range grams {
		tw.AppendRow(table.Row{i + 1, g.Key()})
	}
	return tw.Render()
}

// Frequencies lists frequency entries with their counts.
func (f Formatter) Frequencies(title string, entries []ngramlab.FrequencyEntry) string {
	tw := f.newWriter(title)
	tw.AppendHeader(table.Row{"n-gram", "count"})
	for _, e := range entries {
		tw.AppendRow(table.Row{e.NGram.Key(), formatCount(e.Count)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	return tw.Render()
}

// Scores lists scored entries with three decimals.
func (f Formatter) Scores(title string, entries []ngramlab.ScoredEntry) string {
	tw := f.newWriter(title)
	tw.AppendHeader(table.Row{"n-gram", "score"})
	for _, e := range entries {
		tw.AppendRow(table.Row{e.NGram.Key(), fmt.Sprintf("%.3f", e.Score)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	return tw.Render()
}

// Matrix renders a square matrix with "<label> i" row and column headers,
// counting from 1.
func (f Formatter) Matrix(title, label string, matrix [][]float64) string {
	tw := f.newWriter(title)

	header := table.Row{""}
	for i := range matrix {
		header = append(header, fmt.Sprintf("%s %d", label, i+1))
	}
	tw.AppendHeader(header)

	configs := make([]table.ColumnConfig, 0, len(matrix))
	for i, row := range matrix {
		r := table.Row{fmt.Sprintf("%s %d", label, i+1)}
		for _, v := range row {
			r = append(r, fmt.Sprintf("%.3f", v))
		}
		tw.AppendRow(r)
		configs = append(configs, table.ColumnConfig{Number: i + 2, Align: text.AlignRight})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// Bars renders weights as a horizontal bar chart scaled to the largest weight.
func (f Formatter) Bars(title string, weights []ngramlab.WeightedLabel) string {
	maxWeight := 0.0
	for _, w := range weights {
		maxWeight = math.Max(maxWeight, w.Weight)
	}

	tw := f.newWriter(title)
	tw.AppendHeader(table.Row{"n-gram", "weight", ""})
	for _, w := range weights {
		tw.AppendRow(table.Row{w.Label, fmt.Sprintf("%.3f", w.Weight), bar(w.Weight, maxWeight)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	return tw.Render()
}

func bar(weight, maxWeight float64) string {
	if maxWeight <= 0 || weight <= 0 {
		return ""
	}
	return strings.Repeat("█", int(math.Round(weight/maxWeight*barWidth)))
}

func formatCount(c float64) string {
	if c == math.Trunc(c) {
		return fmt.Sprintf("%d", int64(c))
	}
	return fmt.Sprintf("%g", c)
}

// FileRenderer writes each artifact as <Dir>/<name>.txt.
type FileRenderer struct {
	Dir       string
	Formatter Formatter
}

// NewFileRenderer creates dir if needed.
func NewFileRenderer(dir string) (*FileRenderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &FileRenderer{Dir: dir, Formatter: Formatter{Style: table.StyleDefault}}, nil
}

// Render writes the bar chart for weights; the file is closed on every path.
func (r *FileRenderer) Render(name string, weights []ngramlab.WeightedLabel) (err error) {
	path := filepath.Join(r.Dir, name+".txt")
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	_, err = io.WriteString(file, r.Formatter.Bars(name, weights)+"\n")
	return err
}
