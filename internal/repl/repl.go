package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/leengari/constrec/internal/engine"
)

// Start reads commands from in until EOF, "exit" or "\q" and writes
// results to out
func Start(eng *engine.Engine, in io.Reader, out io.Writer, prompt string) {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "Welcome to constrec")
	fmt.Fprintln(out, "Type 'help' for commands, 'exit' or '\\q' to quit.")

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		if line == "exit" || line == "\\q" {
			break
		}

		result, err := eng.Execute(line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		PrintResult(out, result)
	}
}

// PrintResult renders a result as a table followed by its message
func PrintResult(w io.Writer, res *engine.Result) {
	if len(res.Rows) > 0 {
		tw := tablewriter.NewWriter(w)
		tw.SetHeader(res.Columns)
		tw.SetAutoFormatHeaders(false)
		tw.SetAutoWrapText(false)

		for _, row := range res.Rows {
			cells := make([]string, len(res.Columns))
			for i, col := range res.Columns {
				val, ok := row[col]
				if !ok || val == nil {
					cells[i] = "NULL"
				} else {
					cells[i] = fmt.Sprintf("%v", val)
				}
			}
			tw.Append(cells)
		}
		tw.Render()
	}

	if res.Message != "" {
		fmt.Fprintln(w, res.Message)
	}
}
