package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableFormatter_Format_Table(t *testing.T) {
	table := &Table{
		Headers: []string{"NAME", "VALUE"},
		Rows: [][]string{
			{"key1", "value1"},
			{"longer-key", "value2"},
		},
	}

	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, table); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "NAME        VALUE\n" +
		"key1        value1\n" +
		"longer-key  value2\n"
	if buf.String() != want {
		t.Errorf("Format() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTableFormatter_Format_NoHeaders(t *testing.T) {
	table := Table{Headers: []string{"COL"}, Rows: [][]string{{"data"}}}

	var buf bytes.Buffer
	if err := (&TableFormatter{NoHeaders: true}).Format(&buf, table); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.String() != "data\n" {
		t.Errorf("Format() = %q, want %q", buf.String(), "data\n")
	}
}

func TestTableFormatter_Format_Tabular(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, sample{Key: "k", Value: ""}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasSuffix(lines[1], "-") {
		t.Errorf("Format() = %q, want header and one row with '-' for empty value", buf.String())
	}
}

func TestMapTable_Sorted(t *testing.T) {
	table := MapTable(map[string]string{"b": "2", "a": "1", "c": "x\ty"})

	if len(table.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(table.Rows))
	}
	if table.Rows[0][0] != "a" || table.Rows[2][0] != "c" {
		t.Errorf("rows not sorted by key: %v", table.Rows)
	}
	if table.Rows[2][1] != `x\ty` {
		t.Errorf("tab in value should be escaped, got %q", table.Rows[2][1])
	}
}

func TestCell(t *testing.T) {
	tests := map[string]string{
		"":       "-",
		"plain":  "plain",
		"a\nb":   `a\nb`,
		"a\r\nb": `a\r\nb`,
	}
	for in, want := range tests {
		if got := Cell(in); got != want {
			t.Errorf("Cell(%q) = %q, want %q", in, got, want)
		}
	}
}
