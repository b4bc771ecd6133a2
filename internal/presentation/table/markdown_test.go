package table_test

import (
	"strings"
	"testing"

	"github.com/aretw0/schemargs/internal/presentation/table"
	"github.com/aretw0/schemargs/pkg/schema"
)

func TestGenerateMarkdown(t *testing.T) {
	slots := schema.Slots{
		'l': schema.FloatList{1.5, 3.25},
		'A': schema.Bool(true),
		'c': schema.String("a|b"),
	}

	got := table.GenerateMarkdown(slots)

	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, separator and 3 rows, got:\n%s", got)
	}

	want := []string{
		"| `-A` | bool | true |",
		"| `-c` | string | \"a\\|b\" |",
		"| `-l` | [float] | [1.5, 3.25] |",
	}
	for i, row := range want {
		if lines[i+2] != row {
			t.Errorf("row %d = %q, want %q", i, lines[i+2], row)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value schema.Value
		want  string
	}{
		{"bool", schema.Bool(false), "false"},
		{"int", schema.Int(-3), "-3"},
		{"float", schema.Float(0.25), "0.25"},
		{"empty string", schema.String(""), `""`},
		{"int list", schema.IntList{1, 2}, "[1, 2]"},
		{"empty list", schema.StringList{}, "[]"},
		{"string list", schema.StringList{"x", "y z"}, `["x", "y z"]`},
		{"nil", nil, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.FormatValue(tt.value); got != tt.want {
				t.Errorf("FormatValue() = %q, want %q", got, tt.want)
			}
		})
	}
}
