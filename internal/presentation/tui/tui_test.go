package tui

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/schemargs/pkg/diag"
)

func TestFormatDiagnostic_Plain(t *testing.T) {
	d := diag.Diagnostic{
		Stage:   diag.StageArgs,
		Code:    diag.CodeOrphanValue,
		Input:   "stray",
		Message: "value with no associated flag",
	}

	got := FormatDiagnostic(d, false)
	assert.Equal(t, `warning[orphan_value]: args: value with no associated flag (input "stray")`, got)
}

func TestFormatDiagnostic_ColorKeepsText(t *testing.T) {
	d := diag.Diagnostic{Stage: diag.StageSchema, Code: diag.CodeEmptySchemaToken, Message: "empty schema token"}

	got := FormatDiagnostic(d, true)
	assert.Contains(t, got, "warning[empty_schema_token]")
	assert.True(t, strings.HasSuffix(got, "schema: empty schema token"))
}

func TestIsTerminal_File(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.False(t, IsTerminal(nil))
	assert.Equal(t, 80, Width(f, 80))
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer(60)
	out, err := render("| Flag | Type |\n|---|---|\n| `-A` | bool |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "bool")
}
