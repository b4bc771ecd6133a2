package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/schemargs/pkg/schema"
)

// GenerateMarkdown produces a Markdown table of the slots, one row per flag
// in identifier order:
//
//	| Flag | Type | Value |
func GenerateMarkdown(slots schema.Slots) string {
	var sb strings.Builder
	sb.WriteString("| Flag | Type | Value |\n")
	sb.WriteString("|------|------|-------|\n")

	for _, id := range slots.IDs() {
		v := slots[id]
		fmt.Fprintf(&sb, "| `-%s` | %s | %s |\n", string(id), escape(v.Kind().String()), escape(FormatValue(v)))
	}

	return sb.String()
}

// FormatValue renders a payload for humans. Lists are comma separated inside
// brackets and strings are quoted so empty values stay visible.
func FormatValue(v schema.Value) string {
	switch tv := v.(type) {
	case schema.Bool:
		return strconv.FormatBool(bool(tv))
	case schema.Int:
		return strconv.FormatInt(int64(tv), 10)
	case schema.Float:
		return strconv.FormatFloat(float64(tv), 'g', -1, 64)
	case schema.String:
		return strconv.Quote(string(tv))
	case schema.IntList:
		items := make([]string, len(tv))
		for i, n := range tv {
			items[i] = strconv.FormatInt(n, 10)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case schema.FloatList:
		items := make([]string, len(tv))
		for i, f := range tv {
			items[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case schema.StringList:
		items := make([]string, len(tv))
		for i, s := range tv {
			items[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return "?"
	}
}

// escape keeps cell content from breaking the table layout.
func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
