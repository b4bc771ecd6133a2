package diag

import "fmt"

// Stage identifies which construction phase emitted a diagnostic.
type Stage string

const (
	StageSchema Stage = "schema"
	StageArgs   Stage = "args"
)

// Code classifies a diagnostic so callers can react without parsing text.
type Code string

const (
	CodeEmptySchemaToken   Code = "empty_schema_token"
	CodeInvalidSchemaToken Code = "invalid_schema_token"
	CodeDuplicateFlag      Code = "duplicate_flag"
	CodeOrphanValue        Code = "orphan_value"
	CodeUnknownFlag        Code = "unknown_flag"
	CodeWrongType          Code = "wrong_type"
	CodeUnexpectedValue    Code = "unexpected_value"
	CodeUnparseableValue   Code = "unparseable_value"
	CodeEmptyList          Code = "empty_list"
	CodeListItemDropped    Code = "list_item_dropped"
)

// Diagnostic is a single non-fatal report about malformed input.
type Diagnostic struct {
	Stage   Stage  `json:"stage" yaml:"stage"`
	Code    Code   `json:"code" yaml:"code"`
	Flag    string `json:"flag,omitempty" yaml:"flag,omitempty"`   // Flag identifier, when one is involved
	Input   string `json:"input,omitempty" yaml:"input,omitempty"` // Raw token or value that triggered it
	Message string `json:"message" yaml:"message"`
}

func (d Diagnostic) Error() string {
	switch {
	case d.Flag != "" && d.Input != "":
		return fmt.Sprintf("%s: %s (flag %q, input %q)", d.Stage, d.Message, d.Flag, d.Input)
	case d.Flag != "":
		return fmt.Sprintf("%s: %s (flag %q)", d.Stage, d.Message, d.Flag)
	case d.Input != "":
		return fmt.Sprintf("%s: %s (input %q)", d.Stage, d.Message, d.Input)
	default:
		return fmt.Sprintf("%s: %s", d.Stage, d.Message)
	}
}

// String is an alias of Error so diagnostics print naturally.
func (d Diagnostic) String() string { return d.Error() }
