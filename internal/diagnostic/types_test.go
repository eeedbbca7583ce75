package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_ErrorCombines(t *testing.T) {
	var d Diagnostics
	d.AddError(CodeMissingImport, "example.com/a", "could not import example.com/missing")
	d.AddError(CodeLoadFailed, "example.com/b", "expected declaration")

	require.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "example.com/a: [missing-import]")
	assert.Contains(t, err.Error(), "example.com/b: [load-failed]")
}

func TestDiagnostics_WarningsAreNotErrors(t *testing.T) {
	var d Diagnostics
	d.AddWarning(CodeMissingImport, "example.com/a", "skipped")

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())
	assert.Len(t, d.Warnings, 1)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError(CodeLoadFailed, "example.com/a", "broken")
	b.AddWarning(CodeMissingImport, "example.com/b", "skipped")

	a.Merge(b)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Severity: SeverityError, Code: CodeLoadFailed, PkgPath: "example.com/a", Message: "broken"}
	assert.Equal(t, "example.com/a: [load-failed] broken", d.String())

	bare := Diagnostic{Message: "broken"}
	assert.Equal(t, "broken", bare.String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
