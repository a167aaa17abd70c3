package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sifa-tools/gbu/internal/cmdcommon"
	"github.com/sifa-tools/gbu/internal/serialize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRunUsage(t *testing.T) {
	assert.Equal(t, cmdcommon.ExitUsage, run(nil))
	assert.Equal(t, cmdcommon.ExitUsage, run([]string{"frobnicate"}))
	assert.Equal(t, cmdcommon.ExitOK, run([]string{"help"}))
}

func TestNewCreatesSeededAssessment(t *testing.T) {
	t.Setenv(cmdcommon.EnvCompany, "Seaside Hotel GmbH")
	out := filepath.Join(t.TempDir(), "assessment.json")

	code := run([]string{"new", "-industry", "bakery", "-location", "Kiel", "-out", out})
	require.Equal(t, cmdcommon.ExitOK, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	a, err := serialize.Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, "Seaside Hotel GmbH", a.Company)
	assert.Equal(t, "Kiel", a.Location)
	assert.Equal(t, "bakery", a.Industry)
	assert.NotEmpty(t, a.Hazards)
}

func TestNewNoTemplate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.json")

	code := run([]string{"new", "-no-template", "-industry", "catering", "-out", out})
	require.Equal(t, cmdcommon.ExitOK, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	a, err := serialize.Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, "catering", a.Industry)
	assert.Empty(t, a.Hazards)
}

func TestApplyMergesSecondIndustry(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "assessment.json")

	require.Equal(t, cmdcommon.ExitOK, run([]string{"new", "-industry", "laundry", "-out", file}))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	before, err := serialize.Unmarshal(data)
	require.NoError(t, err)

	require.Equal(t, cmdcommon.ExitOK, run([]string{"apply", "-in", file, "-industry", "bakery"}))

	data, err = os.ReadFile(file)
	require.NoError(t, err)
	after, err := serialize.Unmarshal(data)
	require.NoError(t, err)

	assert.Greater(t, len(after.Hazards), len(before.Hazards))
	// apply without -replace keeps the assessment's own industry
	assert.Equal(t, "laundry", after.Industry)
}

func TestExportWritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "assessment.json")
	out := filepath.Join(dir, "risk.xlsx")

	require.Equal(t, cmdcommon.ExitOK, run([]string{"new", "-industry", "hospitality", "-out", in}))
	require.Equal(t, cmdcommon.ExitOK, run([]string{"export", "-in", in, "-out", out}))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck // test cleanup

	assert.Contains(t, f.GetSheetList(), "10_Hazards")
}

func TestExportMissingInput(t *testing.T) {
	assert.Equal(t, cmdcommon.ExitError, run([]string{"export"}))
	assert.Equal(t, cmdcommon.ExitError, run([]string{"export", "-in", filepath.Join(t.TempDir(), "absent.json")}))
}
