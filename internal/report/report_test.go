package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jzorko/emso-scan/internal/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestWriteJSONEmptyBatch(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "output.json")

	require.NoError(t, WriteJSON(nil, outputFile))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestWriteJSONRecords(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "output.json")

	records := []document.Record{
		{
			FileName:  "odločba.pdf",
			Reference: strPtr("AB-123/2024"),
			EMSO:      strPtr("0101006500006"),
			EMSOValid: true,
		},
		{
			FileName: "blank.pdf",
		},
	}

	require.NoError(t, WriteJSON(records, outputFile))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	// Non-ASCII characters stay literal.
	assert.Contains(t, string(data), "odločba.pdf")
	assert.NotContains(t, string(data), `\u`)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "odločba.pdf", decoded[0]["fileName"])
	assert.Equal(t, "AB-123/2024", decoded[0]["stevilkaDokumenta"])
	assert.Equal(t, "0101006500006", decoded[0]["emso"])
	assert.Equal(t, true, decoded[0]["emsoIsValid"])

	assert.Equal(t, "blank.pdf", decoded[1]["fileName"])
	assert.Nil(t, decoded[1]["stevilkaDokumenta"])
	assert.Nil(t, decoded[1]["emso"])
	assert.Equal(t, false, decoded[1]["emsoIsValid"])
}

func TestWriteJSONCreatesParentDirectories(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "nested", "dir", "output.json")
	require.NoError(t, WriteJSON([]document.Record{}, outputFile))
	_, err := os.Stat(outputFile)
	assert.NoError(t, err)
}

func TestWriteCSVRecords(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "output.csv")

	records := []document.Record{
		{
			FileName:  "doc.pdf",
			Reference: strPtr("X-1"),
			EMSO:      strPtr("1234567890123"),
			EMSOValid: false,
		},
	}

	require.NoError(t, WriteCSV(records, outputFile))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "fileName,stevilkaDokumenta,emso,emsoIsValid", lines[0])
	assert.Equal(t, "doc.pdf,X-1,1234567890123,false", lines[1])
}

func TestWriteUnsupportedFormat(t *testing.T) {
	err := Write(nil, filepath.Join(t.TempDir(), "out.xml"), "xml")
	assert.Error(t, err)
}

func TestWriteDispatch(t *testing.T) {
	tempDir := t.TempDir()

	require.NoError(t, Write(nil, filepath.Join(tempDir, "o.json"), "json"))
	require.NoError(t, Write(nil, filepath.Join(tempDir, "o.csv"), "csv"))
}
