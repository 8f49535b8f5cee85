// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputSchemaAcceptsContractRecords(t *testing.T) {
	valid := []string{
		`{"text":"John Smith\nEngineer","name":"John Smith"}`,
		`{"text":""}`,
		`{"error":"File does not exist."}`,
		`{"error":"Failed to read PDF: malformed header"}`,
	}
	for _, rec := range valid {
		assert.NoError(t, ValidateRecord(OutputSchema(), []byte(rec)), "record %s", rec)
	}
}

func TestOutputSchemaRejectsMalformedRecords(t *testing.T) {
	invalid := []string{
		`{}`,
		`{"text":42}`,
		`{"name":"John Smith"}`,
		`{"text":"x","name":""}`,
		`{"text":"x","error":"both"}`,
		`{"unknown":"field"}`,
		`[]`,
		`"just a string"`,
	}
	for _, rec := range invalid {
		assert.Error(t, ValidateRecord(OutputSchema(), []byte(rec)), "record %s", rec)
	}
}

func TestValidateRecordRejectsInvalidJSON(t *testing.T) {
	err := ValidateRecord(OutputSchema(), []byte(`{"text":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal record")
}
