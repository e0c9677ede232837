package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaJSON_AllEmbedded(t *testing.T) {
	for _, name := range []string{QueriesSchema, SearchResultsSchema, JobRecordSchema} {
		t.Run(name, func(t *testing.T) {
			raw, err := SchemaJSON(name)
			require.NoError(t, err)

			var v map[string]any
			require.NoError(t, json.Unmarshal([]byte(raw), &v))
			assert.Contains(t, v, "$schema")
			assert.Contains(t, v, "type")
		})
	}
}

func TestSchemaJSON_Unknown(t *testing.T) {
	_, err := SchemaJSON("unknown.schema.json")
	assert.Error(t, err)
}

func TestValidateBytes_Queries(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{"valid list", `["ml engineer egypt", "intitle:\"machine learning\" cairo"]`, false},
		{"empty list allowed", `[]`, false},
		{"empty query rejected", `["ok", ""]`, true},
		{"wrong shape", `{"queries": ["a"]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBytes(QueriesSchema, []byte(tt.document))
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBytes_SearchResults(t *testing.T) {
	valid := `[{"query": "q", "url": "https://x.com", "title": "Job", "snippet": ""}]`
	assert.NoError(t, ValidateBytes(SearchResultsSchema, []byte(valid)))

	missingTitle := `[{"query": "q", "url": "https://x.com"}]`
	err := ValidateBytes(SearchResultsSchema, []byte(missingTitle))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateJobRecords(t *testing.T) {
	valid := `[{
		"title": "ML Engineer",
		"company": "Acme",
		"location": "Cairo",
		"salary": "",
		"description": "Train models",
		"apply_url": "https://acme.com/apply",
		"source_url": "https://acme.com/jobs/1"
	}]`
	assert.NoError(t, ValidateJobRecords([]byte(valid)))

	t.Run("missing company rejected", func(t *testing.T) {
		doc := `[{
			"title": "ML Engineer",
			"location": "Cairo",
			"description": "Train models",
			"apply_url": "https://acme.com/apply",
			"source_url": "https://acme.com/jobs/1"
		}]`
		assert.Error(t, ValidateJobRecords([]byte(doc)))
	})

	t.Run("salary optional", func(t *testing.T) {
		doc := `[{
			"title": "ML Engineer",
			"company": "Acme",
			"location": "Cairo",
			"description": "Train models",
			"apply_url": "https://acme.com/apply",
			"source_url": "https://acme.com/jobs/1"
		}]`
		assert.NoError(t, ValidateJobRecords([]byte(doc)))
	})

	t.Run("empty array valid", func(t *testing.T) {
		assert.NoError(t, ValidateJobRecords([]byte(`[]`)))
	})

	t.Run("enriched fields accepted", func(t *testing.T) {
		doc := `[{
			"title": "ML Engineer",
			"company": "Acme",
			"location": "Cairo",
			"description": "Train models",
			"apply_url": "https://acme.com/apply",
			"source_url": "https://acme.com/jobs/1",
			"job_posting_date": "2025-02-14",
			"job_specs": [{"specification_name": "Experience", "specification_value": "3+ years"}],
			"recommendation_rank": 4,
			"recommendation_notes": ["Strong match"]
		}]`
		assert.NoError(t, ValidateJobRecords([]byte(doc)))
	})

	t.Run("spec without a value rejected", func(t *testing.T) {
		doc := `[{
			"title": "ML Engineer",
			"company": "Acme",
			"location": "Cairo",
			"description": "Train models",
			"apply_url": "https://acme.com/apply",
			"source_url": "https://acme.com/jobs/1",
			"job_specs": [{"specification_name": "Experience"}]
		}]`
		assert.Error(t, ValidateJobRecords([]byte(doc)))
	})

	t.Run("rank outside range rejected", func(t *testing.T) {
		doc := `[{
			"title": "ML Engineer",
			"company": "Acme",
			"location": "Cairo",
			"description": "Train models",
			"apply_url": "https://acme.com/apply",
			"source_url": "https://acme.com/jobs/1",
			"recommendation_rank": 9
		}]`
		assert.Error(t, ValidateJobRecords([]byte(doc)))
	})
}
