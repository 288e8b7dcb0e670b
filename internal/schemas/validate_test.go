package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-site/internal/resume"
)

func TestValidateDocument_DefaultPasses(t *testing.T) {
	data, err := json.Marshal(resume.DefaultDocument())
	require.NoError(t, err)

	assert.NoError(t, ValidateDocument(data))
}

func TestValidateDocument_Invalid(t *testing.T) {
	base := resume.DefaultDocument()

	tests := []struct {
		name   string
		modify func(m map[string]any)
		field  string
	}{
		{
			name:   "missing intro video url",
			modify: func(m map[string]any) { delete(m, "introVideoUrl") },
			field:  "(root)",
		},
		{
			name:   "empty intro video url",
			modify: func(m map[string]any) { m["introVideoUrl"] = "" },
			field:  "introVideoUrl",
		},
		{
			name:   "summary wrong type",
			modify: func(m map[string]any) { m["summary"] = 42 },
			field:  "summary",
		},
		{
			name:   "unknown field",
			modify: func(m map[string]any) { m["extra"] = true },
			field:  "(root)",
		},
		{
			name: "experience entry without id",
			modify: func(m map[string]any) {
				m["experience"] = []any{map[string]any{
					"title": "t", "company": "c", "logo": "l",
					"period": "p", "duration": "d", "bullets": []any{},
				}}
			},
			field: "experience.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(base)
			require.NoError(t, err)

			var m map[string]any
			require.NoError(t, json.Unmarshal(data, &m))
			tt.modify(m)

			data, err = json.Marshal(m)
			require.NoError(t, err)

			err = ValidateDocument(data)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.field, validationErr.Errors[0].Field)
		})
	}
}

func TestValidateDocument_NotJSON(t *testing.T) {
	err := ValidateDocument([]byte("not json"))
	assert.Error(t, err)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "summary", Message: "Invalid type"},
	}}
	assert.Contains(t, err.Error(), "summary")
	assert.Contains(t, err.Error(), "Invalid type")
}
