package validation

import (
	"strings"
	"testing"

	"vocab-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Direction string `json:"direction" validate:"required,oneof=korean-to-sinhalese sinhalese-to-korean"`
	Answer    string `json:"answer" validate:"max=10"`
	Ignored   string `json:"-"`
}

func TestValidateStruct(t *testing.T) {
	v := NewValidator()

	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, v.ValidateStruct(sampleRequest{Direction: "korean-to-sinhalese", Answer: "බල්ලා"}))
	})

	t.Run("missing field uses json name", func(t *testing.T) {
		errs := v.ValidateStruct(sampleRequest{})
		require.Len(t, errs, 1)
		assert.Equal(t, "direction", errs[0].Field)
		assert.Equal(t, domain.CodeMissingField, errs[0].Code)
	})

	t.Run("oneof and max", func(t *testing.T) {
		errs := v.ValidateStruct(sampleRequest{Direction: "up", Answer: strings.Repeat("a", 11)})
		require.Len(t, errs, 2)
		assert.Equal(t, "direction", errs[0].Field)
		assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
		assert.Contains(t, errs[0].Message, "korean-to-sinhalese")
		assert.Equal(t, "answer", errs[1].Field)
		assert.Contains(t, errs[1].Message, "at most 10")
	})
}

func TestValidateSessionID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSessionID("01ARZ3NDEKTSV4RRFFQ69G5FAV"))

	errs := v.ValidateSessionID("")
	require.Len(t, errs, 1)
	assert.Equal(t, "session_id", errs[0].Field)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)

	errs = v.ValidateSessionID("not-a-session")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
	assert.Equal(t, "not-a-session", errs[0].Value)
}
