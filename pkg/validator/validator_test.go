package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Text string `json:"text" validate:"required,max=5"`
}

var messages = map[string]string{
	"text.required": "Text cannot be empty",
	"text.max":      "Text is too long",
}

func TestValidate_Messages(t *testing.T) {
	v := New()

	err := v.Validate(sample{})
	require.Error(t, err)
	assert.Equal(t, "Text cannot be empty", Message(err, messages, "invalid"))

	err = v.Validate(sample{Text: strings.Repeat("é", 6)})
	require.Error(t, err)
	assert.Equal(t, "Text is too long", Message(err, messages, "invalid"))

	// max counts characters, not bytes
	assert.NoError(t, v.Validate(sample{Text: strings.Repeat("é", 5)}))

	assert.Equal(t, "invalid", Message(assert.AnError, messages, "invalid"))
}
