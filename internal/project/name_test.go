package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextforge-dev/nextforge/internal/errors"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode string
	}{
		{name: "simple name", input: "my-app"},
		{name: "single word", input: "blog"},
		{name: "digits", input: "app2"},
		{name: "digits only", input: "42"},
		{name: "many hyphens", input: "my-cool-site-v2"},
		{name: "empty", input: "", wantCode: "E101"},
		{name: "uppercase", input: "My-App", wantCode: "E102"},
		{name: "space", input: "My App", wantCode: "E102"},
		{name: "underscore", input: "my_app", wantCode: "E102"},
		{name: "dot", input: "my.app", wantCode: "E102"},
		{name: "slash", input: "my/app", wantCode: "E102"},
		{name: "unicode", input: "café", wantCode: "E102"},
		{name: "leading whitespace", input: " my-app", wantCode: "E102"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var fe *errors.ForgeError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantCode, fe.Code)
		})
	}
}

func TestValidateNameSuggestsFix(t *testing.T) {
	err := ValidateName("My App")
	require.Error(t, err)

	var fe *errors.ForgeError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Suggestion, `"my-app"`)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "my-app", want: "My App"},
		{input: "blog", want: "Blog"},
		{input: "a-b-c", want: "A B C"},
		{input: "my--app", want: "My App"},
		{input: "app42", want: "App42"},
		{input: "next-site", want: "Next Site"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.input))
		})
	}
}
