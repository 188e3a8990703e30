package errors

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "usage error",
			code:    "E102",
			wantMsg: "Invalid project name",
			wantCat: CategoryUsage,
		},
		{
			name:    "preflight error",
			code:    "E110",
			wantMsg: "Node.js not found",
			wantCat: CategoryPreflight,
		},
		{
			name:    "setup error",
			code:    "E120",
			wantMsg: "Project scaffolding failed",
			wantCat: CategorySetup,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategorySetup, "step %q failed", "create-app")
	if err.Message != `step "create-app" failed` {
		t.Errorf("Message = %q, want %q", err.Message, `step "create-app" failed`)
	}
	if err.Category != CategorySetup {
		t.Errorf("Category = %q, want %q", err.Category, CategorySetup)
	}
}

func TestForgeError_Error(t *testing.T) {
	err := New("E102")
	got := err.Error()
	want := "E102: Invalid project name"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	err2 := &ForgeError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestForgeError_WithStep(t *testing.T) {
	err := New("E120").WithStep("create-app")
	if err.Step != "create-app" {
		t.Errorf("Step = %q, want %q", err.Step, "create-app")
	}
}

func TestForgeError_WithSuggestion(t *testing.T) {
	err := New("E102").WithSuggestion("Use lowercase letters, digits, and hyphens")
	if err.Suggestion != "Use lowercase letters, digits, and hyphens" {
		t.Errorf("Suggestion = %q, want %q", err.Suggestion, "Use lowercase letters, digits, and hyphens")
	}
}

func TestForgeError_WithDetail(t *testing.T) {
	err := New("E102").WithDetail("Custom detail")
	if err.Detail != "Custom detail" {
		t.Errorf("Detail = %q, want %q", err.Detail, "Custom detail")
	}

	err = New("E102").WithDetailf("got %q", "My App")
	if err.Detail != `got "My App"` {
		t.Errorf("Detail = %q, want %q", err.Detail, `got "My App"`)
	}
}

func TestForgeError_Wrap(t *testing.T) {
	inner := New("E141")
	outer := New("E120").Wrap(inner)

	if outer.Wrapped != inner {
		t.Error("Wrapped error mismatch")
	}
	if outer.Unwrap() != inner {
		t.Error("Unwrap() should return wrapped error")
	}
}

func TestFromError(t *testing.T) {
	// nil error
	if FromError(nil, "E120") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	// Already ForgeError
	fe := New("E120")
	if FromError(fe, "E121") != fe {
		t.Error("FromError should return ForgeError as-is")
	}

	// Standard error
	stdErr := &testError{msg: "test error"}
	result := FromError(stdErr, "E120")
	if result.Wrapped != stdErr {
		t.Error("Standard error should be wrapped")
	}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E120").
		WithStep("create-app").
		WithSuggestion("Check your network connection and re-run the command").
		Wrap(&testError{msg: "exit status 1"})

	formatted := err.Format()

	// Check that key components are present
	if !strings.Contains(formatted, "E120") {
		t.Error("Format should contain error code")
	}
	if !strings.Contains(formatted, "Project scaffolding failed") {
		t.Error("Format should contain error message")
	}
	if !strings.Contains(formatted, "Step: create-app") {
		t.Error("Format should contain step name")
	}
	if !strings.Contains(formatted, "Cause: exit status 1") {
		t.Error("Format should contain wrapped cause")
	}
	if !strings.Contains(formatted, "Hint:") {
		t.Error("Format should contain hint")
	}
	if !strings.Contains(formatted, "Learn more:") {
		t.Error("Format should contain doc URL")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E120").WithStep("create-app")
	compact := err.FormatCompact()

	want := "create-app: E120: Project scaffolding failed"
	if compact != want {
		t.Errorf("FormatCompact() = %q, want %q", compact, want)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E120").WithStep("create-app")
	json := err.FormatJSON()

	if !strings.Contains(json, `"code":"E120"`) {
		t.Error("JSON should contain code")
	}
	if !strings.Contains(json, `"category":"setup"`) {
		t.Error("JSON should contain category")
	}
	if !strings.Contains(json, `"message":"Project scaffolding failed"`) {
		t.Error("JSON should contain message")
	}
	if !strings.Contains(json, `"step":"create-app"`) {
		t.Error("JSON should contain step")
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 {
		t.Error("GetAllCodes() should return codes")
	}

	// Check that E102 is in the list
	found := false
	for _, code := range codes {
		if code == "E102" {
			found = true
			break
		}
	}
	if !found {
		t.Error("E102 should be in the codes list")
	}
}

func TestGetTemplate(t *testing.T) {
	template, ok := GetTemplate("E102")
	if !ok {
		t.Error("E102 should exist")
	}
	if template.Message != "Invalid project name" {
		t.Error("Template message mismatch")
	}

	_, ok = GetTemplate("E999")
	if ok {
		t.Error("E999 should not exist")
	}
}

func TestRegister(t *testing.T) {
	Register("E999", ErrorTemplate{
		Category: CategorySetup,
		Message:  "Custom test error",
		Detail:   "This is a test error",
		DocURL:   "https://test.dev/E999",
	})

	err := New("E999")
	if err.Message != "Custom test error" {
		t.Errorf("Message = %q, want %q", err.Message, "Custom test error")
	}

	// Cleanup
	delete(registry, "E999")
}

func TestWrapText(t *testing.T) {
	// Test short text that doesn't need wrapping
	got := wrapText("short text", 100)
	if len(got) != 1 || got[0] != "short text" {
		t.Errorf("wrapText short text: got %v", got)
	}

	// Test text that needs wrapping
	got = wrapText("this is a longer text that should be wrapped", 20)
	if len(got) != 3 {
		t.Errorf("wrapText long text: expected 3 lines, got %d: %v", len(got), got)
	}

	// Test empty string returns empty/nil
	got = wrapText("", 10)
	if len(got) != 0 {
		t.Errorf("wrapText empty: expected empty, got %v", got)
	}
}

func TestColorFunctions(t *testing.T) {
	// With colors enabled
	EnableColors()
	if !strings.Contains(red("test"), "\033[31m") {
		t.Error("red should contain ANSI code when colors enabled")
	}

	// With colors disabled
	DisableColors()
	if strings.Contains(red("test"), "\033[") {
		t.Error("red should not contain ANSI code when colors disabled")
	}
	EnableColors()
}
