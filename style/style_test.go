package style

import (
	"os"
	"strings"
	"testing"
)

func TestDisabledReturnsPlainText(t *testing.T) {
	os.Unsetenv("NO_COLOR")

	Init(false)

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"Error", Error},
		{"Hint", Hint},
		{"Header", Header},
		{"Muted", Muted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "test message"
			output := tt.fn(input)

			if output != input {
				t.Errorf("%s() with disabled styling: got %q, want %q", tt.name, output, input)
			}
			if strings.Contains(output, "\x1b[") {
				t.Errorf("%s() with disabled styling contains ANSI codes: %q", tt.name, output)
			}
		})
	}
}

func TestEnabledReturnsStyledText(t *testing.T) {
	os.Unsetenv("NO_COLOR")

	Init(true)

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"Error", Error},
		{"Hint", Hint},
		{"Header", Header},
		{"Muted", Muted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "test message"
			output := tt.fn(input)

			if !strings.Contains(output, input) {
				t.Errorf("%s() output %q does not contain input %q", tt.name, output, input)
			}
			if !strings.Contains(output, "\x1b[") {
				t.Errorf("%s() with enabled styling should contain ANSI codes: %q", tt.name, output)
			}
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	Init(true) // Try to enable, but NO_COLOR should override

	if Enabled() {
		t.Error("Enabled() should return false when NO_COLOR is set")
	}

	input := "test"
	if output := Error(input); output != input {
		t.Errorf("Error() should return plain text when NO_COLOR is set: got %q, want %q", output, input)
	}
}

func TestEnabledReturnsCorrectState(t *testing.T) {
	os.Unsetenv("NO_COLOR")

	Init(false)
	if Enabled() {
		t.Error("Enabled() should return false after Init(false)")
	}

	Init(true)
	if !Enabled() {
		t.Error("Enabled() should return true after Init(true)")
	}
}
