package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantError   bool
		errorString string
	}{
		{
			name:        "Missing --job flag",
			args:        []string{"compare", "--text", "some resume text"},
			wantError:   true,
			errorString: "required",
		},
		{
			name:        "Missing input",
			args:        []string{"compare", "--job", "software engineer"},
			wantError:   true,
			errorString: "either --file or --text must be provided",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorString != "" {
					assert.Contains(t, string(output), tt.errorString)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
