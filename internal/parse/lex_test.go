package parse

import (
	"testing"

	"github.com/napalu/qcli/errs"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "command chain",
			input: "print tree --size 3",
			want:  []string{"print", "tree", "--size", "3"},
		},
		{
			name:  "quoted arguments",
			input: `message echo "hello world"`,
			want:  []string{"message", "echo", "hello world"},
		},
		{
			name:  "multiple quotes",
			input: `echo "first quote" 'second quote'`,
			want:  []string{"echo", "first quote", "second quote"},
		},
		{
			name:  "escaped quotes",
			input: `echo \"hello\"`,
			want:  []string{"echo", `"hello"`},
		},
		{
			name:  "multiple spaces",
			input: "cmd   arg1    arg2",
			want:  []string{"cmd", "arg1", "arg2"},
		},
		{
			name:  "option with inline value",
			input: "--season='late autumn'",
			want:  []string{"--season=late autumn"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "only spaces",
			input: "   ",
			want:  []string{},
		},
		{
			name:    "unterminated quote",
			input:   `echo "oops`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrSplit)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
