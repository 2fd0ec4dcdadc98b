package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RavuAlHemio/cco7/internal/cco7/config"
)

func TestReadInputs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  []string
	}{
		{
			name: "引数のみ",
			args: []string{"02050D480809", "0A41"},
			want: []string{"02050D480809", "0A41"},
		},
		{
			name:  "標準入力",
			args:  []string{"-"},
			stdin: "02050D480809\r\n\n070C285F4D06\n",
			want:  []string{"02050D480809", "070C285F4D06"},
		},
		{
			name:  "引数と標準入力の混在",
			args:  []string{"030752180500", "-"},
			stdin: "02050D480809",
			want:  []string{"030752180500", "02050D480809"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readInputs(tt.args, strings.NewReader(tt.stdin))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// runCommand はグローバルな設定を初期化してからコマンドを実行します
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	*cfg = *config.Default()
	t.Cleanup(func() { *cfg = *config.Default() })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	out, err := runCommand(t, "decode", "02050D480809")
	require.NoError(t, err)
	assert.Equal(t, "02050D480809\tcisco\n", out)

	out, err = runCommand(t, "encode", "--salt", "3", "--verify", "cisco")
	require.NoError(t, err)
	assert.Equal(t, "cisco\t030752180500\n", out)

	_, err = runCommand(t, "encode", "--salt", "100", "cisco")
	assert.ErrorIs(t, err, config.ErrInvalidSalt)

	out, err = runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cco7 version "+config.Version+"\n", out)
}
