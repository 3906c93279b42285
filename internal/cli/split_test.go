package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/service"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"list", []string{"list"}},
		{"  update   1\tdone ", []string{"update", "1", "done"}},
		{`add "Buy groceries"`, []string{"add", "Buy groceries"}},
		{`add 'Call mom' today`, []string{"add", "Call mom", "today"}},
		{`add "it's fine"`, []string{"add", "it's fine"}},
		{`add 'say "hi"'`, []string{"add", `say "hi"`}},
		{`add "a \"quoted\" word"`, []string{"add", `a "quoted" word`}},
		{`add pre"fix"ed`, []string{"add", "prefixed"}},
		{`add ""`, []string{"add", ""}},
		{`add café`, []string{"add", "café"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := SplitLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitLine_Unterminated(t *testing.T) {
	for _, line := range []string{`add "Buy milk`, `add 'x`, `add "x\`} {
		_, err := SplitLine(line)
		require.Error(t, err, line)
		assert.True(t, errors.Is(err, service.ErrInvalidCommand), line)
	}
}
