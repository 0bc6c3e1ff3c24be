package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeAnalyzer) AnalyzeImage(_ context.Context, _ []byte, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func TestModelDetector_DetectText(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		err     error
		want    string
		wantErr bool
	}{
		{name: "transcription", reply: "  이마트\n합계 5,000\n", want: "이마트\n합계 5,000"},
		{name: "code fence stripped", reply: "```\n이마트\n```", want: "이마트"},
		{name: "no text marker", reply: "NO_TEXT", want: ""},
		{name: "empty reply", reply: "  ", want: ""},
		{name: "client error", err: errors.New("quota exceeded"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeAnalyzer{reply: tt.reply, err: tt.err}
			got, err := NewModelDetector(ProviderGemini, client).DetectText(context.Background(), []byte("img"))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, client.prompt, noTextMarker)
		})
	}
}
