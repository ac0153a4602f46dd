package photos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/kfitness/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestEncodeDecode(t *testing.T) {
	uri := Encode(pngHeader)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg==", uri)

	mime, data, err := Decode(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, pngHeader, data)
}

func TestEncode_StripsCharset(t *testing.T) {
	assert.Equal(t, "data:text/plain;base64,aGk=", Encode([]byte("hi")))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantMime string
		wantData string
		wantErr  bool
	}{
		{"plain payload", "data:,x", "text/plain", "x", false},
		{"typed base64", "data:image/jpeg;base64,AAE=", "image/jpeg", "\x00\x01", false},
		{"no prefix", "image/png;base64,AA==", "", "", true},
		{"no comma", "data:image/png;base64", "", "", true},
		{"bad base64", "data:image/png;base64,***", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, data, err := Decode(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidDataURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMime, mime)
			assert.Equal(t, tt.wantData, string(data))
		})
	}
}

func TestEncodeFileAndDecodeToFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	require.NoError(t, os.WriteFile(src, pngHeader, 0o600))

	uri, err := EncodeFile(src)
	require.NoError(t, err)

	dst := filepath.Join(dir, "export", "out.png")
	require.NoError(t, DecodeToFile(uri, dst))
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, got)

	_, err = EncodeFile(filepath.Join(dir, "missing.png"))
	require.Error(t, err)
}
