package qrcode

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"pinmap/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"Quartile error correction", "Q", qrcode.High},
		{"Highest error correction", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateShareQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{
		Share: &config.ShareConfig{QRSize: 256, ErrorCorrectionLevel: "M"},
	})

	qrBytes, err := svc.GenerateShareQR("https://pinmap.example.com/?place=eyJsYXQiOjF9")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestQRCodeService_GenerateShareQR_Errors(t *testing.T) {
	svc := newQRCodeService(256, "H")

	_, err := svc.GenerateShareQR("")
	assert.Error(t, err)

	// Beyond the capacity of a version 40 code at the highest recovery level.
	_, err = svc.GenerateShareQR("https://x/?place=" + strings.Repeat("A", 4000))
	assert.Error(t, err)
}
