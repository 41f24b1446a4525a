package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"courier/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		level     string
		wantSize  int
		wantLevel qrcode.RecoveryLevel
	}{
		{name: "low", size: 128, level: "L", wantSize: 128, wantLevel: qrcode.Low},
		{name: "quartile lower case", size: 256, level: " q ", wantSize: 256, wantLevel: qrcode.High},
		{name: "highest", size: 512, level: "H", wantSize: 512, wantLevel: qrcode.Highest},
		{name: "unknown level", size: 256, level: "X", wantSize: 256, wantLevel: qrcode.Medium},
		{name: "zero size", size: 0, level: "M", wantSize: defaultSize, wantLevel: qrcode.Medium},
		{name: "oversized", size: 10000, level: "M", wantSize: defaultSize, wantLevel: qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := NewQRCodeService(tt.size, tt.level).(*labelRenderer)
			require.True(t, ok)
			assert.Equal(t, tt.wantSize, r.size)
			assert.Equal(t, tt.wantLevel, r.level)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	r := NewQRCodeServiceFromConfig(&config.Config{}).(*labelRenderer)
	assert.Equal(t, defaultSize, r.size)

	r = NewQRCodeServiceFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 300, ErrorCorrectionLevel: "H"}}).(*labelRenderer)
	assert.Equal(t, 300, r.size)
	assert.Equal(t, qrcode.Highest, r.level)
}

func TestGenerateLabel(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		label, err := NewQRCodeService(size, "M").GenerateLabel("DS-20240101-ABCDEF12")
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(label))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestGenerateLabel_Blank(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	for _, barcode := range []string{"", "   "} {
		_, err := svc.GenerateLabel(barcode)
		assert.Error(t, err)
	}
}
