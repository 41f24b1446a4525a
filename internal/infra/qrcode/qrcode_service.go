// Package qrcode renders printable PNG labels for order and sheet barcodes.
package qrcode

import (
	"strings"

	"courier/config"
	"courier/internal/domain/service"
	"courier/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	minSize     = 64
	maxSize     = 2048
)

//nolint:gochecknoglobals
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type labelRenderer struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService renders square labels of size pixels. Sizes outside
// [64, 2048] fall back to 256 and an unknown level falls back to M.
func NewQRCodeService(size int, level string) service.QRCodeService {
	if size < minSize || size > maxSize {
		size = defaultSize
	}

	recovery, ok := recoveryLevels[strings.ToUpper(strings.TrimSpace(level))]
	if !ok {
		recovery = qrcode.Medium
	}

	return &labelRenderer{size: size, level: recovery}
}

// NewQRCodeServiceFromConfig reads the qrcode section, tolerating its absence.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateLabel encodes barcode as-is so a scan yields the printed value.
func (r *labelRenderer) GenerateLabel(barcode string) ([]byte, error) {
	if strings.TrimSpace(barcode) == "" {
		return nil, errors.New("barcode is empty")
	}

	code, err := qrcode.New(barcode, r.level)
	if err != nil {
		return nil, errors.Wrapf(err, "encode barcode %q", barcode)
	}

	png, err := code.PNG(r.size)
	if err != nil {
		return nil, errors.Wrap(err, "render label")
	}

	return png, nil
}
