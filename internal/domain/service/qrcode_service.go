package service

// QRCodeService defines the interface for printable label generation
type QRCodeService interface {
	// GenerateLabel encodes a barcode into a PNG QR code
	GenerateLabel(barcode string) ([]byte, error)
}
