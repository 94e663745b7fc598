package service

// QRCodeService renders share links as QR codes
type QRCodeService interface {
	// GenerateShareQR returns a PNG encoding of the share URL
	GenerateShareQR(shareURL string) ([]byte, error)
}
