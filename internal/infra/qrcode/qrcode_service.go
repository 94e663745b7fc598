package qrcode

import (
	"strings"

	"pinmap/config"
	"pinmap/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service from the share configuration.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	return newQRCodeService(cfg.Share.QRSize, cfg.Share.ErrorCorrectionLevel)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

// parseRecoveryLevel maps the L/M/Q/H letters to go-qrcode levels; anything else is M.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateShareQR encodes the share URL as a PNG QR code.
func (s *qrcodeService) GenerateShareQR(shareURL string) ([]byte, error) {
	if shareURL == "" {
		return nil, errors.New("share URL is empty")
	}

	qrCode, err := qrcode.New(shareURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
