package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// QRGenerator produces a scannable PNG that links a printed receipt back
// to its order.
type QRGenerator interface {
	Generate(orderID uuid.UUID) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID uuid.UUID) ([]byte, error) {
	data := fmt.Sprintf("%s/orders/%s", g.BaseURL, orderID)
	return qrcode.Encode(data, qrcode.Medium, 256)
}
