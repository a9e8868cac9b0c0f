package services

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	MenuQR(restaurantID uint) ([]byte, error)
}

// DefaultQRGenerator encodes the public menu URL of a restaurant as a PNG,
// for table cards and storefront stickers.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) MenuQR(restaurantID uint) ([]byte, error) {
	link := fmt.Sprintf("%s/restaurants/%d", g.BaseURL, restaurantID)
	return qrcode.Encode(link, qrcode.Medium, 256)
}
