package catalog

import (
	"fmt"
	"net/url"

	"techmart/internal/model"
)

// WhatsAppLink builds the wa.me deep link the storefront hands purchase
// intent to. There is no checkout; the prefilled message is the whole
// handoff.
func WhatsAppLink(phone string, p model.Product) string {
	message := fmt.Sprintf(
		"Hi! I'm interested in the %s (Rs. %.2f). Can you provide more details?",
		p.Name, p.Price,
	)
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}
