package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tokolaju/katalog/app/utils/format"
)

// CheckoutService turns the cart into a WhatsApp order message. It is a
// consumer of the cart engine's public contract: all prices come from
// EffectiveUnitPrice so the bulk tiers in the message always match what
// the cart view showed.
type CheckoutService struct {
	cart      *CartService
	storeName string
	waNumber  string
}

func NewCheckoutService(cart *CartService, storeName, waNumber string) *CheckoutService {
	return &CheckoutService{
		cart:      cart,
		storeName: storeName,
		waNumber:  waNumber,
	}
}

// ComposeOrderMessage formats the cart as one block per subcategory, in
// cart insertion order, with the grand total appended.
func (s *CheckoutService) ComposeOrderMessage() string {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return ""
	}

	var sectionOrder []string
	grouped := make(map[string][]string)

	for _, line := range lines {
		price := s.cart.EffectiveUnitPrice(line)
		lineTotal := price.Mul(decimal.NewFromInt(int64(line.Quantity)))

		section := line.SubcategoryLabel
		if _, ok := grouped[section]; !ok {
			sectionOrder = append(sectionOrder, section)
		}
		grouped[section] = append(grouped[section], fmt.Sprintf(
			"- %s x%d @ %s = %s",
			line.Label(), line.Quantity, format.Rupiah(price), format.Rupiah(lineTotal),
		))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Pesanan %s\n", s.storeName)
	for _, section := range sectionOrder {
		b.WriteString("\n*")
		b.WriteString(section)
		b.WriteString("*\n")
		b.WriteString(strings.Join(grouped[section], "\n"))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nTotal: %s", format.Rupiah(s.cart.Total()))

	return b.String()
}

// WhatsAppLink is the wa.me deep link carrying the order message. Empty
// when the cart is empty.
func (s *CheckoutService) WhatsAppLink() string {
	message := s.ComposeOrderMessage()
	if message == "" {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.waNumber, url.QueryEscape(message))
}
