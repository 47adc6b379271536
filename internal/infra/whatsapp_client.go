package infra

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ShivChilu/chicken-shop/internal/domain"
)

// NotifyTimeout bounds the single outbound gateway call.
const NotifyTimeout = 10 * time.Second

// WhatsAppClient sends order summaries through a CallMeBot-style HTTP gateway:
// one GET carrying phone, text and apikey as query parameters.
type WhatsAppClient struct {
	baseURL    string
	phone      string
	apiKey     string
	httpClient *http.Client
}

func NewWhatsAppClient(baseURL, phone, apiKey string, timeout time.Duration) *WhatsAppClient {
	return &WhatsAppClient{
		baseURL:    baseURL,
		phone:      phone,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *WhatsAppClient) NotifyOrder(ctx context.Context, order *domain.Order) error {
	q := url.Values{}
	q.Set("phone", c.phone)
	q.Set("text", OrderMessage(order))
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// OrderMessage renders the text sent to the shop owner for a new order.
func OrderMessage(o *domain.Order) string {
	var b strings.Builder
	b.WriteString("🛒 NEW ORDER RECEIVED!\n\n")
	fmt.Fprintf(&b, "👤 Customer: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "📞 Phone: %s\n", o.Phone)
	fmt.Fprintf(&b, "📍 Address: %s\n", o.Address)
	fmt.Fprintf(&b, "📮 Pincode: %s\n\n", o.Pincode)
	b.WriteString("📦 Items:\n")
	for i, it := range o.Items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "• %s x %d (%s) - ₹%s", it.Name, it.Quantity, it.Unit, Amount(it.Price*float64(it.Quantity)))
	}
	fmt.Fprintf(&b, "\n\n💰 Total: ₹%s\n", Amount(o.Total))
	fmt.Fprintf(&b, "💳 Payment: %s\n\n", o.PaymentMode)
	fmt.Fprintf(&b, "Order ID: %s", o.ID)
	return b.String()
}

// Amount formats a rupee value without trailing zeros: 560 -> "560",
// 12.5 -> "12.5".
func Amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
