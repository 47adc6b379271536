// Package orderlog appends a human-readable record of every placed order to a
// plain-text file.
package orderlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ShivChilu/chicken-shop/internal/domain"
	"github.com/ShivChilu/chicken-shop/internal/infra"
)

var rule = strings.Repeat("=", 80)

type FileLog struct {
	path string
	mu   sync.Mutex
}

var _ infra.OrderLogInterface = (*FileLog)(nil)

func New(path string) *FileLog {
	return &FileLog{path: path}
}

// Append writes one block for the order. The file is opened and closed on
// every call, so rotating or removing it needs no coordination.
func (l *FileLog) Append(_ context.Context, o *domain.Order) error {
	block := Format(o)

	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open order log: %w", err)
	}
	if _, err := f.WriteString(block); err != nil {
		f.Close()
		return fmt.Errorf("write order log: %w", err)
	}
	return f.Close()
}

func Format(o *domain.Order) string {
	items := make([]string, len(o.Items))
	for i, it := range o.Items {
		items[i] = fmt.Sprintf("%s x %d", it.Name, it.Quantity)
	}

	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "Order ID: %s\n", o.ID)
	fmt.Fprintf(&b, "Date: %s\n", o.CreatedAt)
	fmt.Fprintf(&b, "Customer: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n", o.Phone)
	fmt.Fprintf(&b, "Address: %s, Pincode: %s\n", o.Address, o.Pincode)
	fmt.Fprintf(&b, "Items: %s\n", strings.Join(items, ", "))
	fmt.Fprintf(&b, "Total: ₹%s\n", infra.Amount(o.Total))
	fmt.Fprintf(&b, "Payment: %s\n", o.PaymentMode)
	fmt.Fprintf(&b, "Status: %s\n", o.Status)
	b.WriteString(rule + "\n")
	return b.String()
}
