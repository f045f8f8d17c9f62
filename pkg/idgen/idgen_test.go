package idgen

import (
	"strings"
	"testing"
	"time"
)

func TestOrderNumberFormat(t *testing.T) {
	g, err := NewGenerator(1)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	n := g.OrderNumber()
	prefix := "ORD-" + time.Now().Format("20060102") + "-"
	if !strings.HasPrefix(n, prefix) {
		t.Errorf("order number %q missing prefix %q", n, prefix)
	}
}

func TestNumbersAreUnique(t *testing.T) {
	g, err := NewGenerator(1)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := g.InvoiceNumber()
		if seen[n] {
			t.Fatalf("duplicate invoice number %q", n)
		}
		seen[n] = true
	}
}

func TestBadNodeID(t *testing.T) {
	if _, err := NewGenerator(-1); err == nil {
		t.Fatal("expected error for out-of-range node id")
	}
}
