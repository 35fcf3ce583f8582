package whatsapp

import "testing"

func TestLinkOrder(t *testing.T) {
	link := NewLink("", "14424474116")

	got := link.Order("hola mundo")
	want := "https://wa.me/14424474116?text=hola%20mundo"

	if got != want {
		t.Fatalf("Order = %q, want %q", got, want)
	}
}

func TestLinkOrder_TrimsBaseURL(t *testing.T) {
	link := NewLink("https://example.test/", "123")

	got := link.Order("x")
	want := "https://example.test/123?text=x"

	if got != want {
		t.Fatalf("Order = %q, want %q", got, want)
	}
}

func TestLinkOrder_EncodesNewlines(t *testing.T) {
	link := NewLink("", "14424474116")

	got := link.Order("línea 1\nlínea 2")
	want := "https://wa.me/14424474116?text=l%C3%ADnea%201%0Al%C3%ADnea%202"

	if got != want {
		t.Fatalf("Order = %q, want %q", got, want)
	}
}
