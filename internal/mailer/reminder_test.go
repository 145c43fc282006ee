package mailer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "₹0.00"},
		{"5", "₹5.00"},
		{"999", "₹999.00"},
		{"1000", "₹1,000.00"},
		{"12345", "₹12,345.00"},
		{"123456", "₹1,23,456.00"},
		{"1234567.89", "₹12,34,567.89"},
		{"12345678", "₹1,23,45,678.00"},
		{"100000000", "₹10,00,00,000.00"},
		{"250.5", "₹250.50"},
		{"-1234567.89", "-₹12,34,567.89"},
	}
	for _, tc := range cases {
		got := FormatINR(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Errorf("FormatINR(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestReminderEmailSubject(t *testing.T) {
	email := ReminderEmail{Amount: decimal.RequireFromString("1500")}
	subject := email.Subject()
	if !strings.Contains(subject, "₹1,500.00") {
		t.Errorf("expected subject to contain formatted amount, got %q", subject)
	}
}

func TestReminderEmailHTML(t *testing.T) {
	t.Run("renders_all_fields", func(t *testing.T) {
		email := ReminderEmail{
			BorrowerName:  "Borrower",
			LenderName:    "Asha Rao",
			Amount:        decimal.RequireFromString("2500.75"),
			BorrowDate:    "15/08/2025",
			Description:   "Festival loan",
			TransactionID: "0198b2a0-2222-7000-8000-000000000002",
		}

		body, err := email.HTML()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, want := range []string{"Borrower", "Asha Rao", "₹2,500.75", "15/08/2025", "Festival loan", email.TransactionID} {
			if !strings.Contains(body, want) {
				t.Errorf("expected body to contain %q", want)
			}
		}
	})

	t.Run("omits_empty_description", func(t *testing.T) {
		email := ReminderEmail{
			BorrowerName: "Borrower",
			LenderName:   "Asha Rao",
			Amount:       decimal.RequireFromString("100"),
			BorrowDate:   "01/01/2025",
		}

		body, err := email.HTML()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(body, "Description:") {
			t.Error("expected description block to be omitted when empty")
		}
	})

	t.Run("escapes_html_in_description", func(t *testing.T) {
		email := ReminderEmail{
			BorrowerName:  "Borrower",
			LenderName:    "Asha Rao",
			Amount:        decimal.RequireFromString("100"),
			BorrowDate:    "01/01/2025",
			Description:   `<script>alert("x")</script>`,
			TransactionID: "0198b2a0-2222-7000-8000-000000000002",
		}

		body, err := email.HTML()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(body, "<script>") {
			t.Error("expected script tags to be escaped")
		}
	})
}
