package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
)

// ReminderEmail holds the data rendered into a borrower reminder message.
type ReminderEmail struct {
	BorrowerName  string
	LenderName    string
	Amount        decimal.Decimal
	BorrowDate    string
	Description   string
	TransactionID string
}

// Subject returns the subject line for the reminder.
func (r ReminderEmail) Subject() string {
	return fmt.Sprintf("💰 Reminder: You borrowed %s", FormatINR(r.Amount))
}

// HTML renders the reminder message body.
func (r ReminderEmail) HTML() (string, error) {
	var b strings.Builder
	data := struct {
		ReminderEmail
		FormattedAmount string
	}{r, FormatINR(r.Amount)}
	if err := reminderTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render reminder email: %w", err)
	}
	return b.String(), nil
}

// FormatINR formats an amount as Indian rupees with Indian digit grouping:
// the last three integer digits form one group, the rest pair off
// (1234567.89 → ₹12,34,567.89).
func FormatINR(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	grouped := intPart
	if len(intPart) > 3 {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		grouped = strings.Join(append(groups, tail), ",")
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s₹%s.%s", sign, grouped, fracPart)
}

var reminderTemplate = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body {
      font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
      line-height: 1.6;
      color: #333;
      max-width: 600px;
      margin: 0 auto;
      padding: 20px;
    }
    .header {
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      color: white;
      padding: 30px;
      text-align: center;
      border-radius: 10px 10px 0 0;
    }
    .content {
      padding: 30px;
      background: #f8f9fa;
      border-radius: 0 0 10px 10px;
    }
    .amount {
      font-size: 28px;
      font-weight: bold;
      color: #dc2626;
      text-align: center;
      margin: 20px 0;
    }
    .transaction-details {
      background: white;
      padding: 20px;
      border-radius: 8px;
      border-left: 4px solid #667eea;
      margin: 20px 0;
    }
    .footer {
      text-align: center;
      color: #666;
      font-size: 14px;
      margin-top: 30px;
      padding-top: 20px;
      border-top: 1px solid #ddd;
    }
  </style>
</head>
<body>
  <div class="header">
    <h1>💰 Payment Reminder</h1>
    <p>Friendly reminder about your borrowed amount</p>
  </div>

  <div class="content">
    <p>Hello <strong>{{.BorrowerName}}</strong>,</p>

    <p>This is a friendly reminder about the amount you borrowed.</p>

    <div class="transaction-details">
      <div class="amount">{{.FormattedAmount}}</div>
      <p><strong>👤 Borrowed from:</strong> {{.LenderName}}</p>
      <p><strong>📅 Date:</strong> {{.BorrowDate}}</p>
      {{if .Description}}<p><strong>📝 Description:</strong> {{.Description}}</p>{{end}}
      <p><strong>🔢 Transaction ID:</strong> {{.TransactionID}}</p>
    </div>

    <p>Please settle this amount at your earliest convenience.</p>

    <p>Best regards,<br>
    <strong>Fintrack</strong></p>
  </div>

  <div class="footer">
    <p>This is an automated reminder from Fintrack.</p>
    <p>If you have already settled this amount, please ignore this email.</p>
    <p>Transaction ID: {{.TransactionID}}</p>
  </div>
</body>
</html>
`))
