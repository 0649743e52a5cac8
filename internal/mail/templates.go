// Package mail renders transactional email templates. Every renderer is a
// pure function from a typed payload to a rendered Email; delivery lives
// behind the Sender interface and is wired in by the mailer service.
package mail

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Email is a rendered transactional message
type Email struct {
	Subject string
	Text    string
	HTML    string
}

// dateLayout is the human-facing date format used across templates
const dateLayout = "Monday, January 2, 2006"

// FormatDate renders a date the way templates present it
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

var htmlLayout = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Helvetica, Arial, sans-serif; color: #1f2933; margin: 0; padding: 24px;">
  <div style="max-width: 560px; margin: 0 auto;">
    <h2 style="margin-bottom: 4px;">{{.TenantName}}</h2>
    {{.Body}}
    <p style="color: #7b8794; font-size: 12px; margin-top: 32px;">
      This message was sent by {{.TenantName}}.
    </p>
  </div>
</body>
</html>
`))

type layoutData struct {
	TenantName string
	Body       template.HTML
}

func wrapHTML(tenantName string, body string) (string, error) {
	var sb strings.Builder
	err := htmlLayout.Execute(&sb, layoutData{
		TenantName: tenantName,
		Body:       template.HTML(body),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render html layout: %w", err)
	}
	return sb.String(), nil
}

func renderBody(t *template.Template, data interface{}) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", t.Name(), err)
	}
	return sb.String(), nil
}

// --- Welcome ---

// WelcomeParams carries the required fields for the welcome email
type WelcomeParams struct {
	TenantName   string `json:"tenant_name"`
	CustomerName string `json:"customer_name"`
}

var welcomeHTML = template.Must(template.New("welcome").Parse(
	`<p>Hi {{.CustomerName}},</p>
<p>Welcome to {{.TenantName}}! We are delighted to have you with us.</p>
<p>Browse our tours and start planning your next adventure.</p>`))

// RenderWelcome renders the welcome email
func RenderWelcome(p WelcomeParams) (Email, error) {
	body, err := renderBody(welcomeHTML, p)
	if err != nil {
		return Email{}, err
	}
	html, err := wrapHTML(p.TenantName, body)
	if err != nil {
		return Email{}, err
	}
	return Email{
		Subject: fmt.Sprintf("Welcome to %s", p.TenantName),
		Text: fmt.Sprintf(
			"Hi %s,\n\nWelcome to %s! We are delighted to have you with us.\n\nBrowse our tours and start planning your next adventure.\n",
			p.CustomerName, p.TenantName),
		HTML: html,
	}, nil
}

// --- Booking confirmation ---

// BookingConfirmationParams carries the required fields for a booking confirmation
type BookingConfirmationParams struct {
	TenantName    string    `json:"tenant_name"`
	CustomerName  string    `json:"customer_name"`
	BookingNumber string    `json:"booking_number"`
	TourTitle     string    `json:"tour_title"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
}

var bookingConfirmationHTML = template.Must(template.New("booking_confirmation").Parse(
	`<p>Hi {{.CustomerName}},</p>
<p>Your booking <strong>{{.BookingNumber}}</strong> for <strong>{{.TourTitle}}</strong> is confirmed.</p>
<p>Departure: {{.Start}}<br>Return: {{.End}}</p>
<p>We look forward to travelling with you!</p>`))

// RenderBookingConfirmation renders a booking confirmation email
func RenderBookingConfirmation(p BookingConfirmationParams) (Email, error) {
	data := struct {
		BookingConfirmationParams
		Start string
		End   string
	}{p, FormatDate(p.StartDate), FormatDate(p.EndDate)}

	body, err := renderBody(bookingConfirmationHTML, data)
	if err != nil {
		return Email{}, err
	}
	html, err := wrapHTML(p.TenantName, body)
	if err != nil {
		return Email{}, err
	}
	return Email{
		Subject: fmt.Sprintf("Booking %s confirmed: %s", p.BookingNumber, p.TourTitle),
		Text: fmt.Sprintf(
			"Hi %s,\n\nYour booking %s for %s is confirmed.\n\nDeparture: %s\nReturn: %s\n\nWe look forward to travelling with you!\n",
			p.CustomerName, p.BookingNumber, p.TourTitle, data.Start, data.End),
		HTML: html,
	}, nil
}

// --- Booking cancellation ---

// BookingCancellationParams carries the required fields for a cancellation notice
type BookingCancellationParams struct {
	TenantName    string `json:"tenant_name"`
	CustomerName  string `json:"customer_name"`
	BookingNumber string `json:"booking_number"`
	TourTitle     string `json:"tour_title"`
}

// BookingCancellationExtras carries optional cancellation fields. A nil
// extras (or zero RefundAmountMinor with HasRefund unset) renders no
// refund section at all.
type BookingCancellationExtras struct {
	RefundAmountMinor int64  `json:"refund_amount_minor"`
	Currency          string `json:"currency"`
	Locale            string `json:"locale"`
}

var bookingCancellationHTML = template.Must(template.New("booking_cancellation").Parse(
	`<p>Hi {{.CustomerName}},</p>
<p>Your booking <strong>{{.BookingNumber}}</strong> for <strong>{{.TourTitle}}</strong> has been cancelled.</p>
{{if .HasRefund}}<p>A refund of <strong>{{.Refund}}</strong> will be issued to your original payment method.</p>
{{end}}<p>We hope to welcome you on another tour soon.</p>`))

// RenderBookingCancellation renders a cancellation email. extras may be nil.
func RenderBookingCancellation(p BookingCancellationParams, extras *BookingCancellationExtras) (Email, error) {
	data := struct {
		BookingCancellationParams
		HasRefund bool
		Refund    string
	}{BookingCancellationParams: p}

	if extras != nil {
		data.HasRefund = true
		data.Refund = FormatCurrency(extras.RefundAmountMinor, extras.Currency, extras.Locale)
	}

	body, err := renderBody(bookingCancellationHTML, data)
	if err != nil {
		return Email{}, err
	}
	html, err := wrapHTML(p.TenantName, body)
	if err != nil {
		return Email{}, err
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\nYour booking %s for %s has been cancelled.\n",
		p.CustomerName, p.BookingNumber, p.TourTitle)
	if data.HasRefund {
		fmt.Fprintf(&text, "\nA refund of %s will be issued to your original payment method.\n", data.Refund)
	}
	text.WriteString("\nWe hope to welcome you on another tour soon.\n")

	return Email{
		Subject: fmt.Sprintf("Booking %s cancelled", p.BookingNumber),
		Text:    text.String(),
		HTML:    html,
	}, nil
}

// --- Payment received ---

// BreakdownLine is one labelled amount in a payment breakdown
type BreakdownLine struct {
	Label       string `json:"label"`
	AmountMinor int64  `json:"amount_minor"`
}

// PaymentReceivedParams carries the required fields for a payment receipt
type PaymentReceivedParams struct {
	TenantName    string `json:"tenant_name"`
	CustomerName  string `json:"customer_name"`
	BookingNumber string `json:"booking_number"`
	AmountMinor   int64  `json:"amount_minor"`
	Currency      string `json:"currency"`
	Locale        string `json:"locale"`
}

// PaymentReceivedExtras carries the optional itemized breakdown
type PaymentReceivedExtras struct {
	Breakdown []BreakdownLine `json:"breakdown"`
}

var paymentReceivedHTML = template.Must(template.New("payment_received").Parse(
	`<p>Hi {{.CustomerName}},</p>
<p>We received your payment of <strong>{{.Amount}}</strong> for booking <strong>{{.BookingNumber}}</strong>.</p>
{{if .Lines}}<table style="border-collapse: collapse;">
{{range .Lines}}  <tr><td style="padding-right: 24px;">{{.Label}}</td><td align="right">{{.Amount}}</td></tr>
{{end}}</table>
{{end}}<p>Thank you!</p>`))

// RenderPaymentReceived renders a payment receipt. extras may be nil.
func RenderPaymentReceived(p PaymentReceivedParams, extras *PaymentReceivedExtras) (Email, error) {
	type line struct {
		Label  string
		Amount string
	}
	data := struct {
		PaymentReceivedParams
		Amount string
		Lines  []line
	}{PaymentReceivedParams: p, Amount: FormatCurrency(p.AmountMinor, p.Currency, p.Locale)}

	if extras != nil {
		for _, b := range extras.Breakdown {
			data.Lines = append(data.Lines, line{
				Label:  b.Label,
				Amount: FormatCurrency(b.AmountMinor, p.Currency, p.Locale),
			})
		}
	}

	body, err := renderBody(paymentReceivedHTML, data)
	if err != nil {
		return Email{}, err
	}
	html, err := wrapHTML(p.TenantName, body)
	if err != nil {
		return Email{}, err
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\nWe received your payment of %s for booking %s.\n",
		p.CustomerName, data.Amount, p.BookingNumber)
	if len(data.Lines) > 0 {
		text.WriteString("\n")
		for _, l := range data.Lines {
			fmt.Fprintf(&text, "  %s: %s\n", l.Label, l.Amount)
		}
	}
	text.WriteString("\nThank you!\n")

	return Email{
		Subject: fmt.Sprintf("Payment received for booking %s", p.BookingNumber),
		Text:    text.String(),
		HTML:    html,
	}, nil
}

// --- Review request ---

// ReviewRequestParams carries the required fields for a review request
type ReviewRequestParams struct {
	TenantName    string `json:"tenant_name"`
	CustomerName  string `json:"customer_name"`
	BookingNumber string `json:"booking_number"`
	TourTitle     string `json:"tour_title"`
	ReviewURL     string `json:"review_url"`
}

var reviewRequestHTML = template.Must(template.New("review_request").Parse(
	`<p>Hi {{.CustomerName}},</p>
<p>We hope you enjoyed <strong>{{.TourTitle}}</strong> (booking {{.BookingNumber}}).</p>
<p><a href="{{.ReviewURL}}">Share your experience</a>. It helps other travellers and means a lot to us.</p>`))

// RenderReviewRequest renders a post-tour review request
func RenderReviewRequest(p ReviewRequestParams) (Email, error) {
	body, err := renderBody(reviewRequestHTML, p)
	if err != nil {
		return Email{}, err
	}
	html, err := wrapHTML(p.TenantName, body)
	if err != nil {
		return Email{}, err
	}
	return Email{
		Subject: fmt.Sprintf("How was %s?", p.TourTitle),
		Text: fmt.Sprintf(
			"Hi %s,\n\nWe hope you enjoyed %s (booking %s).\n\nShare your experience: %s\n\nIt helps other travellers and means a lot to us.\n",
			p.CustomerName, p.TourTitle, p.BookingNumber, p.ReviewURL),
		HTML: html,
	}, nil
}

// --- Tour reminder ---

// TourReminderParams carries the required fields for a departure reminder
type TourReminderParams struct {
	TenantName    string    `json:"tenant_name"`
	CustomerName  string    `json:"customer_name"`
	BookingNumber string    `json:"booking_number"`
	TourTitle     string    `json:"tour_title"`
	StartDate     time.Time `json:"start_date"`
	DaysBefore    int       `json:"days_before"`
}

var tourReminderHTML = template.Must(template.New("tour_reminder").Parse(
	`<p>Hi {{.CustomerName}},</p>
<p>Only <strong>{{.DaysBefore}}</strong> {{.DayWord}} until <strong>{{.TourTitle}}</strong>!</p>
<p>Your tour departs on {{.Start}} (booking {{.BookingNumber}}).</p>
<p>Safe travels!</p>`))

// RenderTourReminder renders a departure reminder
func RenderTourReminder(p TourReminderParams) (Email, error) {
	dayWord := "days"
	if p.DaysBefore == 1 {
		dayWord = "day"
	}
	data := struct {
		TourReminderParams
		Start   string
		DayWord string
	}{p, FormatDate(p.StartDate), dayWord}

	body, err := renderBody(tourReminderHTML, data)
	if err != nil {
		return Email{}, err
	}
	html, err := wrapHTML(p.TenantName, body)
	if err != nil {
		return Email{}, err
	}
	return Email{
		Subject: fmt.Sprintf("%s departs in %d %s", p.TourTitle, p.DaysBefore, dayWord),
		Text: fmt.Sprintf(
			"Hi %s,\n\nOnly %d %s until %s!\n\nYour tour departs on %s (booking %s).\n\nSafe travels!\n",
			p.CustomerName, p.DaysBefore, dayWord, p.TourTitle, data.Start, p.BookingNumber),
		HTML: html,
	}, nil
}

// --- Staff invite ---

// StaffInviteParams carries the required fields for a staff invitation
type StaffInviteParams struct {
	TenantName    string `json:"tenant_name"`
	InviteeEmail  string `json:"invitee_email"`
	InviterName   string `json:"inviter_name"`
	Role          string `json:"role"`
	InvitationURL string `json:"invitation_url"`
}

var staffInviteHTML = template.Must(template.New("staff_invite").Parse(
	`<p>Hello,</p>
<p><strong>{{.InviterName}}</strong> has invited you ({{.InviteeEmail}}) to join <strong>{{.TenantName}}</strong> as <strong>{{.Role}}</strong>.</p>
<p><a href="{{.InvitationURL}}">Accept the invitation</a></p>`))

// RenderStaffInvite renders a staff invitation
func RenderStaffInvite(p StaffInviteParams) (Email, error) {
	body, err := renderBody(staffInviteHTML, p)
	if err != nil {
		return Email{}, err
	}
	html, err := wrapHTML(p.TenantName, body)
	if err != nil {
		return Email{}, err
	}
	return Email{
		Subject: fmt.Sprintf("You have been invited to join %s", p.TenantName),
		Text: fmt.Sprintf(
			"Hello,\n\n%s has invited you (%s) to join %s as %s.\n\nAccept the invitation: %s\n",
			p.InviterName, p.InviteeEmail, p.TenantName, p.Role, p.InvitationURL),
		HTML: html,
	}, nil
}

// --- Password reset ---

// PasswordResetParams carries the required fields for a password reset
type PasswordResetParams struct {
	TenantName string `json:"tenant_name"`
	Email      string `json:"email"`
	ResetURL   string `json:"reset_url"`
}

var passwordResetHTML = template.Must(template.New("password_reset").Parse(
	`<p>Hello,</p>
<p>A password reset was requested for <strong>{{.Email}}</strong> on {{.TenantName}}.</p>
<p><a href="{{.ResetURL}}">Reset your password</a></p>
<p>If you did not request this, you can safely ignore this email.</p>`))

// RenderPasswordReset renders a password reset email
func RenderPasswordReset(p PasswordResetParams) (Email, error) {
	body, err := renderBody(passwordResetHTML, p)
	if err != nil {
		return Email{}, err
	}
	html, err := wrapHTML(p.TenantName, body)
	if err != nil {
		return Email{}, err
	}
	return Email{
		Subject: fmt.Sprintf("Reset your %s password", p.TenantName),
		Text: fmt.Sprintf(
			"Hello,\n\nA password reset was requested for %s on %s.\n\nReset your password: %s\n\nIf you did not request this, you can safely ignore this email.\n",
			p.Email, p.TenantName, p.ResetURL),
		HTML: html,
	}, nil
}
