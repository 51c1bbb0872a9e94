package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// formatBookingTime renders a booking date for email bodies.
func formatBookingTime(t time.Time) string {
	return t.Format("January 2, 2006 at 3:04 PM")
}

type bookingEmailData struct {
	Name       string
	BookingRef string
	Business   string
	Date       string
	TimeSlot   string
	Service    string
	Status     string
	Reason     string
	Color      string
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<html><body style="font-family: Arial, sans-serif; color: #333;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
<h2 style="color: #4CAF50;">Booking Received</h2>
<p>Hi {{.Name}},</p>
<p>Your booking with <strong>{{.Business}}</strong> has been received and is awaiting confirmation.</p>
<div style="background: #f5f5f5; padding: 15px; border-radius: 6px;">
<p><strong>Reference:</strong> {{.BookingRef}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
{{if .TimeSlot}}<p><strong>Time slot:</strong> {{.TimeSlot}}</p>{{end}}
{{if .Service}}<p><strong>Service:</strong> {{.Service}}</p>{{end}}
</div>
<p>Keep the reference code handy. You will get another email once the business confirms.</p>
</div></body></html>`))

var statusUpdateTmpl = template.Must(template.New("status").Parse(`
<html><body style="font-family: Arial, sans-serif; color: #333;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
<h2 style="color: {{.Color}};">Booking {{.Status}}</h2>
<p>Hi {{.Name}},</p>
<p>Your booking <strong>{{.BookingRef}}</strong> with <strong>{{.Business}}</strong> is now <strong style="color: {{.Color}};">{{.Status}}</strong>.</p>
<p><strong>Date:</strong> {{.Date}}</p>
{{if .Reason}}<p><strong>Reason:</strong> {{.Reason}}</p>{{end}}
</div></body></html>`))

var ownerAlertTmpl = template.Must(template.New("ownerAlert").Parse(`
<html><body style="font-family: Arial, sans-serif; color: #333;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
<h2 style="color: #2196F3;">New Booking</h2>
<p>You have a new booking for <strong>{{.Business}}</strong>.</p>
<div style="background: #f5f5f5; padding: 15px; border-radius: 6px;">
<p><strong>Customer:</strong> {{.Name}}</p>
<p><strong>Reference:</strong> {{.BookingRef}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
{{if .TimeSlot}}<p><strong>Time slot:</strong> {{.TimeSlot}}</p>{{end}}
{{if .Service}}<p><strong>Service:</strong> {{.Service}}</p>{{end}}
</div>
<p>Approve or reject it from your dashboard.</p>
</div></body></html>`))

var cancellationTmpl = template.Must(template.New("cancellation").Parse(`
<html><body style="font-family: Arial, sans-serif; color: #333;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
<h2 style="color: #FF9800;">Booking Cancelled</h2>
<p>Hi {{.Name}},</p>
<p>Your booking <strong>{{.BookingRef}}</strong> with <strong>{{.Business}}</strong> on {{.Date}} has been cancelled.</p>
<p>You can always book again from the business page.</p>
</div></body></html>`))

var reminderTmpl = template.Must(template.New("reminder").Parse(`
<html><body style="font-family: Arial, sans-serif; color: #333;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
<h2 style="color: #4CAF50;">Booking Reminder</h2>
<p>Hi {{.Name}},</p>
<p>This is a reminder of your upcoming booking with <strong>{{.Business}}</strong>.</p>
<div style="background: #f5f5f5; padding: 15px; border-radius: 6px;">
<p><strong>Reference:</strong> {{.BookingRef}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
{{if .TimeSlot}}<p><strong>Time slot:</strong> {{.TimeSlot}}</p>{{end}}
</div>
<p>See you soon!</p>
</div></body></html>`))

func renderEmail(tmpl *template.Template, data bookingEmailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s email: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func statusColor(status string) string {
	if status == "CONFIRMED" {
		return "#4CAF50"
	}
	return "#f44336"
}
