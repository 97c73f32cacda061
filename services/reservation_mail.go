package services

import (
	"fmt"
	"strings"

	"foodchef/entity"
)

func reminderBody(r *entity.Reservation) string {
	var b strings.Builder
	b.WriteString("<h2>Reservation Reminder</h2>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", r.Name)
	b.WriteString("<p>This is a friendly reminder of your upcoming reservation:</p>")
	b.WriteString("<ul>")
	fmt.Fprintf(&b, "<li><strong>Date:</strong> %s</li>", r.ReservationDate)
	fmt.Fprintf(&b, "<li><strong>Time:</strong> %s</li>", r.ReservationTime)
	fmt.Fprintf(&b, "<li><strong>Guests:</strong> %d</li>", r.Guests)
	b.WriteString("</ul>")
	b.WriteString("<p>We look forward to seeing you!</p>")
	b.WriteString("<p>Best regards,<br>Food Chef Team</p>")
	return b.String()
}
