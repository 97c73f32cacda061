package services

import (
	"fmt"
	"strings"

	"foodchef/entity"
)

func feedbackAckBody(f *entity.CustomerFeedback) string {
	var b strings.Builder
	b.WriteString("<h2>Feedback Received</h2>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", f.CustomerName)
	b.WriteString("<p>Thank you for taking the time to share your feedback with us. We appreciate your input and will use it to improve our services.</p>")
	b.WriteString("<h3>Your Feedback Summary:</h3><ul>")
	fmt.Fprintf(&b, "<li><strong>Type:</strong> %s</li>", feedbackTypeLabel(f.FeedbackType))
	fmt.Fprintf(&b, "<li><strong>Rating:</strong> %d/5</li>", f.Rating)
	b.WriteString("</ul>")
	if f.Message != "" {
		fmt.Fprintf(&b, "<p><strong>Your Message:</strong><br>%s</p>", f.Message)
	}
	b.WriteString("<p>We will review your feedback and take appropriate action.</p>")
	b.WriteString("<p>Best regards,<br>Food Chef Team</p>")
	return b.String()
}

func feedbackTypeLabel(t string) string {
	t = strings.ReplaceAll(t, "_", " ")
	if t == "" {
		return t
	}
	return strings.ToUpper(t[:1]) + t[1:]
}
