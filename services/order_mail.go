package services

import (
	"fmt"
	"strings"

	"foodchef/entity"
)

func orderConfirmationBody(o *entity.Order, items []entity.OrderItem) string {
	var b strings.Builder
	b.WriteString("<h2>Order Confirmation</h2>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", o.CustomerName)
	b.WriteString("<p>Thank you for your order! Here are your order details:</p>")
	fmt.Fprintf(&b, "<h3>Order #%d</h3>", o.ID)
	b.WriteString("<table border='1' style='border-collapse: collapse; width: 100%;'>")
	b.WriteString("<tr><th>Item</th><th>Quantity</th><th>Price</th><th>Total</th></tr>")
	for _, it := range items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>",
			it.FoodName, it.Quantity, formatCents(it.UnitPrice), formatCents(it.TotalPrice))
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p><strong>Total Amount: %s</strong></p>", formatCents(o.TotalAmount))
	b.WriteString("<p>We'll notify you when your order is ready!</p>")
	b.WriteString("<p>Best regards,<br>Food Chef Team</p>")
	return b.String()
}

func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
