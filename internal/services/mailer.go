package services

import (
	"fmt"
	"log"
	"strconv"

	mail "github.com/wneessen/go-mail"

	"tokobuku_backend/internal/config"
	"tokobuku_backend/internal/models"
)

// SendOrderConfirmation emails an order summary to the buyer. Best effort:
// when SMTP is not configured or sending fails we only log.
func SendOrderConfirmation(toEmail string, order models.Order) {
	host := config.Get("SMTP_HOST", "")
	if host == "" || toEmail == "" {
		return
	}

	port, err := strconv.Atoi(config.Get("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}

	msg := mail.NewMsg()
	if err := msg.From(config.Get("SMTP_FROM", "noreply@tokobuku.com")); err != nil {
		log.Println("⚠️  Order confirmation email failed:", err)
		return
	}
	if err := msg.To(toEmail); err != nil {
		log.Println("⚠️  Order confirmation email failed:", err)
		return
	}
	msg.Subject("Konfirmasi Pesanan " + order.OrderNumber)

	body := fmt.Sprintf(
		"Terima kasih sudah berbelanja di Toko Buku!\n\nNomor pesanan: %s\nTotal: Rp %.0f\nStatus: %s\n\nKami akan mengirimkan pesanan Anda secepatnya.\n",
		order.OrderNumber, order.Total, order.Status)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(config.Get("SMTP_USER", "")),
		mail.WithPassword(config.Get("SMTP_PASSWORD", "")),
	)
	if err != nil {
		log.Println("⚠️  Mailer not available:", err)
		return
	}

	if err := client.DialAndSend(msg); err != nil {
		log.Println("⚠️  Order confirmation email failed:", err)
	}
}
