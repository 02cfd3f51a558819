package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

// ParticipantQRData data untuk template email undangan
type ParticipantQRData struct {
	ParticipantName string
	EventName       string
	EventLocation   string
	ParticipantCode string
	TableNumber     string
	SeatNumber      string
}

// SendParticipantQREmail kirim email undangan dengan QR code tersemat (async)
func SendParticipantQREmail(to string, data ParticipantQRData, qrPNG []byte) {
	go func() {
		tmplPath := "templates/participant_qr.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Gagal load template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Gagal render template email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "QR Absensi "+data.EventName)
		m.SetBody("text/html", body.String())
		m.Embed("qrcode.png", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(qrPNG)
			return err
		}))

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Gagal kirim email: %v", err)
		}
	}()
}

// RecapRow satu baris rekap harian per event
type RecapRow struct {
	EventName           string
	TotalParticipants   int64
	ScannedParticipants int64
	TotalScans          int64
}

// SendAttendanceRecapEmail kirim rekap absensi harian ke admin
func SendAttendanceRecapEmail(to string, rows []RecapRow) error {
	var sb strings.Builder
	sb.WriteString("Rekap absensi hari ini:\n\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("- %s: %d dari %d peserta hadir (%d scan)\n",
			r.EventName, r.ScannedParticipants, r.TotalParticipants, r.TotalScans))
	}

	host := os.Getenv("SMTP_HOST")
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Rekap Absensi Sinergi")
	m.SetBody("text/plain", sb.String())

	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}
