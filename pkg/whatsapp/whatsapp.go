// Package whatsapp talks to the external WhatsApp bot over HTTP.
package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

type sendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Ready bool   `json:"ready"`
	Error string `json:"error,omitempty"`
}

// SendMessage posts a message to the bot for the given phone number.
func (c *Client) SendMessage(phone, message string) error {
	payload, err := json.Marshal(sendMessageRequest{
		Phone:   NormalizePhone(phone),
		Message: message,
	})
	if err != nil {
		return err
	}

	resp, err := c.http.Post(c.baseURL+"/send-message", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whatsapp bot returned status %d", resp.StatusCode)
	}

	c.logger.Info("sent WhatsApp message", zap.String("phone", NormalizePhone(phone)))
	return nil
}

// Status asks the bot whether a WhatsApp session is ready.
func (c *Client) Status() (*StatusResponse, error) {
	resp, err := c.http.Get(c.baseURL + "/status")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var status StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}

// NormalizePhone strips formatting and rewrites a leading local 0 to the
// Indonesian country code.
func NormalizePhone(phone string) string {
	clean := strings.NewReplacer("+", "", "-", "", " ", "").Replace(phone)
	if strings.HasPrefix(clean, "0") {
		clean = "62" + clean[1:]
	}
	return clean
}

// FormatReservationApproved renders the approval message sent after an
// admin confirms a reservation.
func FormatReservationApproved(name, date string, guests int) string {
	return fmt.Sprintf(`✅ *Reservasi Disetujui!*

Halo %s! 👋

Reservasi Anda di Cafe Loreomah telah disetujui! 🎉

📅 *Detail Reservasi:*
• Tanggal: %s
• Jumlah Tamu: %d orang

📍 *Lokasi:*
Jl. Airlangga, Sumbersari, Kesiman
Kec. Trawas, Kab. Mojokerto, Jawa Timur 61375

⏰ *Jam Buka:*
Senin-Jumat: 09.00 - 19.00
Sabtu-Minggu: 09.00 - 20.00

Kami tunggu kedatangan Anda! 😊

_Cafe Loreomah - Suasana Sejuk Pedesaan_`, name, date, guests)
}

// FormatReservationDeclined renders the rejection message.
func FormatReservationDeclined(name, date string) string {
	return fmt.Sprintf(`❌ *Reservasi Tidak Dapat Diproses*

Halo %s,

Mohon maaf, reservasi Anda untuk tanggal %s tidak dapat kami proses karena kapasitas penuh.

Silakan pilih waktu lain atau hubungi kami untuk informasi lebih lanjut:
📞 0821-4243-3998

Terima kasih atas pengertiannya.

_Cafe Loreomah_`, name, date)
}
