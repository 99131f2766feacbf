package models

type ContactData struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Email     string `json:"email"`
	Tiktok    string `json:"tiktok"`
	Youtube   string `json:"youtube"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Maps      string `json:"maps"`
	Weekdays  string `json:"weekdays"`
	Weekend   string `json:"weekend"`
}

type AboutValue struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AboutData struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Mission  string       `json:"mission"`
	Vision   string       `json:"vision"`
	Values   []AboutValue `json:"values"`
}

type StoryData struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
	Image      string   `json:"image"`
}

// SiteSettings is a singleton: the table holds at most one row and the
// numeric key never leaves the database layer.
type SiteSettings struct {
	ID      uint        `json:"-" gorm:"primaryKey"`
	Contact ContactData `json:"contact" gorm:"serializer:json"`
	About   AboutData   `json:"about" gorm:"serializer:json"`
	Story   StoryData   `json:"story" gorm:"serializer:json"`
}

type SiteSettingsRequest struct {
	Contact ContactData `json:"contact" validate:"required"`
	About   AboutData   `json:"about" validate:"required"`
	Story   StoryData   `json:"story" validate:"required"`
}

// DefaultSiteSettings is returned when nothing has been saved yet.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		Contact: ContactData{
			Instagram: "@cafeloreomah",
			Facebook:  "Cafe Loreomah Official",
			Email:     "hello@cafeloreomah.com",
			Tiktok:    "cafeloreomah",
			Youtube:   "Cafe Loreomah",
			Phone:     "0821-4243-3998",
			Address:   "Jl. Airlangga, Sumbersari, Kesiman, Kec. Trawas, Kabupaten Mojokerto, Jawa Timur 61375",
			Maps:      "https://maps.google.com",
			Weekdays:  "09.00 - 19.00",
			Weekend:   "09.00 - 20.00",
		},
		About: AboutData{
			Title:    "Tentang Kami",
			Subtitle: "Cafe Loreomah — Kopi, Alam, dan Kebersamaan di Trawas",
			Mission:  "Menghadirkan pengalaman ngopi yang jujur dan berkualitas dengan bahan baku lokal, racikan yang konsisten, serta pelayanan hangat — sehingga setiap tamu merasa seperti di rumah sendiri.",
			Vision:   "Menjadi destinasi kopi dan kuliner keluarga di Trawas yang mengutamakan kualitas rasa, kenyamanan suasana, dan kedekatan dengan komunitas.",
			Values: []AboutValue{
				{Title: "Kualitas", Description: "Biji kopi Nusantara terpilih, resep teruji, rasa konsisten di setiap sajian."},
				{Title: "Kehangatan", Description: "Pelayanan ramah, ruang nyaman, dan atmosfer yang cocok untuk keluarga."},
				{Title: "Komunitas", Description: "Tumbuh bersama warga Trawas — dari petani, UMKM, hingga para penikmat kopi."},
				{Title: "Inovasi", Description: "Eksplorasi menu musiman, kopi manual brew, dan kreasi non-kopi yang seimbang."},
			},
		},
		Story: StoryData{
			Title: "CERITA KAMI",
			Paragraphs: []string{
				"Cafe Loreomah lahir dari kecintaan pada kopi Nusantara dan suasana alam Trawas yang sejuk. Kami percaya, secangkir kopi yang baik bukan hanya soal rasa — tetapi juga tentang momen, suasana, dan kebersamaan.",
				"Kami menggunakan bahan baku lokal, mendukung petani dan pelaku UMKM, serta meracik menu yang seimbang: dari manual brew, kopi susu gula aren, hingga pilihan non-kopi dan makanan keluarga. Setiap sajian diracik dengan standar konsistensi, agar pengalaman Anda selalu menyenangkan kapan pun berkunjung.",
				"Berlokasi di Jl. Airlangga, Trawas, Mojokerto, Loreomah menjadi tempat singgah yang hangat untuk berkumpul, bekerja, atau sekadar menikmati udara pegunungan. Terima kasih telah menjadi bagian dari perjalanan kami — sampai jumpa di Loreomah.",
			},
			Image: "/uploads/sliders/default-story.jpg",
		},
	}
}
