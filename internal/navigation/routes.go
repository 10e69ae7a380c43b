// Package navigation describes the tab bar and the screens mounted under it.
package navigation

// TabKey identifies a tab in the bottom bar.
type TabKey string

const (
	TabHome          TabKey = "index"
	TabPatients      TabKey = "pasien"
	TabNews          TabKey = "berita"
	TabEducationVids TabKey = "video-edukasi"
	TabAdmin         TabKey = "admin"
)

// Icon is an SF Symbols name.
type Icon string

// Tab is one entry of the tab bar.
type Tab struct {
	Key           TabKey
	Label         string
	Icon          Icon
	IsPublic      bool
	HasEmptyState bool
}

// Screen is a route mounted by the tab layout.
type Screen struct {
	Name   string
	TabKey TabKey
	Title  string
	Icon   Icon
}

// EmptyState is the placeholder copy shown on public tabs without data yet.
type EmptyState struct {
	Eyebrow     string
	Title       string
	Description string
	Note        string
}

var tabs = []Tab{
	{Key: TabHome, Label: "Beranda", Icon: "house.fill", IsPublic: true},
	{Key: TabPatients, Label: "Pasien", Icon: "person.2.fill", IsPublic: true, HasEmptyState: true},
	{Key: TabNews, Label: "Berita", Icon: "newspaper.fill", IsPublic: true, HasEmptyState: true},
	{Key: TabEducationVids, Label: "Video Edukasi", Icon: "play.square.fill", IsPublic: true, HasEmptyState: true},
	{Key: TabAdmin, Label: "Admin", Icon: "lock.shield.fill"},
}

var screenNames = map[TabKey]string{
	TabHome:          "index",
	TabPatients:      "pasien",
	TabNews:          "berita",
	TabEducationVids: "video-edukasi",
	TabAdmin:         "admin/index",
}

var emptyStates = map[TabKey]EmptyState{
	TabPatients: {
		Eyebrow:     "Data pasien",
		Title:       "Halaman pasien sedang disiapkan",
		Description: "Kami sedang merapikan alur daftar pasien agar sinkron dengan layanan backend dan hak akses pengguna.",
		Note:        "Saat ini belum ada data yang ditampilkan.",
	},
	TabNews: {
		Eyebrow:     "Informasi terbaru",
		Title:       "Konten berita akan hadir segera",
		Description: "Kurasi berita kesehatan sedang difinalkan agar informasi yang muncul lebih relevan dan konsisten.",
		Note:        "Belum ada artikel yang dipublikasikan di aplikasi.",
	},
	TabEducationVids: {
		Eyebrow:     "Pusat pembelajaran",
		Title:       "Video edukasi sedang diproduksi",
		Description: "Tim konten sedang menyiapkan video singkat dengan materi yang mudah dipahami untuk semua pengguna.",
		Note:        "Perpustakaan video akan tampil pada pembaruan berikutnya.",
	},
}

// Tabs returns every tab in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

// Screens returns the tab layout screens in display order.
func Screens() []Screen {
	out := make([]Screen, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, Screen{Name: screenNames[t.Key], TabKey: t.Key, Title: t.Label, Icon: t.Icon})
	}
	return out
}

// IsAdminScreen reports whether s belongs to the admin tab. The tab key is
// matched, never the title.
func IsAdminScreen(s Screen) bool {
	return s.TabKey == TabAdmin
}

// HasAdminTab reports whether the layout ships an admin screen.
func HasAdminTab() bool {
	for _, s := range Screens() {
		if IsAdminScreen(s) {
			return true
		}
	}
	return false
}

// VisibleTabs returns the tabs a user may see.
func VisibleTabs(isAdmin bool) []Tab {
	var out []Tab
	for _, t := range tabs {
		if t.IsPublic || isAdmin {
			out = append(out, t)
		}
	}
	return out
}

// VisibleScreens returns the layout screens a user may see.
func VisibleScreens(isAdmin bool) []Screen {
	var out []Screen
	for _, s := range Screens() {
		if !IsAdminScreen(s) || isAdmin {
			out = append(out, s)
		}
	}
	return out
}

// EmptyStateFor returns the placeholder copy for a public tab.
func EmptyStateFor(key TabKey) (EmptyState, bool) {
	s, ok := emptyStates[key]
	return s, ok
}
