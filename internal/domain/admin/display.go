package admin

import "fmt"

// FormatProbeState renders the root probe status on the overview screen.
func FormatProbeState(status string) Badge {
	if status == "ok" {
		return Badge{Label: "Connected", Tone: ToneSuccess}
	}
	return Badge{Label: "Unknown", Tone: ToneNeutral}
}

// FormatDBState renders the database field of the health payload.
func FormatDBState(db string) Badge {
	switch db {
	case "up":
		return Badge{Label: "Up", Tone: ToneSuccess}
	case "down":
		return Badge{Label: "Down", Tone: ToneDanger}
	default:
		return Badge{Label: "Unknown", Tone: ToneNeutral}
	}
}

// FormatUserCount renders the size of the user list.
func FormatUserCount(n int) Badge {
	return Badge{Label: fmt.Sprintf("%d pengguna", n), Tone: TonePrimary}
}

// DisplayName is the headline of a user row.
func DisplayName(u User) string {
	return firstNonEmpty(u.Name, u.Username, u.Email, u.ClerkID, "Tanpa identitas")
}

// DisplayDetail is the secondary line of a user row.
func DisplayDetail(u User) string {
	return firstNonEmpty(u.Email, u.Username, u.ClerkID, "-")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
