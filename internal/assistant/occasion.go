package assistant

import (
	"strings"

	"petal-atelier/internal/domain"
)

// Occasion is a recognized gifting context
type Occasion string

const (
	OccasionBirthday    Occasion = "birthday"
	OccasionWedding     Occasion = "wedding"
	OccasionAnniversary Occasion = "anniversary"
	OccasionRomantic    Occasion = "romantic"
	OccasionApology     Occasion = "apology"
	OccasionGraduation  Occasion = "graduation"
	OccasionSympathy    Occasion = "sympathy"
	OccasionDefault     Occasion = "default"
)

type matchRule struct {
	keywords []string
	occasion Occasion
}

// matchRules is evaluated in order; the first rule with any keyword
// found in the prompt wins, so "love" outranks "sad" when both appear.
var matchRules = []matchRule{
	{[]string{"birth"}, OccasionBirthday},
	{[]string{"wed", "marry"}, OccasionWedding},
	{[]string{"anniv"}, OccasionAnniversary},
	{[]string{"love", "romance"}, OccasionRomantic},
	{[]string{"sorry", "apolog"}, OccasionApology},
	{[]string{"gradu"}, OccasionGraduation},
	{[]string{"sad", "die", "loss"}, OccasionSympathy},
}

// DetectOccasion maps a free-text prompt to an occasion by case
// insensitive substring matching.
func DetectOccasion(prompt string) Occasion {
	normalized := strings.ToLower(prompt)
	for _, rule := range matchRules {
		for _, kw := range rule.keywords {
			if strings.Contains(normalized, kw) {
				return rule.occasion
			}
		}
	}
	return OccasionDefault
}

var suggestions = map[Occasion]domain.LocalizedText{
	OccasionBirthday: {
		domain.LanguageEN: "For birthdays, we suggest 'Morning Sunshine'. Bright sunflowers and yellow lilies to celebrate a new year of life!",
		domain.LanguageID: "Untuk ulang tahun, kami menyarankan 'Mentari Pagi'. Bunga matahari cerah dan lili kuning untuk merayakan tahun baru kehidupan!",
	},
	OccasionWedding: {
		domain.LanguageEN: "For weddings, 'Whispering White' is perfection. Elegant white tulips and lilies symbolizing pure and eternal beginnings.",
		domain.LanguageID: "Untuk pernikahan, 'Putih Berbisik' sangat sempurna. Tulip putih elegan dan lili yang melambangkan awal yang murni dan abadi.",
	},
	OccasionAnniversary: {
		domain.LanguageEN: "Celebrate love with 'Royal Crimson'. Deep red roses that speak of eternal passion and devotion.",
		domain.LanguageID: "Rayakan cinta dengan 'Buket Merah Kerajaan'. Mawar merah tua yang berbicara tentang gairah dan pengabdian abadi.",
	},
	OccasionRomantic: {
		domain.LanguageEN: "For a romantic gesture, nothing beats our 'Pastel Dreams'. A soft, enchanting mix that captures the heart.",
		domain.LanguageID: "Untuk gerakan romantis, tidak ada yang mengalahkan 'Mimpi Pastel' kami. Campuran lembut dan mempesona yang memikat hati.",
	},
	OccasionApology: {
		domain.LanguageEN: "A sincere apology deserves 'Whispering White'. Pure white blooms to show genuine regret and hope for peace.",
		domain.LanguageID: "Permintaan maaf yang tulus layak mendapatkan 'Putih Berbisik'. Mekar putih bersih untuk menunjukkan penyesalan tulus dan harapan akan kedamaian.",
	},
	OccasionGraduation: {
		domain.LanguageEN: "For graduation, go with bright and bold! Sunflowers and orange carnations to honor great achievements.",
		domain.LanguageID: "Untuk kelulusan, pilih yang cerah dan berani! Bunga matahari dan anyelir oranye untuk menghormati pencapaian besar.",
	},
	OccasionSympathy: {
		domain.LanguageEN: "In times of sympathy, white lilies provide comfort and grace. We recommend a soft, respectful arrangement.",
		domain.LanguageID: "Di saat simpati, lili putih memberikan kenyamanan dan keanggunan. Kami merekomendasikan rangkaian yang lembut dan penuh hormat.",
	},
	OccasionDefault: {
		domain.LanguageEN: "Every occasion is special! A classic mix of seasonal pastel roses never fails to bring a smile.",
		domain.LanguageID: "Setiap kesempatan itu istimewa! Campuran klasik mawar pastel musiman tidak pernah gagal membawa senyuman.",
	},
}

// LocalSuggestion returns the canned recommendation for an occasion in
// the given language.
func LocalSuggestion(occasion Occasion, lang domain.Language) string {
	text, ok := suggestions[occasion]
	if !ok {
		text = suggestions[OccasionDefault]
	}
	return text.In(lang)
}
