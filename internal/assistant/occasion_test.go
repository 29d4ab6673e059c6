package assistant

import (
	"testing"

	"petal-atelier/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDetectOccasion(t *testing.T) {
	tests := []struct {
		prompt string
		want   Occasion
	}{
		{"my best friend's wedding is next week", OccasionWedding},
		{"It's her BIRTHDAY tomorrow", OccasionBirthday},
		{"our 10th anniversary", OccasionAnniversary},
		{"something romantic, full of romance", OccasionRomantic},
		{"I'm so sorry, I need to apologize", OccasionApology},
		{"she just graduated!", OccasionGraduation},
		{"a sad loss in the family", OccasionSympathy},
		{"they're getting married", OccasionWedding},
		{"just because", OccasionDefault},
		{"", OccasionDefault},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectOccasion(tt.prompt))
		})
	}
}

func TestDetectOccasionFirstRuleWins(t *testing.T) {
	// Contains both "love" and "sad"; the romantic rule is tested
	// before the sympathy rule, so it wins.
	assert.Equal(t, OccasionRomantic, DetectOccasion("sad but still in love"))

	// "birth" outranks everything else
	assert.Equal(t, OccasionBirthday, DetectOccasion("a birthday during wedding season"))
}

func TestLocalSuggestion(t *testing.T) {
	wedding := LocalSuggestion(OccasionWedding, domain.LanguageID)
	assert.Contains(t, wedding, "Putih Berbisik")

	weddingEN := LocalSuggestion(OccasionWedding, domain.LanguageEN)
	assert.Contains(t, weddingEN, "Whispering White")

	// Unknown occasions resolve to the default text
	assert.Equal(t,
		LocalSuggestion(OccasionDefault, domain.LanguageEN),
		LocalSuggestion(Occasion("mystery"), domain.LanguageEN),
	)
}

func TestEveryOccasionHasBothLanguages(t *testing.T) {
	occasions := []Occasion{
		OccasionBirthday, OccasionWedding, OccasionAnniversary, OccasionRomantic,
		OccasionApology, OccasionGraduation, OccasionSympathy, OccasionDefault,
	}
	for _, o := range occasions {
		assert.NotEmpty(t, LocalSuggestion(o, domain.LanguageEN), "EN text for %s", o)
		assert.NotEmpty(t, LocalSuggestion(o, domain.LanguageID), "ID text for %s", o)
	}
}
