package domain

// Language is a supported display language code
type Language string

const (
	LanguageEN Language = "EN"
	LanguageID Language = "ID"
)

// ParseLanguage maps a caller-supplied code to a supported language.
// Anything other than EN resolves to ID, the shop's home language.
func ParseLanguage(code string) Language {
	if Language(code) == LanguageEN {
		return LanguageEN
	}
	return LanguageID
}

// LocalizedText holds one string per supported language
type LocalizedText map[Language]string

// In returns the text for the given language, falling back to ID and
// then to any available entry when the requested language is missing.
func (t LocalizedText) In(lang Language) string {
	if s, ok := t[lang]; ok {
		return s
	}
	if s, ok := t[LanguageID]; ok {
		return s
	}
	for _, s := range t {
		return s
	}
	return ""
}

// Product represents a catalog entry. Price is in the smallest currency
// unit (IDR, no decimals). Image may be a remote URL or a data URI.
type Product struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Price       int64         `json:"price"`
	Image       string        `json:"image"`
	Category    string        `json:"category"`
}

// CartItem is a product pending checkout with its selected quantity.
// Quantity is never below 1.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
