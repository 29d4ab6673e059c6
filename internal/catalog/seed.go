package catalog

import "petal-atelier/internal/domain"

// DefaultCatalog returns the products shown before an admin has made any
// catalog change. It is served read-through: nothing is persisted until
// the first mutation.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{
			ID: "p1",
			Name: domain.LocalizedText{
				domain.LanguageEN: "Royal Crimson Bouquet",
				domain.LanguageID: "Buket Merah Kerajaan",
			},
			Description: domain.LocalizedText{
				domain.LanguageEN: "Deep red roses for eternal passion.",
				domain.LanguageID: "Mawar merah tua untuk gairah abadi.",
			},
			Price:    450000,
			Image:    "https://images.unsplash.com/photo-1561181286-d3fee7d55364?q=80&w=800",
			Category: "Classic",
		},
		{
			ID: "p2",
			Name: domain.LocalizedText{
				domain.LanguageEN: "Pastel Dreams",
				domain.LanguageID: "Mimpi Pastel",
			},
			Description: domain.LocalizedText{
				domain.LanguageEN: "A soft mix of lilies and carnations.",
				domain.LanguageID: "Campuran lembut bunga bakung dan anyelir.",
			},
			Price:    325000,
			Image:    "https://images.unsplash.com/photo-1596073413908-43524c08ee3a?q=80&w=800",
			Category: "Modern",
		},
		{
			ID: "p3",
			Name: domain.LocalizedText{
				domain.LanguageEN: "Morning Sunshine",
				domain.LanguageID: "Mentari Pagi",
			},
			Description: domain.LocalizedText{
				domain.LanguageEN: "Bright sunflowers to light up any room.",
				domain.LanguageID: "Bunga matahari cerah untuk mencerahkan ruangan.",
			},
			Price:    280000,
			Image:    "https://images.unsplash.com/photo-1512423336473-b3469396e953?q=80&w=800",
			Category: "Joy",
		},
		{
			ID: "p4",
			Name: domain.LocalizedText{
				domain.LanguageEN: "Whispering White",
				domain.LanguageID: "Putih Berbisik",
			},
			Description: domain.LocalizedText{
				domain.LanguageEN: "Elegant white tulips for pure beginnings.",
				domain.LanguageID: "Tulip putih elegan untuk awal yang murni.",
			},
			Price:    380000,
			Image:    "https://images.unsplash.com/photo-1589129140837-67287c22521b?q=80&w=800",
			Category: "Elegance",
		},
	}
}
