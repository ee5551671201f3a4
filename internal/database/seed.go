package database

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/doualadrive/backend-go/internal/database/models"
)

// Seed inserts the baseline lookup rows and the default agency
// configuration. Every write is a find-or-create on the row's unique key, so
// running it on every startup is safe.
func Seed(db *gorm.DB, logger *slog.Logger) error {
	logger.Info("🌱 [Seed] Inserting baseline data...")

	if err := seedConfiguration(db); err != nil {
		logger.Error("❌ [Seed] Failed to seed configuration", "error", err)
		return err
	}

	lookups := []struct {
		model func(name string) interface{}
		names []string
	}{
		{func(name string) interface{} { return &models.Category{Name: name} },
			[]string{"SUV", "Berline", "Pick-up"}},
		{func(name string) interface{} { return &models.Status{Name: name} },
			[]string{"Disponible", "Bientôt Disponible", "En location", "En maintenance", "Reservé"}},
		{func(name string) interface{} { return &models.CategoryArticle{Name: name} },
			[]string{"Conseils", "Guide", "Voyage"}},
		{func(name string) interface{} { return &models.StatusArticle{Name: name} },
			[]string{"Publié", "Brouillon"}},
		{func(name string) interface{} { return &models.Tag{Name: name} },
			[]string{"Conseil", "Aventure", "Astuce"}},
	}

	for _, lookup := range lookups {
		for _, name := range lookup.names {
			row := lookup.model(name)
			if err := db.Where(row).FirstOrCreate(row).Error; err != nil {
				logger.Error("❌ [Seed] Failed to seed lookup row", "name", name, "error", err)
				return err
			}
		}
	}

	logger.Info("✅ [Seed] Baseline data inserted")
	return nil
}

func seedConfiguration(db *gorm.DB) error {
	configuration := models.Configuration{Name: "Douala Drive"}
	err := db.Where(models.Configuration{Name: "Douala Drive"}).
		Attrs(models.Configuration{
			Address: "Douala, Cameroun",
			Phone:   "+237 00 00 00 00",
			Email:   "contact@doualadrive.com",
		}).
		FirstOrCreate(&configuration).Error
	if err != nil {
		return err
	}

	openingHours := []string{
		"Lundi - Samedi: 08:00 - 18:00",
		"Dimanche: Sur rendez-vous",
	}
	for _, label := range openingHours {
		hour := models.OpeningHour{Label: label, ConfigurationID: configuration.ID}
		err := db.Where(models.OpeningHour{Label: label, ConfigurationID: configuration.ID}).
			FirstOrCreate(&hour).Error
		if err != nil {
			return err
		}
	}

	rates := []models.Rate{
		{
			Title:       "Location en ville",
			Icon:        "lucide-react-icon-apartment",
			Excerpt:     "Pour vos déplacements urbains en toute élégance",
			Price:       "65 000 FCFA",
			Description: "Chauffeur professionnel dédié, Kilométrage illimité en ville, Assurance tous risques incluse, Service personnalisé, Assistance 24/7",
		},
		{
			Title:       "Location hors ville",
			Icon:        "lucide-react-icon-localisation",
			Excerpt:     "Explorez le Cameroun dans le plus grand confort",
			Price:       "80 000 FCFA",
			Description: "Chauffeur professionnel expérimenté, Kilométrage illimité, Assurance tous risques incluse, GPS et assistance routière 24/7, Kit de secours et confort",
		},
		{
			Title:       "Évènements",
			Icon:        "lucide-react-icon-date",
			Excerpt:     "Rendez vos occasions spéciales encore plus mémorables",
			Price:       "85 000 FCFA",
			Description: "Chauffeur professionnel en tenue, Service VIP personnalisé, Décoration sur demande, Flexibilité horaire, Carburant inclus",
		},
		{
			Title:       "Entreprises",
			Icon:        "lucide-react-icon-bag",
			Excerpt:     "Solutions personnalisées pour les professionnels",
			Price:       "Sur devis",
			Description: "Contrats sur mesure, Facturation entreprise, Chauffeurs dédiés, Service prioritaire 24/7, Tarifs préférentiels",
		},
	}
	for _, rate := range rates {
		rate.ConfigurationID = configuration.ID
		var row models.Rate
		err := db.Where(models.Rate{Title: rate.Title, ConfigurationID: configuration.ID}).
			Attrs(rate).
			FirstOrCreate(&row).Error
		if err != nil {
			return err
		}
	}

	return nil
}
