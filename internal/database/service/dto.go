package service

import (
	"time"

	"github.com/doualadrive/backend-go/internal/database/models"
)

// unknownRef is substituted when an eager join failed to resolve, so clients
// always receive a {id, name} pair.
const unknownRef = "Inconnu"

// NamedRef is a flattened reference to a lookup row.
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuthorRef is a flattened reference to the user who wrote an article.
type AuthorRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// VehicleDTO is the response shape of a vehicle with its joins flattened.
type VehicleDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Brand       string     `json:"brand"`
	Category    NamedRef   `json:"category"`
	Color       string     `json:"color"`
	Image       *string    `json:"image"`
	Video       *string    `json:"video"`
	Price       float64    `json:"price"`
	Status      NamedRef   `json:"status"`
	Features    *string    `json:"features"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt"`
}

func toVehicleDTO(vehicle *models.Vehicle) VehicleDTO {
	dto := VehicleDTO{
		ID:          vehicle.ID,
		Name:        vehicle.Name,
		Brand:       vehicle.Brand,
		Category:    NamedRef{ID: vehicle.CategoryID, Name: unknownRef},
		Color:       vehicle.Color,
		Image:       vehicle.Image,
		Video:       vehicle.Video,
		Price:       vehicle.Price,
		Status:      NamedRef{ID: vehicle.StatusID, Name: unknownRef},
		Features:    vehicle.Features,
		Description: vehicle.Description,
		CreatedAt:   vehicle.CreatedAt,
		UpdatedAt:   vehicle.UpdatedAt,
	}
	if vehicle.Category != nil {
		dto.Category = NamedRef{ID: vehicle.Category.ID, Name: vehicle.Category.Name}
	}
	if vehicle.Status != nil {
		dto.Status = NamedRef{ID: vehicle.Status.ID, Name: vehicle.Status.Name}
	}
	if vehicle.DeletedAt.Valid {
		dto.DeletedAt = &vehicle.DeletedAt.Time
	}
	return dto
}

// ArticleDTO is the response shape of an article with category, status,
// author and tags flattened.
type ArticleDTO struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Category  NamedRef   `json:"category"`
	Image     *string    `json:"image"`
	Excerpt   *string    `json:"excerpt"`
	Status    NamedRef   `json:"status"`
	Content   string     `json:"content"`
	Author    AuthorRef  `json:"author"`
	Tags      []NamedRef `json:"tags"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

func toArticleDTO(article *models.Article) ArticleDTO {
	dto := ArticleDTO{
		ID:        article.ID,
		Title:     article.Title,
		Slug:      article.Slug,
		Category:  NamedRef{ID: article.CategoryID, Name: unknownRef},
		Image:     article.Image,
		Excerpt:   article.Excerpt,
		Status:    NamedRef{ID: article.StatusID, Name: unknownRef},
		Content:   article.Content,
		Author:    AuthorRef{ID: article.AuthorID, Name: unknownRef, Email: ""},
		Tags:      make([]NamedRef, 0, len(article.Tags)),
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
	if article.Category != nil {
		dto.Category = NamedRef{ID: article.Category.ID, Name: article.Category.Name}
	}
	if article.Status != nil {
		dto.Status = NamedRef{ID: article.Status.ID, Name: article.Status.Name}
	}
	if article.Author != nil {
		dto.Author = AuthorRef{ID: article.Author.ID, Name: article.Author.Name, Email: article.Author.Email}
	}
	for _, tag := range article.Tags {
		dto.Tags = append(dto.Tags, NamedRef{ID: tag.ID, Name: tag.Name})
	}
	if article.DeletedAt.Valid {
		dto.DeletedAt = &article.DeletedAt.Time
	}
	return dto
}

// UserDTO is the response shape of a local user profile.
type UserDTO struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	Phone          *string    `json:"phone"`
	FidelityPoints int        `json:"fidelity_points"`
	Role           string     `json:"role"`
	ProfilePicture *string    `json:"profilePicture"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	DeletedAt      *time.Time `json:"deletedAt"`
}

func toUserDTO(user *models.User) UserDTO {
	dto := UserDTO{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		Phone:          user.Phone,
		FidelityPoints: user.FidelityPoints,
		Role:           user.Role,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
	if user.DeletedAt.Valid {
		dto.DeletedAt = &user.DeletedAt.Time
	}
	return dto
}

// OpeningHourDTO is one opening-hours line of a configuration response.
type OpeningHourDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// RateDTO is one pricing offer of a configuration response.
type RateDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Excerpt     string `json:"excerpt"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// ConfigurationDTO is the response shape of a configuration aggregate.
type ConfigurationDTO struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Address      string           `json:"address"`
	Phone        string           `json:"phone"`
	Email        string           `json:"email"`
	OpeningHours []OpeningHourDTO `json:"openingHours"`
	Rates        []RateDTO        `json:"rates"`
}

func toConfigurationDTO(configuration *models.Configuration, openingHours []models.OpeningHour, rates []models.Rate) ConfigurationDTO {
	dto := ConfigurationDTO{
		ID:           configuration.ID,
		Name:         configuration.Name,
		Address:      configuration.Address,
		Phone:        configuration.Phone,
		Email:        configuration.Email,
		OpeningHours: make([]OpeningHourDTO, 0, len(openingHours)),
		Rates:        make([]RateDTO, 0, len(rates)),
	}
	for _, hour := range openingHours {
		dto.OpeningHours = append(dto.OpeningHours, OpeningHourDTO{ID: hour.ID, Label: hour.Label})
	}
	for _, rate := range rates {
		dto.Rates = append(dto.Rates, RateDTO{
			ID:          rate.ID,
			Title:       rate.Title,
			Icon:        rate.Icon,
			Excerpt:     rate.Excerpt,
			Price:       rate.Price,
			Description: rate.Description,
		})
	}
	return dto
}
