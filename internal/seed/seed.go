// Package seed fills an empty kennel with plausible demo content.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/service"
)

// Window litter birth dates are drawn from.
var (
	bornAfter  = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	bornBefore = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
)

// Generator produces request payloads. The same seed yields the same data.
type Generator struct {
	f *gofakeit.Faker
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{f: gofakeit.New(seed)}
}

func (g *Generator) Dog() model.DogRequest {
	name := g.f.PetName()
	gender := g.f.RandomString([]string{"male", "female"})
	breed := g.f.Dog()
	achievements := g.f.SentenceSimple()
	parents := g.f.PetName() + " x " + g.f.PetName()
	image := g.f.URL() + "/" + strings.ToLower(name) + ".jpg"

	titles := make([]string, 0, 3)
	for i := g.f.Number(0, 3); i > 0; i-- {
		titles = append(titles, g.f.RandomString([]string{"CH RUS", "JCH RUS", "CH RKF", "GRCH", "BIS"}))
	}

	return model.DogRequest{
		Name:         &name,
		Gender:       &gender,
		Breed:        &breed,
		Titles:       titles,
		Achievements: &achievements,
		Parents:      &parents,
		ImageURL:     &image,
	}
}

func (g *Generator) Litter() model.LitterRequest {
	name := "Litter " + strings.ToUpper(g.f.Letter())
	born := g.f.DateRange(bornAfter, bornBefore).Format(model.InputDateLayout)
	available := g.f.Bool()
	parents := g.f.PetName() + " x " + g.f.PetName()
	description := g.f.SentenceSimple()

	return model.LitterRequest{
		Name:        &name,
		BornDate:    &born,
		Available:   &available,
		Parents:     &parents,
		Description: &description,
	}
}

func (g *Generator) Photo() model.PhotoRequest {
	image := g.f.URL() + "/photo.jpg"
	title := g.f.PetName()
	description := g.f.SentenceSimple()

	return model.PhotoRequest{ImageURL: &image, Title: &title, Description: &description}
}

func (g *Generator) Message() model.MessageRequest {
	name := g.f.Name()
	email := g.f.Email()
	phone := g.f.Phone()
	message := g.f.SentenceSimple()

	return model.MessageRequest{Name: &name, Email: &email, Phone: &phone, Message: &message}
}

// Services are the write paths Populate goes through.
type Services struct {
	Dogs     service.DogService
	Litters  service.LitterService
	Gallery  service.GalleryService
	Messages service.MessageService
}

// Counts says how many rows of each kind to create.
type Counts struct {
	Dogs     int
	Litters  int
	Photos   int
	Messages int
}

// Populate creates c rows through s and returns how many were created before
// the first failure.
func Populate(ctx context.Context, s Services, g *Generator, c Counts) (Counts, error) {
	var done Counts

	for ; done.Dogs < c.Dogs; done.Dogs++ {
		if _, err := s.Dogs.CreateDog(ctx, g.Dog()); err != nil {
			return done, fmt.Errorf("seed dog %d: %w", done.Dogs+1, err)
		}
	}
	for ; done.Litters < c.Litters; done.Litters++ {
		if _, err := s.Litters.CreateLitter(ctx, g.Litter()); err != nil {
			return done, fmt.Errorf("seed litter %d: %w", done.Litters+1, err)
		}
	}
	for ; done.Photos < c.Photos; done.Photos++ {
		if _, err := s.Gallery.AddPhoto(ctx, g.Photo()); err != nil {
			return done, fmt.Errorf("seed photo %d: %w", done.Photos+1, err)
		}
	}
	for ; done.Messages < c.Messages; done.Messages++ {
		if _, err := s.Messages.SendMessage(ctx, g.Message()); err != nil {
			return done, fmt.Errorf("seed message %d: %w", done.Messages+1, err)
		}
	}
	return done, nil
}
