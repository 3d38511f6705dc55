package model

// Dog is a kennel dog (producer).
type Dog struct {
	ID           int      `json:"id"`
	Name         *string  `json:"name"`
	Gender       *string  `json:"gender"`
	Breed        *string  `json:"breed"`
	Titles       []string `json:"titles"`
	Achievements *string  `json:"achievements"`
	Parents      *string  `json:"parents"`
	ImageURL     *string  `json:"image_url"`
}

// DogRequest is the payload for creating a dog. Every field is optional;
// absent fields are stored as NULL and titles as an empty list.
type DogRequest struct {
	Name         *string  `json:"name" binding:"omitempty,max=255"`
	Gender       *string  `json:"gender" binding:"omitempty,max=50"`
	Breed        *string  `json:"breed" binding:"omitempty,max=255"`
	Titles       []string `json:"titles"`
	Achievements *string  `json:"achievements"`
	Parents      *string  `json:"parents"`
	ImageURL     *string  `json:"image_url"`
}

// UpdateDogRequest replaces every field of the dog identified by ID.
type UpdateDogRequest struct {
	ID int `json:"id" binding:"required,gt=0"`
	DogRequest
}

// ToDog builds a Dog from the request, applying the titles default.
func (r DogRequest) ToDog() *Dog {
	titles := r.Titles
	if titles == nil {
		titles = []string{}
	}
	return &Dog{
		Name:         r.Name,
		Gender:       r.Gender,
		Breed:        r.Breed,
		Titles:       titles,
		Achievements: r.Achievements,
		Parents:      r.Parents,
		ImageURL:     r.ImageURL,
	}
}
