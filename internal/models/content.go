package models

import "time"

// Quote is a motivational quote shown on the dashboard.
type Quote struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	Author   string `gorm:"size:128" json:"author"`
	IsActive int    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type QuoteInsert struct {
	Text     string `json:"text" binding:"required"`
	Author   string `json:"author"`
	IsActive *int   `json:"isActive" binding:"omitempty,oneof=0 1"`
}

type QuoteUpdate struct {
	Text     *string `json:"text"`
	Author   *string `json:"author"`
	IsActive *int    `json:"isActive" binding:"omitempty,oneof=0 1"`
}

func (u *QuoteUpdate) Apply(q *Quote) {
	if u.Text != nil {
		q.Text = *u.Text
	}
	if u.Author != nil {
		q.Author = *u.Author
	}
	if u.IsActive != nil {
		q.IsActive = *u.IsActive
	}
}

// Affirmation is a short spoken or written affirmation. AudioURL points at a
// recorded clip when one exists.
type Affirmation struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	Category string `gorm:"size:32" json:"category"`
	IsActive int    `json:"isActive"`
	AudioURL string `gorm:"size:255" json:"audioUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AffirmationInsert struct {
	Text     string `json:"text" binding:"required"`
	Category string `json:"category"`
	IsActive *int   `json:"isActive" binding:"omitempty,oneof=0 1"`
	AudioURL string `json:"audioUrl"`
}

type AffirmationUpdate struct {
	Text     *string `json:"text"`
	Category *string `json:"category"`
	IsActive *int    `json:"isActive" binding:"omitempty,oneof=0 1"`
	AudioURL *string `json:"audioUrl"`
}

func (u *AffirmationUpdate) Apply(a *Affirmation) {
	if u.Text != nil {
		a.Text = *u.Text
	}
	if u.Category != nil {
		a.Category = *u.Category
	}
	if u.IsActive != nil {
		a.IsActive = *u.IsActive
	}
	if u.AudioURL != nil {
		a.AudioURL = *u.AudioURL
	}
}

// Thought is a free-form journal note.
type Thought struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Content string `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ThoughtInsert struct {
	Content string `json:"content" binding:"required"`
}

type ThoughtUpdate struct {
	Content *string `json:"content"`
}

func (u *ThoughtUpdate) Apply(t *Thought) {
	if u.Content != nil {
		t.Content = *u.Content
	}
}

// Supplement is one item in the supplement stack.
type Supplement struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Name      string `gorm:"size:128;not null" json:"name"`
	Dosage    string `gorm:"size:64" json:"dosage"`
	Unit      string `gorm:"size:32" json:"unit"`
	TimeOfDay string `gorm:"size:32" json:"timeOfDay"`
	Notes     string `gorm:"type:text" json:"notes"`
	IsActive  int    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SupplementInsert struct {
	Name      string `json:"name" binding:"required,max=128"`
	Dosage    string `json:"dosage"`
	Unit      string `json:"unit"`
	TimeOfDay string `json:"timeOfDay"`
	Notes     string `json:"notes"`
	IsActive  *int   `json:"isActive" binding:"omitempty,oneof=0 1"`
}

type SupplementUpdate struct {
	Name      *string `json:"name" binding:"omitempty,max=128"`
	Dosage    *string `json:"dosage"`
	Unit      *string `json:"unit"`
	TimeOfDay *string `json:"timeOfDay"`
	Notes     *string `json:"notes"`
	IsActive  *int    `json:"isActive" binding:"omitempty,oneof=0 1"`
}

func (u *SupplementUpdate) Apply(s *Supplement) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Dosage != nil {
		s.Dosage = *u.Dosage
	}
	if u.Unit != nil {
		s.Unit = *u.Unit
	}
	if u.TimeOfDay != nil {
		s.TimeOfDay = *u.TimeOfDay
	}
	if u.Notes != nil {
		s.Notes = *u.Notes
	}
	if u.IsActive != nil {
		s.IsActive = *u.IsActive
	}
}

// PhotoProgress is one progress photo reference. The image itself lives
// wherever PhotoURL points; the server only stores the reference.
type PhotoProgress struct {
	ID       string    `gorm:"primaryKey;size:36" json:"id"`
	Date     time.Time `gorm:"index;not null" json:"date"`
	PhotoURL string    `gorm:"size:255;not null" json:"photoUrl"`
	Weight   float64   `json:"weight"`
	Notes    string    `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PhotoProgressInsert struct {
	Date     string  `json:"date" binding:"required"`
	PhotoURL string  `json:"photoUrl" binding:"required"`
	Weight   float64 `json:"weight" binding:"min=0"`
	Notes    string  `json:"notes"`
}

type PhotoProgressUpdate struct {
	Date     *string  `json:"date"`
	PhotoURL *string  `json:"photoUrl"`
	Weight   *float64 `json:"weight" binding:"omitempty,min=0"`
	Notes    *string  `json:"notes"`

	ParsedDate *time.Time `json:"-"`
}

func (u *PhotoProgressUpdate) Apply(p *PhotoProgress) {
	if u.ParsedDate != nil {
		p.Date = *u.ParsedDate
	}
	if u.PhotoURL != nil {
		p.PhotoURL = *u.PhotoURL
	}
	if u.Weight != nil {
		p.Weight = *u.Weight
	}
	if u.Notes != nil {
		p.Notes = *u.Notes
	}
}
