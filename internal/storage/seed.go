package storage

import "github.com/avisbal23/LiftWithAlex-sub000/internal/models"

var (
	_ Storage = (*MemStorage)(nil)
	_ Storage = (*DBStorage)(nil)
)

// Seed inserts demo content on first boot: a handful of quotes and
// affirmations, plus the default navigation settings the UI expects. It is a
// no-op when the store already holds data, so repeated boots do not duplicate
// rows.
func Seed(s Storage) error {
	quotes, err := s.ListQuotes()
	if err != nil {
		return err
	}
	if len(quotes) == 0 {
		demo := []models.Quote{
			{Text: "The body achieves what the mind believes", Author: "Napoleon Hill", IsActive: 1},
			{Text: "Discipline is choosing between what you want now and what you want most", Author: "Abraham Lincoln", IsActive: 1},
			{Text: "Fear = Fuel", Author: "Unknown", IsActive: 1},
		}
		for i := range demo {
			if err := s.CreateQuote(&demo[i]); err != nil {
				return err
			}
		}
	}

	affs, err := s.ListAffirmations()
	if err != nil {
		return err
	}
	if len(affs) == 0 {
		demo := []models.Affirmation{
			{Text: "I am getting stronger every day", Category: "strength", IsActive: 1},
			{Text: "I show up even when it is hard", Category: "discipline", IsActive: 1},
		}
		for i := range demo {
			if err := s.CreateAffirmation(&demo[i]); err != nil {
				return err
			}
		}
	}

	shortcuts, err := s.ListShortcutSettings()
	if err != nil {
		return err
	}
	if len(shortcuts) == 0 {
		defaults := []models.ShortcutSetting{
			{Key: "weight", Label: "Weight", Visible: 1, Order: 1},
			{Key: "steps", Label: "Steps", Visible: 1, Order: 2},
			{Key: "cardio", Label: "Cardio", Visible: 1, Order: 3},
			{Key: "photos", Label: "Photos", Visible: 0, Order: 4},
		}
		for i := range defaults {
			if err := s.CreateShortcutSetting(&defaults[i]); err != nil {
				return err
			}
		}
	}

	tabs, err := s.ListTabSettings()
	if err != nil {
		return err
	}
	if len(tabs) == 0 {
		defaults := []models.TabSetting{
			{Key: "workout", Label: "Workout", Visible: 1, Order: 1},
			{Key: "weight", Label: "Weight", Visible: 1, Order: 2},
			{Key: "blood", Label: "Blood", Visible: 1, Order: 3},
			{Key: "records", Label: "PRs", Visible: 1, Order: 4},
			{Key: "more", Label: "More", Visible: 1, Order: 5},
		}
		for i := range defaults {
			if err := s.CreateTabSetting(&defaults[i]); err != nil {
				return err
			}
		}
	}

	// materialize the user-settings singleton
	_, err = s.GetUserSettings()
	return err
}
