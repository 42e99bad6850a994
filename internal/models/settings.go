package models

import "time"

// ShortcutSetting controls one dashboard shortcut's visibility and position.
type ShortcutSetting struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Key     string `gorm:"size:64;uniqueIndex;not null" json:"key"`
	Label   string `gorm:"size:128" json:"label"`
	Visible int    `json:"visible"`
	Order   int    `gorm:"column:sort_order" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TabSetting controls one navigation tab's visibility and position.
type TabSetting struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Key     string `gorm:"size:64;uniqueIndex;not null" json:"key"`
	Label   string `gorm:"size:128" json:"label"`
	Visible int    `json:"visible"`
	Order   int    `gorm:"column:sort_order" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NavSettingUpdate is the partial update shape shared by shortcut and tab
// settings.
type NavSettingUpdate struct {
	Label   *string `json:"label"`
	Visible *int    `json:"visible" binding:"omitempty,oneof=0 1"`
	Order   *int    `json:"order"`
}

func (u *NavSettingUpdate) ApplyShortcut(s *ShortcutSetting) {
	if u.Label != nil {
		s.Label = *u.Label
	}
	if u.Visible != nil {
		s.Visible = *u.Visible
	}
	if u.Order != nil {
		s.Order = *u.Order
	}
}

func (u *NavSettingUpdate) ApplyTab(t *TabSetting) {
	if u.Label != nil {
		t.Label = *u.Label
	}
	if u.Visible != nil {
		t.Visible = *u.Visible
	}
	if u.Order != nil {
		t.Order = *u.Order
	}
}

// UserSettings is the singleton row of user preferences.
type UserSettings struct {
	ID                string  `gorm:"primaryKey;size:36" json:"id"`
	CurrentBodyWeight float64 `json:"currentBodyWeight"`
	WeightUnit        string  `gorm:"size:8" json:"weightUnit"`
	DistanceUnit      string  `gorm:"size:8" json:"distanceUnit"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserSettingsUpdate struct {
	CurrentBodyWeight *float64 `json:"currentBodyWeight" binding:"omitempty,min=0"`
	WeightUnit        *string  `json:"weightUnit" binding:"omitempty,oneof=lbs kg"`
	DistanceUnit      *string  `json:"distanceUnit" binding:"omitempty,oneof=miles km"`
}

func (u *UserSettingsUpdate) Apply(s *UserSettings) {
	if u.CurrentBodyWeight != nil {
		s.CurrentBodyWeight = *u.CurrentBodyWeight
	}
	if u.WeightUnit != nil {
		s.WeightUnit = *u.WeightUnit
	}
	if u.DistanceUnit != nil {
		s.DistanceUnit = *u.DistanceUnit
	}
}
