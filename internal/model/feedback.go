package model

import "time"

// Feedback represents a submitted feedback form.
// WhatDidYouTry is never empty on a stored record. WhatsappNumber is a
// 10-digit numeral whenever WhatsappUpdates is "Yes". Records are immutable,
// so UpdatedAt always equals CreatedAt.
type Feedback struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Mobile            string    `json:"mobile"`
	OverallExperience string    `json:"overallExperience"`
	WhatDidYouTry     []string  `json:"whatDidYouTry"`
	Comments          string    `json:"comments"`
	FoodQuality       string    `json:"foodQuality"`
	ServiceStaff      string    `json:"serviceStaff"`
	WhatsappUpdates   string    `json:"whatsappUpdates"`
	WhatsappNumber    string    `json:"whatsappNumber"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
