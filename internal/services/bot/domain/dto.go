package domain

import "time"

// IngestMessageInput is a submissions channel message posted over HTTP
// swagger:model
type IngestMessageInput struct {
	ID        string    `json:"id,omitempty"        validate:"omitempty,max=64"`
	AuthorID  string    `json:"author_id"           validate:"required,snowflake"      example:"208460737180467200"`
	Content   string    `json:"content"             validate:"required,max=4000"       example:"Wordle 753 4/6\n\n⬜⬜🟩⬜⬜\n⬜🟨🟩⬜⬜\n⬜🟩🟩🟨⬜\n🟩🟩🟩🟩🟩"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Replay    bool      `json:"replay,omitempty"`
	Deliver   bool      `json:"deliver,omitempty"`
}

// IngestMessageOutput lists what the bot would say
type IngestMessageOutput struct {
	MessageID string  `json:"message_id"`
	Replies   []Reply `json:"replies"`
	Delivered bool    `json:"delivered"`
}

// IngestAnnouncementInput is an announcement channel text posted over HTTP;
// author_id defaults to the bot itself
type IngestAnnouncementInput struct {
	AuthorID string `json:"author_id,omitempty" validate:"omitempty,snowflake"`
	Content  string `json:"content"             validate:"required,max=4000" example:"Wordle 681 winner is Jonathan! Who scored 2/6 (97).\nToday's answer was RANGE"`
}

// IngestAnnouncementOutput reports whether the text was recognised
type IngestAnnouncementOutput struct {
	Recognized bool   `json:"recognized"`
	Day        int    `json:"day,omitempty"`
	Winner     string `json:"winner,omitempty"`
	Answer     string `json:"answer,omitempty"`
}

// RoundupInput is a batch of announcement texts to aggregate
type RoundupInput struct {
	Year  int      `json:"year"  validate:"required,min=2021,max=9999" example:"2024"`
	Texts []string `json:"texts" validate:"required,min=1,max=5000,dive,required"`
}

// RoundupOutput is the rendered season report
type RoundupOutput struct {
	Year   int    `json:"year"`
	Days   int    `json:"days"`
	Report string `json:"report"`
}
