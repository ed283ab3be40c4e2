package protodto

// QuestionType is a closed set; the renderer and validator to apply follow
// from it.
type QuestionType string

const (
	QuestionTypeText         QuestionType = "text"
	QuestionTypeNumber       QuestionType = "number"
	QuestionTypeSingleChoice QuestionType = "single_choice"
	QuestionTypeMultiChoice  QuestionType = "multi_choice"
	QuestionTypeDropdown     QuestionType = "dropdown"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeText, QuestionTypeNumber, QuestionTypeSingleChoice, QuestionTypeMultiChoice, QuestionTypeDropdown:
		return true
	}
	return false
}

// HasOptions reports whether the question carries a predefined option list.
func (t QuestionType) HasOptions() bool {
	switch t {
	case QuestionTypeSingleChoice, QuestionTypeMultiChoice, QuestionTypeDropdown:
		return true
	}
	return false
}

type Question struct {
	ID         string       `json:"id"`
	FormID     string       `json:"form_id"`
	TextEs     string       `json:"text_es"`
	TextEn     string       `json:"text_en"`
	Type       QuestionType `json:"type"`
	IsRequired bool         `json:"is_required"`
	Options    []Option     `json:"options,omitempty"`
}

type Option struct {
	ID     string `json:"id"`
	TextEs string `json:"text_es"`
	TextEn string `json:"text_en"`
	// IsOther marks the synthetic "Other, specify" option appended to some
	// choice questions.
	IsOther bool `json:"is_other"`
}
