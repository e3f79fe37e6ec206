package api

// Common request/response structures

// DrillRequest defines the payload for starting a practice drill.
type DrillRequest struct {
	Mode string `json:"mode" validate:"required"`
	// Count is the number of questions requested; 0 falls back to the
	// configured default session size.
	Count int `json:"count" validate:"gte=0,lte=100"`
}

// AnswerRequest defines the payload for reporting one answered question.
type AnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required"`
	Mode       string `json:"mode"        validate:"required"`
	Correct    *bool  `json:"correct"     validate:"required"`
}

// SessionRequest defines the payload for reporting a finished session.
type SessionRequest struct {
	Mode    string `json:"mode"    validate:"required"`
	Total   int    `json:"total"   validate:"gte=0"`
	Correct int    `json:"correct" validate:"gte=0"`
}

// DrillResponse defines the successful response for the drill endpoint.
type DrillResponse struct {
	Mode      string     `json:"mode"`
	Questions []Question `json:"questions"`
}

// Question is one exercise in a drill response.
type Question struct {
	ID             string   `json:"id"`
	Mode           string   `json:"mode"`
	Word           string   `json:"word,omitempty"`
	Translation    string   `json:"translation,omitempty"`
	SentenceBefore string   `json:"sentence_before,omitempty"`
	SentenceAfter  string   `json:"sentence_after,omitempty"`
	Answer         string   `json:"answer"`
	Options        []string `json:"options"`
}
