package models

type QuizOption struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type QuizQuestion struct {
	WordID       int64        `json:"wordId"`
	QuestionText string       `json:"questionText"`
	Options      []QuizOption `json:"options"`
	CorrectID    int64        `json:"correctId"`
}
