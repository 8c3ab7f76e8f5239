package entity

const (
	MessageEndState      = "board at end state"
	MessageInvalidBoard  = "invalid board"
	MessageInvalidPlayer = "invalid player"
)

// MoveRequest - one position to advise on.
type MoveRequest struct {
	Board  string `json:"board"`
	Player string `json:"player"`
}

// MoveResponse - either the ranked indexes or a status message, never both.
type MoveResponse struct {
	Indexes []int  `json:"indexes,omitempty"`
	Message string `json:"message,omitempty"`
}

func NewIndexesResponse(indexes []int) MoveResponse {
	return MoveResponse{Indexes: indexes}
}

func NewMessageResponse(message string) MoveResponse {
	return MoveResponse{Message: message}
}
