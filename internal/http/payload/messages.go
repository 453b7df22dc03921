package payload

import (
	"chirper/internal/core"

	"github.com/jellydator/validation"
)

type PostMessageRequest struct {
	MessageText string `json:"messageText"`
	PostedBy    uint   `json:"postedBy"`
}

func (m PostMessageRequest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.MessageText, validation.Required, validation.RuneLength(1, 255)),
	)
}

func (m PostMessageRequest) ToMessage() core.Message {
	return core.Message{
		MessageText: m.MessageText,
		PostedBy:    m.PostedBy,
	}
}

// MessageTextRequest carries just the replacement text for a PATCH. No field
// rules here: the service checks message existence before text validity.
type MessageTextRequest struct {
	MessageText string `json:"messageText"`
}
