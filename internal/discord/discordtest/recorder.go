package discordtest

type Message struct {
	ChannelID string
	Contents  string
}

type Response struct {
	Message *Message
}

type ResponseRecorder struct {
	Responses []Response
}

func NewResponseRecorder() *ResponseRecorder {
	return new(ResponseRecorder)
}

func (r *ResponseRecorder) SendMessageToChannel(channelID string, msg string) error {
	r.Responses = append(r.Responses, Response{
		Message: &Message{ChannelID: channelID, Contents: msg},
	})
	return nil
}
