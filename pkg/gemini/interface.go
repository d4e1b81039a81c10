package gemini

import "context"

// IGemini is the Gemini generation client.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
