package post

type CreateReq struct {
	Content string   `json:"content" validate:"required"`
	Media   []string `json:"media"`
	Tags    []string `json:"tags"`
}

// Event is published to Kafka after a post is created.
type Event struct {
	ID            string   `json:"id"`
	AuthorAddress string   `json:"author_address"`
	Content       string   `json:"content"`
	Tags          []string `json:"tags"`
	CreatedAt     string   `json:"created_at"`
}
