package adapter

import "encoding/json"

// JSON wraps payload encoding so callers can be tested against corrupt
// snapshots and malformed vendor responses
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	// Marshal encodes cache snapshots, search results and score reason lists
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes payloads produced by Marshal or returned by vendor APIs
	Unmarshal(data []byte, v any) error
}

// RealJSON implements JSON on encoding/json
type RealJSON struct{}

// NewJSON creates a new real JSON implementation
func NewJSON() JSON {
	return RealJSON{}
}

func (RealJSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (RealJSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
