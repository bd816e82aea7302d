package generator

import "context"

// Generator produces text from a fixed instruction and a user body.
// Implementations make exactly one request per call and decode greedily.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}
