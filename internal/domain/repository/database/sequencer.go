package database

import "context"

// Sequencer hands out monotonically increasing numeric ids per sequence name.
type Sequencer interface {
	NextID(ctx context.Context, sequence string) (int64, error)
}
