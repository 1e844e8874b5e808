package abstraction

import "context"

type Site interface {
	Version() string
	Title(ctx context.Context) (string, error)
}
