package nearby

import (
	"context"
)

type SearchUseCase interface {
	Execute(ctx context.Context, input SearchInput) (SearchOutput, error)
}
