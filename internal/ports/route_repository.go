package ports

import (
	"context"

	"github.com/bnema/witrix-cli/internal/domain"
)

type RouteRepository interface {
	Load(ctx context.Context) (domain.RouteTable, error)
	Save(ctx context.Context, table domain.RouteTable) error
}
