package rentalarea

import (
	"context"

	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
)

type AreaService interface {
	Create(ctx context.Context, ident auth.Identity, req CreateAreaRequest) (AreaResponse, error)
	Get(ctx context.Context, ident auth.Identity, id string) (AreaResponse, error)
	List(ctx context.Context, ident auth.Identity) ([]AreaResponse, error)
	Update(ctx context.Context, ident auth.Identity, id string, req UpdateAreaRequest) (AreaResponse, error)
	Delete(ctx context.Context, ident auth.Identity, id string) error
}
