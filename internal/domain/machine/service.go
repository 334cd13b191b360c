package machine

import (
	"context"

	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
)

type MachineService interface {
	Create(ctx context.Context, ident auth.Identity, req CreateMachineRequest) (MachineResponse, error)
	Get(ctx context.Context, ident auth.Identity, id string) (MachineResponse, error)
	List(ctx context.Context, ident auth.Identity) ([]MachineResponse, error)
	Update(ctx context.Context, ident auth.Identity, id string, req UpdateMachineRequest) (MachineResponse, error)
	Delete(ctx context.Context, ident auth.Identity, id string) error
}
