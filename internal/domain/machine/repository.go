package machine

import "context"

type MachineRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Machine, error)
	Create(ctx context.Context, newMachine Machine) (Machine, error)
	Update(ctx context.Context, id string, companyID string, req UpdateMachineRequest) error
	Delete(ctx context.Context, id string, companyID string) error
	List(ctx context.Context, companyID string) ([]Machine, error)
}
