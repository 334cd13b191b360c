package rentalarea

import "context"

type AreaRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (RentalArea, error)
	ExistsByName(ctx context.Context, companyID string, name string) (bool, error)
	Create(ctx context.Context, newArea RentalArea) (RentalArea, error)
	Update(ctx context.Context, id string, companyID string, req UpdateAreaRequest) error
	Delete(ctx context.Context, id string, companyID string) error
	List(ctx context.Context, companyID string) ([]RentalArea, error)
}
