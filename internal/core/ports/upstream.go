package ports

import (
	"context"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
)

// Resource gateways for the proxied Zoo Arcadia collections. Reads on public
// collections carry no token; every mutation forwards the caller's bearer
// token so the backend stays the authority for privileged operations.

type AnimalGateway interface {
	ListAnimals(ctx context.Context) ([]domain.Animal, error)
	GetAnimal(ctx context.Context, id string) (*domain.Animal, error)
	CreateAnimal(ctx context.Context, bearer string, animal domain.Animal) (*domain.Animal, error)
	UpdateAnimal(ctx context.Context, bearer, id string, animal domain.Animal) (*domain.Animal, error)
	DeleteAnimal(ctx context.Context, bearer, id string) error
}

type HabitatGateway interface {
	ListHabitats(ctx context.Context) ([]domain.Habitat, error)
	GetHabitat(ctx context.Context, id string) (*domain.Habitat, error)
	CreateHabitat(ctx context.Context, bearer string, habitat domain.Habitat) (*domain.Habitat, error)
	UpdateHabitat(ctx context.Context, bearer, id string, habitat domain.Habitat) (*domain.Habitat, error)
	DeleteHabitat(ctx context.Context, bearer, id string) error
}

type ZooServiceGateway interface {
	ListServices(ctx context.Context) ([]domain.ZooService, error)
	CreateService(ctx context.Context, bearer string, svc domain.ZooService) (*domain.ZooService, error)
	UpdateService(ctx context.Context, bearer, id string, svc domain.ZooService) (*domain.ZooService, error)
	DeleteService(ctx context.Context, bearer, id string) error
}

type VetReportGateway interface {
	ListReports(ctx context.Context, bearer string) ([]domain.VetReport, error)
	ReportsByAnimal(ctx context.Context, bearer, animalID string) ([]domain.VetReport, error)
	CreateReport(ctx context.Context, bearer, animalID string, report domain.VetReport) (*domain.VetReport, error)
	UpdateReport(ctx context.Context, bearer, id string, report domain.VetReport) (*domain.VetReport, error)
	DeleteReport(ctx context.Context, bearer, id string) error
}

type FoodRecordGateway interface {
	RecordsByAnimal(ctx context.Context, bearer, animalID string) ([]domain.FoodRecord, error)
	CreateRecord(ctx context.Context, bearer, animalID string, record domain.FoodRecord) (*domain.FoodRecord, error)
	UpdateRecord(ctx context.Context, bearer, id string, record domain.FoodRecord) (*domain.FoodRecord, error)
	DeleteRecord(ctx context.Context, bearer, id string) error
}

type ReviewGateway interface {
	ListReviews(ctx context.Context) ([]domain.Review, error)
	CreateReview(ctx context.Context, review domain.Review) (*domain.Review, error)
	ToggleReviewVisibility(ctx context.Context, bearer, id string) (*domain.Review, error)
}

type ContactGateway interface {
	SendContact(ctx context.Context, msg domain.ContactMessage) error
}
