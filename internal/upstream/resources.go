package upstream

import (
	"context"
	"net/http"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
)

// ── Animals ───────────────────────────────────────────────────────────────────

func (c *Client) ListAnimals(ctx context.Context) ([]domain.Animal, error) {
	var out []domain.Animal
	if err := c.do(ctx, "animals", http.MethodGet, "/animals", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAnimal(ctx context.Context, id string) (*domain.Animal, error) {
	var out domain.Animal
	if err := c.do(ctx, "animals", http.MethodGet, "/animals/"+id, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAnimal(ctx context.Context, bearer string, animal domain.Animal) (*domain.Animal, error) {
	var out domain.Animal
	if err := c.do(ctx, "animals", http.MethodPost, "/animals", bearer, animal, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAnimal(ctx context.Context, bearer, id string, animal domain.Animal) (*domain.Animal, error) {
	var out domain.Animal
	if err := c.do(ctx, "animals", http.MethodPut, "/animals/"+id, bearer, animal, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAnimal(ctx context.Context, bearer, id string) error {
	return c.do(ctx, "animals", http.MethodDelete, "/animals/"+id, bearer, nil, nil)
}

// ── Habitats ──────────────────────────────────────────────────────────────────

func (c *Client) ListHabitats(ctx context.Context) ([]domain.Habitat, error) {
	var out []domain.Habitat
	if err := c.do(ctx, "habitats", http.MethodGet, "/habitats", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetHabitat(ctx context.Context, id string) (*domain.Habitat, error) {
	var out domain.Habitat
	if err := c.do(ctx, "habitats", http.MethodGet, "/habitats/"+id, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateHabitat(ctx context.Context, bearer string, habitat domain.Habitat) (*domain.Habitat, error) {
	var out domain.Habitat
	if err := c.do(ctx, "habitats", http.MethodPost, "/habitats", bearer, habitat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateHabitat(ctx context.Context, bearer, id string, habitat domain.Habitat) (*domain.Habitat, error) {
	var out domain.Habitat
	if err := c.do(ctx, "habitats", http.MethodPut, "/habitats/"+id, bearer, habitat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteHabitat(ctx context.Context, bearer, id string) error {
	return c.do(ctx, "habitats", http.MethodDelete, "/habitats/"+id, bearer, nil, nil)
}

// ── Zoo services ──────────────────────────────────────────────────────────────

func (c *Client) ListServices(ctx context.Context) ([]domain.ZooService, error) {
	var out []domain.ZooService
	if err := c.do(ctx, "services", http.MethodGet, "/services", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateService(ctx context.Context, bearer string, svc domain.ZooService) (*domain.ZooService, error) {
	var out domain.ZooService
	if err := c.do(ctx, "services", http.MethodPost, "/services", bearer, svc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, bearer, id string, svc domain.ZooService) (*domain.ZooService, error) {
	var out domain.ZooService
	if err := c.do(ctx, "services", http.MethodPut, "/services/"+id, bearer, svc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, bearer, id string) error {
	return c.do(ctx, "services", http.MethodDelete, "/services/"+id, bearer, nil, nil)
}
