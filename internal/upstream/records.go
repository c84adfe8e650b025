package upstream

import (
	"context"
	"net/http"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
)

// ── Vet reports ───────────────────────────────────────────────────────────────

func (c *Client) ListReports(ctx context.Context, bearer string) ([]domain.VetReport, error) {
	var out []domain.VetReport
	if err := c.do(ctx, "vetreport", http.MethodGet, "/vetreport", bearer, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ReportsByAnimal(ctx context.Context, bearer, animalID string) ([]domain.VetReport, error) {
	var out []domain.VetReport
	if err := c.do(ctx, "vetreport", http.MethodGet, "/vetreport/"+animalID, bearer, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateReport(ctx context.Context, bearer, animalID string, report domain.VetReport) (*domain.VetReport, error) {
	var out domain.VetReport
	if err := c.do(ctx, "vetreport", http.MethodPost, "/vetreport/"+animalID, bearer, report, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateReport(ctx context.Context, bearer, id string, report domain.VetReport) (*domain.VetReport, error) {
	var out domain.VetReport
	if err := c.do(ctx, "vetreport", http.MethodPut, "/vetreport/"+id, bearer, report, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteReport(ctx context.Context, bearer, id string) error {
	return c.do(ctx, "vetreport", http.MethodDelete, "/vetreport/"+id, bearer, nil, nil)
}

// ── Food records ──────────────────────────────────────────────────────────────

func (c *Client) RecordsByAnimal(ctx context.Context, bearer, animalID string) ([]domain.FoodRecord, error) {
	var out []domain.FoodRecord
	if err := c.do(ctx, "foodrecord", http.MethodGet, "/foodrecord/"+animalID, bearer, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateRecord(ctx context.Context, bearer, animalID string, record domain.FoodRecord) (*domain.FoodRecord, error) {
	var out domain.FoodRecord
	if err := c.do(ctx, "foodrecord", http.MethodPost, "/foodrecord/"+animalID, bearer, record, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRecord(ctx context.Context, bearer, id string, record domain.FoodRecord) (*domain.FoodRecord, error) {
	var out domain.FoodRecord
	if err := c.do(ctx, "foodrecord", http.MethodPut, "/foodrecord/"+id, bearer, record, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRecord(ctx context.Context, bearer, id string) error {
	return c.do(ctx, "foodrecord", http.MethodDelete, "/foodrecord/"+id, bearer, nil, nil)
}

// ── Reviews ───────────────────────────────────────────────────────────────────

func (c *Client) ListReviews(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	if err := c.do(ctx, "reviews", http.MethodGet, "/reviews", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	var out domain.Review
	if err := c.do(ctx, "reviews", http.MethodPost, "/reviews", "", review, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ToggleReviewVisibility(ctx context.Context, bearer, id string) (*domain.Review, error) {
	var out domain.Review
	if err := c.do(ctx, "reviews", http.MethodPatch, "/reviews/"+id+"/toggle-visibility", bearer, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Contact ───────────────────────────────────────────────────────────────────

func (c *Client) SendContact(ctx context.Context, msg domain.ContactMessage) error {
	return c.do(ctx, "contact", http.MethodPost, "/contact", "", msg, nil)
}
