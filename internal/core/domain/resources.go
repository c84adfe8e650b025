package domain

// Proxied resource shapes. The JSON tags mirror the upstream Zoo Arcadia API
// contract verbatim so the gateway passes documents through without
// re-mapping field names.

// Animal is a zoo animal, optionally embedding its habitat and vet history.
type Animal struct {
	ID         string      `json:"_id,omitempty"`
	Name       string      `json:"name"`
	Race       string      `json:"race"`
	Habitat    string      `json:"habitat,omitempty"`
	ImagesURL  []string    `json:"imagesUrl,omitempty"`
	VetReports []VetReport `json:"vetReports,omitempty"`
}

// Habitat is a living area; the upstream may embed its animal list.
type Habitat struct {
	ID          string   `json:"_id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Animals     []Animal `json:"animals,omitempty"`
}

// ZooService is a visitor-facing service (restaurant, guided tour, ...).
type ZooService struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// VetReport is a veterinarian's health report for one animal.
type VetReport struct {
	ID         string `json:"_id,omitempty"`
	Animal     string `json:"animal,omitempty"`
	State      string `json:"state"`
	Food       string `json:"food"`
	Quantity   string `json:"quantity"`
	Date       string `json:"date"`
	Details    string `json:"details,omitempty"`
	IsCritical bool   `json:"isCritical,omitempty"`
}

// FoodRecord is an employee's feeding log entry for one animal.
type FoodRecord struct {
	ID       string `json:"_id,omitempty"`
	Animal   string `json:"animal,omitempty"`
	Food     string `json:"food"`
	Quantity string `json:"quantity"`
	Date     string `json:"date"`
}

// Review is a visitor review; employees toggle its visibility.
type Review struct {
	ID        string `json:"_id,omitempty"`
	Pseudo    string `json:"pseudo"`
	Comment   string `json:"comment"`
	IsVisible bool   `json:"isVisible"`
}

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
