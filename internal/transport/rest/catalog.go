package rest

import (
	"net/http"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

type catalogSource interface {
	Resources() []domain.Resource
	EmergencyContacts() []domain.EmergencyContact
	GoalSuggestions() []string
}

// CatalogHandler serves the static resource catalog. No authentication.
type CatalogHandler struct {
	catalog catalogSource
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalog catalogSource) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type resourceResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"descriptionHtml"`
	Link            string `json:"link"`
	Source          string `json:"source,omitempty"`
}

type emergencyContactResponse struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	TelURI      string `json:"telUri"`
	Description string `json:"description,omitempty"`
}

// Resources handles GET /resources.
func (h *CatalogHandler) Resources(w http.ResponseWriter, _ *http.Request) {
	resources := h.catalog.Resources()
	resp := make([]resourceResponse, len(resources))
	for i, res := range resources {
		resp[i] = resourceResponse{
			ID:              res.ID,
			Title:           res.Title,
			Description:     res.Description,
			DescriptionHTML: res.DescriptionHTML,
			Link:            res.Link,
			Source:          res.Source,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// EmergencyContacts handles GET /emergency-contacts.
func (h *CatalogHandler) EmergencyContacts(w http.ResponseWriter, _ *http.Request) {
	contacts := h.catalog.EmergencyContacts()
	resp := make([]emergencyContactResponse, len(contacts))
	for i, c := range contacts {
		resp[i] = emergencyContactResponse{
			Name:        c.Name,
			Number:      c.Number,
			TelURI:      c.TelURI(),
			Description: c.Description,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GoalSuggestions handles GET /goal-suggestions.
func (h *CatalogHandler) GoalSuggestions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.GoalSuggestions())
}
