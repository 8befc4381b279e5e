package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/nattawat-k/storefront-service/internal/domain/dto"
	"github.com/nattawat-k/storefront-service/internal/domain/model"
	"github.com/nattawat-k/storefront-service/internal/i18n"
	"github.com/nattawat-k/storefront-service/internal/metrics"
	"github.com/nattawat-k/storefront-service/internal/service"
)

// ContainersHandler provides HTTP handlers for the packaging catalog and
// the weight-based suggestion endpoint.
type ContainersHandler struct {
	catalog       model.ContainerCatalog
	containerOpts []service.ContainerOption
}

// NewContainersHandler creates a new ContainersHandler instance.
func NewContainersHandler(catalog model.ContainerCatalog, containerOpts ...service.ContainerOption) *ContainersHandler {
	if catalog == nil {
		catalog = model.DefaultContainerCatalog()
	}
	return &ContainersHandler{
		catalog:       catalog,
		containerOpts: containerOpts,
	}
}

// ListSpecs handles GET /api/containers/specs requests.
//
// @Summary      List container specs
// @Description  Returns the packaging catalog: every container spec with its price and weight capacity, ordered by type then capacity.
// @Tags         Containers
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Container specs"
// @Router       /api/containers/specs [get]
func (h *ContainersHandler) ListSpecs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	specs := make([]dto.ContainerSpecResponse, 0, len(h.catalog))
	for _, spec := range h.catalog {
		specs = append(specs, dto.ContainerSpecResponse{
			ID:          spec.ID,
			Type:        string(spec.Type),
			Size:        string(spec.Size),
			Name:        spec.Name,
			Price:       spec.Price,
			Capacity:    spec.Capacity,
			Description: spec.Description,
		})
	}
	sort.Slice(specs, func(i, j int) bool {
		if specs[i].Type != specs[j].Type {
			return specs[i].Type < specs[j].Type
		}
		return specs[i].Capacity < specs[j].Capacity
	})

	builder.SuccessOK(specs)
}

// SuggestContainers handles POST /api/containers/suggest requests.
//
// @Summary      Suggest containers for a weight
// @Description  Proposes a container allocation covering the given total order weight using a largest-first heuristic. A zero weight yields an empty suggestion.
// @Tags         Containers
// @Accept       json
// @Produce      json
// @Param        request body dto.SuggestContainersRequest true "Total order weight"
// @Success      200 {object} dto.SuccessResponse "Suggested allocation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/containers/suggest [post]
func (h *ContainersHandler) SuggestContainers(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SuggestContainersRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationTotalWeight, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	opts := append([]service.ContainerOption{service.WithCatalog(h.catalog)}, h.containerOpts...)
	manager := service.NewContainerManager(opts...)
	suggestions := manager.SuggestForWeight(req.TotalWeight)
	metrics.ContainerSuggestionsTotal.Inc()

	resp := dto.SuggestContainersResponse{
		TotalWeight: req.TotalWeight,
		Suggestions: make([]dto.ContainerSuggestionItem, 0, len(suggestions)),
	}
	for _, sel := range suggestions {
		resp.Suggestions = append(resp.Suggestions, dto.ContainerSuggestionItem{
			SpecID:   sel.Spec.ID,
			Name:     sel.Spec.Name,
			Quantity: sel.Quantity,
			Price:    sel.Spec.Price,
		})
		resp.TotalPrice += sel.TotalPrice
	}

	builder.SuccessOK(resp)
}
