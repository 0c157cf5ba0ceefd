package api

import (
	models "TrendMatrix/internal/domain/models"
	domrepo "TrendMatrix/internal/domain/repository"
	xhttp "TrendMatrix/pkg/http"
	xlogger "TrendMatrix/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SolanaHandler serves ecosystem entity listings: hot projects, top DeFi
// protocols and top NFT collections, plus single-project detail.
type SolanaHandler struct {
	logger  *xlogger.Logger
	source  domrepo.MetricSource
	catalog domrepo.Catalog
}

func NewSolanaHandler(logger *xlogger.Logger, source domrepo.MetricSource, catalog domrepo.Catalog) *SolanaHandler {
	return &SolanaHandler{logger: logger, source: source, catalog: catalog}
}

func (h *SolanaHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/projects/hot", h.HotProjects)
	e.GET("/api/projects/:id", h.ProjectByID)
	e.GET("/api/solana/defi", h.TopProtocols)
	e.GET("/api/solana/nft", h.TopCollections)
}

func (h *SolanaHandler) HotProjects(c echo.Context) error {
	req := &models.HotProjectsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	projects, err := h.source.TopProjects(c.Request().Context(), req.Limit)
	if err != nil {
		h.logger.Error("hot projects error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, domainError(err))
	}
	return xhttp.ListResponse(c, projects, int64(len(projects)))
}

// ProjectByID returns the catalog record for a project. Unknown ids resolve
// to the catalog's default record, so this endpoint never 404s on stale links.
func (h *SolanaHandler) ProjectByID(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("project id is required"))
	}

	project, err := h.catalog.ProjectByID(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("project lookup error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, domainError(err))
	}
	return xhttp.SuccessResponse(c, project)
}

func (h *SolanaHandler) TopProtocols(c echo.Context) error {
	req := &models.TopListRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	protocols, err := h.source.TopProtocols(c.Request().Context(), req.Limit)
	if err != nil {
		h.logger.Error("defi listing error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, domainError(err))
	}
	return xhttp.ListResponse(c, protocols, int64(len(protocols)))
}

func (h *SolanaHandler) TopCollections(c echo.Context) error {
	req := &models.TopListRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	collections, err := h.source.TopCollections(c.Request().Context(), req.Limit)
	if err != nil {
		h.logger.Error("nft listing error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, domainError(err))
	}
	return xhttp.ListResponse(c, collections, int64(len(collections)))
}
