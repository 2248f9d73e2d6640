package api

import (
	"net/http"

	"github.com/foremanhq/foreman/internal/config"
	"github.com/foremanhq/foreman/pkg/openapi"
	"github.com/foremanhq/foreman/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) error {
	routes.Register(
		mux,
		domain.Projects.Handler().Routes(),
		domain.Workflows.Handler(cfg.API.SequenceLimit).Routes(),
		domain.Attachments.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
	)

	spec, err := buildSpec(cfg).MarshalIndented()
	if err != nil {
		return err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(spec))

	return nil
}
