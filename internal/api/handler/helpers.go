package handler

import (
	"net/http"

	"github.com/draftelite/onboarding-go/internal/api/middleware"
	"github.com/draftelite/onboarding-go/internal/services/flow"
)

// controllerFor returns the flow controller for the request's device.
func controllerFor(flows *flow.Manager, r *http.Request) (*flow.Controller, error) {
	return flows.For(r.Context(), middleware.DeviceID(r.Context()))
}
