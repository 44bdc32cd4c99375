package services

import (
	portsrepo "github.com/activitydash/activity_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/activitydash/activity_dashboard_app/internal/core/ports/services"
	"github.com/activitydash/activity_dashboard_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Tally = NewTallyService(repos.TallyRepo)
	container.RingCentral = NewRingCentralService(cfg)

	return container
}
