package services

import (
	"log/slog"

	"github.com/pmapp/personal_management_app/internal/core/domain"
	portsrepo "github.com/pmapp/personal_management_app/internal/core/ports/repositories"
	ports "github.com/pmapp/personal_management_app/internal/core/ports/services"
	"github.com/pmapp/personal_management_app/internal/platform/config"
)

// Repositories carries every persistence dependency the service layer needs.
type Repositories struct {
	Users        portsrepo.UserRepository
	Devices      portsrepo.DeviceRepository
	Contacts     portsrepo.ContactRepository
	Tasks        portsrepo.ResourceRepository[domain.Task]
	Timesheets   portsrepo.ResourceRepository[domain.Timesheet]
	Events       portsrepo.EventRepository
	Returnings   portsrepo.ResourceRepository[domain.Returning]
	Surveys      portsrepo.ResourceRepository[domain.Survey]
	Expenditures portsrepo.ExpenditureRepository
	Purchases    portsrepo.PurchaseRepository
	Employees    portsrepo.EmployeeRepository
}

// NewServiceContainer wires repositories and outbound adapters into the full
// service set used by route registration and the notification scheduler.
func NewServiceContainer(repos Repositories, cfg *config.Config, sender ports.PushSender, mailer ports.Mailer, logger *slog.Logger) *ports.ServiceContainer {
	return &ports.ServiceContainer{
		User:       NewUserService(repos.Users, mailer),
		Token:      NewTokenService(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer),
		GoogleAuth: NewGoogleAuthService(cfg.GoogleClientID),

		Contacts:   NewContactService(repos.Contacts),
		Tasks:      NewResourceService[domain.Task, *domain.Task](repos.Tasks),
		Timesheets: NewResourceService[domain.Timesheet, *domain.Timesheet](repos.Timesheets),
		Events:     NewResourceService[domain.Event, *domain.Event](repos.Events),
		Returnings: NewResourceService[domain.Returning, *domain.Returning](repos.Returnings),
		Surveys:    NewResourceService[domain.Survey, *domain.Survey](repos.Surveys),

		Expenditures: NewExpenditureService(repos.Expenditures),
		Purchases:    NewPurchaseService(repos.Purchases),
		Employees:    NewEmployeeService(repos.Employees),
		Devices:      NewDeviceService(repos.Devices, repos.Users),

		Notifier: NewNotifierService(repos.Events, repos.Devices, sender, cfg.NotifyLeadWindow, logger),
		Mailer:   mailer,
	}
}
