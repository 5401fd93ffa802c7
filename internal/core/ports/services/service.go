package services

import "github.com/pmapp/personal_management_app/internal/core/domain"

// ServiceContainer bundles all service facades for route registration.
type ServiceContainer struct {
	User       UserSvcFacade
	Token      TokenSvcFacade
	GoogleAuth GoogleAuthSvcFacade

	Contacts   ResourceSvcFacade[domain.Contact]
	Tasks      ResourceSvcFacade[domain.Task]
	Timesheets ResourceSvcFacade[domain.Timesheet]
	Events     ResourceSvcFacade[domain.Event]
	Returnings ResourceSvcFacade[domain.Returning]
	Surveys    ResourceSvcFacade[domain.Survey]

	Expenditures ExpenditureSvcFacade
	Purchases    PurchaseSvcFacade
	Employees    EmployeeSvcFacade
	Devices      DeviceSvcFacade

	Notifier NotifierSvcFacade
	Mailer   Mailer
}
