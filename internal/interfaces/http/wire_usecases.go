package http

import (
	companyUsecases "github.com/LucasFelipeJesus/portal-chamados/internal/application/company/usecases"
	equipmentUsecases "github.com/LucasFelipeJesus/portal-chamados/internal/application/equipment/usecases"
	reportUsecases "github.com/LucasFelipeJesus/portal-chamados/internal/application/report/usecases"
	sessionUsecases "github.com/LucasFelipeJesus/portal-chamados/internal/application/session/usecases"
	settingUsecases "github.com/LucasFelipeJesus/portal-chamados/internal/application/setting/usecases"
	ticketUsecases "github.com/LucasFelipeJesus/portal-chamados/internal/application/ticket/usecases"
	userUsecases "github.com/LucasFelipeJesus/portal-chamados/internal/application/user/usecases"
	wizardUsecases "github.com/LucasFelipeJesus/portal-chamados/internal/application/wizard/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Session
	signIn         *sessionUsecases.SignInUseCase
	signOut        *sessionUsecases.SignOutUseCase
	changePassword *sessionUsecases.ChangePasswordUseCase
	refreshProfile *sessionUsecases.RefreshProfileUseCase

	// Wizard
	getDraft        *wizardUsecases.GetDraftUseCase
	lookupCompany   *wizardUsecases.LookupCompanyUseCase
	confirmCompany  *wizardUsecases.ConfirmCompanyUseCase
	wizardEquipment *wizardUsecases.ListEquipmentUseCase
	selectEquipment *wizardUsecases.SelectEquipmentUseCase
	submitTicket    *wizardUsecases.SubmitTicketUseCase
	goBack          *wizardUsecases.GoBackUseCase
	abandon         *wizardUsecases.AbandonUseCase
	lookupAddress   *wizardUsecases.LookupAddressUseCase

	// Ticket
	listTickets  *ticketUsecases.ListTicketsUseCase
	getTicket    *ticketUsecases.GetTicketUseCase
	getDashboard *ticketUsecases.GetDashboardUseCase
	addComment   *ticketUsecases.AddCommentUseCase
	changeStatus *ticketUsecases.ChangeStatusUseCase
	closeTicket  *ticketUsecases.CloseTicketUseCase
	cancelTicket *ticketUsecases.CancelTicketUseCase
	deleteTicket *ticketUsecases.DeleteTicketUseCase

	// Company
	listCompanies   *companyUsecases.ListCompaniesUseCase
	registerCompany *companyUsecases.RegisterCompanyUseCase
	updateCompany   *companyUsecases.UpdateCompanyUseCase
	deleteCompany   *companyUsecases.DeleteCompanyUseCase

	// Equipment
	listEquipment   *equipmentUsecases.ListEquipmentUseCase
	createEquipment *equipmentUsecases.CreateEquipmentUseCase
	updateEquipment *equipmentUsecases.UpdateEquipmentUseCase
	deleteEquipment *equipmentUsecases.DeleteEquipmentUseCase

	// User
	listUsers     *userUsecases.ListUsersUseCase
	createUser    *userUsecases.CreateUserUseCase
	updateUser    *userUsecases.UpdateUserUseCase
	updateContact *userUsecases.UpdateContactUseCase
	deleteUser    *userUsecases.DeleteUserUseCase

	// Setting
	getSettings    *settingUsecases.GetSettingsUseCase
	updateSettings *settingUsecases.UpdateSettingsUseCase
	uploadLogo     *settingUsecases.UploadLogoUseCase

	// Report
	generateReport *reportUsecases.GenerateReportUseCase
}

func (c *Container) initUseCases() {
	r := c.repos

	c.ucs = &allUseCases{
		signIn: sessionUsecases.NewSignInUseCase(
			r.userRepo, c.hasher, c.jwtSvc, c.sessionStore, c.hub, c.idleWatcher, c.cfg.Auth.Session, c.log,
		),
		signOut: sessionUsecases.NewSignOutUseCase(
			c.sessionStore, c.hub, c.idleWatcher, c.cfg.Auth.Session, c.log,
		),
		changePassword: sessionUsecases.NewChangePasswordUseCase(
			r.userRepo, c.hasher, c.cfg.Auth.Password.MinLength, c.log,
		),
		refreshProfile: sessionUsecases.NewRefreshProfileUseCase(r.userRepo, c.hub, c.log),

		getDraft:        wizardUsecases.NewGetDraftUseCase(c.draftStore, c.log),
		lookupCompany:   wizardUsecases.NewLookupCompanyUseCase(r.companyRepo, r.userRepo, c.companyClient, c.log),
		confirmCompany:  wizardUsecases.NewConfirmCompanyUseCase(c.draftStore, r.companyRepo, r.userRepo, c.log),
		wizardEquipment: wizardUsecases.NewListEquipmentUseCase(c.draftStore, r.equipmentRepo, c.log),
		selectEquipment: wizardUsecases.NewSelectEquipmentUseCase(c.draftStore, r.equipmentRepo, c.log),
		submitTicket: wizardUsecases.NewSubmitTicketUseCase(
			c.draftStore, r.ticketRepo, r.companyRepo, c.dispatcher, c.txMgr, c.log,
		),
		goBack:        wizardUsecases.NewGoBackUseCase(c.draftStore, c.log),
		abandon:       wizardUsecases.NewAbandonUseCase(c.draftStore, c.log),
		lookupAddress: wizardUsecases.NewLookupAddressUseCase(c.addressClient, c.log),

		listTickets:  ticketUsecases.NewListTicketsUseCase(r.ticketRepo, r.userRepo, c.log),
		getTicket:    ticketUsecases.NewGetTicketUseCase(r.ticketRepo, r.commentRepo, r.userRepo, c.log),
		getDashboard: ticketUsecases.NewGetDashboardUseCase(r.ticketRepo, r.userRepo, c.log),
		addComment:   ticketUsecases.NewAddCommentUseCase(r.ticketRepo, r.commentRepo, r.userRepo, c.dispatcher, c.log),
		changeStatus: ticketUsecases.NewChangeStatusUseCase(r.ticketRepo, r.userRepo, c.log),
		closeTicket:  ticketUsecases.NewCloseTicketUseCase(r.ticketRepo, r.userRepo, c.log),
		cancelTicket: ticketUsecases.NewCancelTicketUseCase(r.ticketRepo, r.userRepo, c.log),
		deleteTicket: ticketUsecases.NewDeleteTicketUseCase(r.ticketRepo, r.userRepo, c.log),

		listCompanies:   companyUsecases.NewListCompaniesUseCase(r.companyRepo, r.userRepo, c.log),
		registerCompany: companyUsecases.NewRegisterCompanyUseCase(r.companyRepo, c.companyClient, c.log),
		updateCompany:   companyUsecases.NewUpdateCompanyUseCase(r.companyRepo, c.log),
		deleteCompany:   companyUsecases.NewDeleteCompanyUseCase(r.companyRepo, r.equipmentRepo, r.ticketRepo, c.log),

		listEquipment:   equipmentUsecases.NewListEquipmentUseCase(r.equipmentRepo, r.userRepo, c.log),
		createEquipment: equipmentUsecases.NewCreateEquipmentUseCase(r.equipmentRepo, r.companyRepo, c.log),
		updateEquipment: equipmentUsecases.NewUpdateEquipmentUseCase(r.equipmentRepo, c.log),
		deleteEquipment: equipmentUsecases.NewDeleteEquipmentUseCase(r.equipmentRepo, r.ticketRepo, c.log),

		listUsers:     userUsecases.NewListUsersUseCase(r.userRepo, c.log),
		createUser:    userUsecases.NewCreateUserUseCase(r.userRepo, c.hasher, c.mailer, c.log),
		updateUser:    userUsecases.NewUpdateUserUseCase(r.userRepo, c.log),
		updateContact: userUsecases.NewUpdateContactUseCase(r.userRepo, c.log),
		deleteUser:    userUsecases.NewDeleteUserUseCase(r.userRepo, c.log),

		getSettings:    settingUsecases.NewGetSettingsUseCase(r.settingRepo, c.log),
		updateSettings: settingUsecases.NewUpdateSettingsUseCase(r.settingRepo, c.log),
		uploadLogo:     settingUsecases.NewUploadLogoUseCase(r.settingRepo, c.logoStorage, c.log),

		generateReport: reportUsecases.NewGenerateReportUseCase(
			r.ticketRepo, r.companyRepo, r.userRepo, c.pdfRenderer, c.log,
		),
	}
}
