package http

import (
	companyHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/company"
	equipmentHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/equipment"
	reportHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/report"
	sessionHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/session"
	settingHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/setting"
	ticketHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/ticket"
	userHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/user"
	wizardHandlers "github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/handlers/wizard"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	sessionHandler   *sessionHandlers.Handler
	wizardHandler    *wizardHandlers.Handler
	ticketHandler    *ticketHandlers.Handler
	companyHandler   *companyHandlers.Handler
	equipmentHandler *equipmentHandlers.Handler
	userHandler      *userHandlers.Handler
	settingHandler   *settingHandlers.Handler
	reportHandler    *reportHandlers.Handler
}

func (c *Container) initHandlers() {
	u := c.ucs

	c.hdlrs = &allHandlers{
		sessionHandler: sessionHandlers.NewHandler(
			u.signIn, u.signOut, u.changePassword, u.refreshProfile, c.log,
		),
		wizardHandler: wizardHandlers.NewHandler(
			u.getDraft, u.lookupCompany, u.confirmCompany,
			u.wizardEquipment, u.selectEquipment, u.submitTicket,
			u.goBack, u.abandon, u.lookupAddress, c.log,
		),
		ticketHandler: ticketHandlers.NewHandler(
			u.listTickets, u.getTicket, u.getDashboard, u.addComment,
			u.changeStatus, u.closeTicket, u.cancelTicket, u.deleteTicket, c.log,
		),
		companyHandler: companyHandlers.NewHandler(
			u.listCompanies, u.registerCompany, u.updateCompany, u.deleteCompany, c.log,
		),
		equipmentHandler: equipmentHandlers.NewHandler(
			u.listEquipment, u.createEquipment, u.updateEquipment, u.deleteEquipment, c.log,
		),
		userHandler: userHandlers.NewHandler(
			u.listUsers, u.createUser, u.updateUser, u.updateContact, u.deleteUser, c.log,
		),
		settingHandler: settingHandlers.NewHandler(
			u.getSettings, u.updateSettings, u.uploadLogo, c.log,
		),
		reportHandler: reportHandlers.NewHandler(u.generateReport, c.log),
	}
}
