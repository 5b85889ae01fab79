package http

import (
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/equipment"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/setting"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo      user.Repository
	companyRepo   company.Repository
	equipmentRepo equipment.Repository
	ticketRepo    ticket.Repository
	commentRepo   ticket.CommentRepository
	settingRepo   setting.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:      repository.NewUserRepository(c.db, c.log),
		companyRepo:   repository.NewCompanyRepository(c.db, c.log),
		equipmentRepo: repository.NewEquipmentRepository(c.db, c.log),
		ticketRepo:    repository.NewTicketRepository(c.db, c.log),
		commentRepo:   repository.NewCommentRepository(c.db, c.log),
		settingRepo:   repository.NewSettingRepository(c.db, c.log),
	}
}
