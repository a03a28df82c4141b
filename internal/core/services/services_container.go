package services

import (
	portsrepo "github.com/kabitalok/kabitalok-payments/internal/core/ports/repositories"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Student = NewStudentService(repos.StudentRepo, repos.PaymentRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.StudentRepo)
	container.Expenditure = NewExpenditureService(repos.ExpenditureRepo)
	container.Donation = NewDonationService(repos.DonationRepo)
	container.Assistance = NewAssistanceService(repos.AssistanceRepo)
	container.Admin = NewAdminService(repos.AdminRepo)
	container.Report = NewReportService(repos.PaymentRepo, repos.ExpenditureRepo, repos.DonationRepo, repos.AssistanceRepo, cfg.ExportDir)
	container.Receipt = NewReceiptService(repos.PaymentRepo, repos.ExpenditureRepo, repos.DonationRepo, repos.AssistanceRepo, repos.StudentRepo, cfg.ExportDir, cfg.LogoPath)
	container.Backup = NewBackupService(repos.StudentRepo, repos.PaymentRepo, repos.ExpenditureRepo, repos.BackupRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.StudentSvcFacade = (*studentService)(nil)
	_ portssvc.PaymentSvcFacade = (*paymentService)(nil)
	_ portssvc.AdminSvcFacade   = (*adminService)(nil)
	_ portssvc.ReportSvcFacade  = (*reportService)(nil)
	_ portssvc.BackupSvcFacade  = (*backupService)(nil)
)
