package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	StudentRepo     StudentRepository
	PaymentRepo     PaymentRepository
	ExpenditureRepo ExpenditureRepository
	DonationRepo    DonationRepository
	AssistanceRepo  AssistanceRepository
	AdminRepo       AdminRepository
	BackupRepo      BackupRepository
}
