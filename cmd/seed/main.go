// Command seed fills the database with demo debtors and titles.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	debtapp "github.com/felipesbcabral/desafio-pc-sub000/internal/application/debt"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/config"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/logger"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	var (
		debtors   int
		maxTitles int
		seed      uint64
		logLevel  string
	)
	flag.IntVar(&debtors, "debtors", 20, "Number of debtors to create")
	flag.IntVar(&maxTitles, "titles", 4, "Maximum titles per debtor")
	flag.Uint64Var(&seed, "seed", 0, "Random seed (0 picks one)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{Level: logLevel, Format: "console", Output: "stdout"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	if cfg.App.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	titleRepo := persistence.NewGormTitleRepository(db.DB)
	debtorRepo := persistence.NewGormDebtorRepository(db.DB)
	auditRepo := persistence.NewGormAuditRepository(db.DB)

	s := &seeder{
		faker:   gofakeit.New(seed),
		debtors: debtapp.NewDebtorService(debtorRepo, titleRepo, log),
		titles: debtapp.NewTitleService(titleRepo, debtorRepo, auditRepo,
			debtapp.WithLogger(log),
			debtapp.WithLocation(cfg.Accrual.Location()),
		),
		log:   log,
		today: time.Now().In(cfg.Accrual.Location()),
	}

	ctx := context.Background()
	created, titles := 0, 0
	for range debtors {
		n, err := s.seedDebtor(ctx, maxTitles)
		if err != nil {
			log.Warn("Skipping debtor", zap.Error(err))
			continue
		}
		created++
		titles += n
	}
	log.Info("Seed finished", zap.Int("debtors", created), zap.Int("titles", titles))
}

type seeder struct {
	faker   *gofakeit.Faker
	debtors *debtapp.DebtorService
	titles  *debtapp.TitleService
	log     *zap.Logger
	today   time.Time
}

func (s *seeder) seedDebtor(ctx context.Context, maxTitles int) (int, error) {
	f := s.faker
	req := debtapp.CreateDebtorRequest{
		Name:     f.Name(),
		Document: s.cpf(),
		Email:    f.Email(),
		Phone:    f.Phone(),
	}
	if f.IntRange(0, 4) == 0 {
		req.Name = f.Company()
		req.Document = s.cnpj()
	}
	debtor, err := s.debtors.Create(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("create debtor: %w", err)
	}

	count := f.IntRange(1, max(1, maxTitles))
	for range count {
		title, err := s.titles.Create(ctx, s.titleRequest(debtor))
		if err != nil {
			return 0, fmt.Errorf("create title: %w", err)
		}
		// roughly a quarter of the portfolio is settled
		if f.IntRange(0, 3) == 0 {
			if _, err := s.titles.MarkPaid(ctx, title.ID, ""); err != nil {
				s.log.Warn("Failed to mark seeded title paid", zap.String("title_id", title.ID.String()), zap.Error(err))
			}
		}
	}
	return count, nil
}

func (s *seeder) titleRequest(debtor *debtapp.DebtorResponse) debtapp.CreateTitleRequest {
	f := s.faker
	due := debtapp.NewDate(f.DateRange(s.today.AddDate(0, -6, 0), s.today.AddDate(0, 3, 0)))
	req := debtapp.CreateTitleRequest{
		DebtorID:      debtor.ID,
		Description:   fmt.Sprintf("%s for %s", f.JobTitle(), f.Company()),
		OriginalValue: decimal.NewFromInt(int64(f.IntRange(5000, 500000))).Shift(-2),
		DueDate:       &due,
		RateInput: debtapp.RateInput{
			InterestRate:       decimal.NewFromInt(int64(f.IntRange(1, 50))).Shift(-1),
			InterestRatePeriod: "month",
			PenaltyRate:        decimal.NewFromInt(int64(f.IntRange(0, 10))),
		},
	}
	if f.IntRange(0, 2) == 0 {
		req.Installments = &debtapp.InstallmentPlanRequest{Count: f.IntRange(2, 12)}
	}
	return req
}

// cpf returns a random 11 digit CPF with valid check digits
func (s *seeder) cpf() string {
	digits := s.digits(9)
	digits = append(digits, checkDigit(digits, 10))
	digits = append(digits, checkDigit(digits, 11))
	return join(digits)
}

// cnpj returns a random 14 digit CNPJ with valid check digits
func (s *seeder) cnpj() string {
	digits := append(s.digits(8), 0, 0, 0, 1)
	digits = append(digits, cnpjCheckDigit(digits))
	digits = append(digits, cnpjCheckDigit(digits))
	return join(digits)
}

func (s *seeder) digits(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.faker.IntRange(0, 9)
	}
	// repeated digits are rejected as documents
	out[n-1] = (out[0] + 1) % 10
	return out
}

func checkDigit(digits []int, weight int) int {
	sum := 0
	for _, d := range digits {
		sum += d * weight
		weight--
	}
	r := sum * 10 % 11
	if r == 10 {
		return 0
	}
	return r
}

func cnpjCheckDigit(digits []int) int {
	sum := 0
	weight := len(digits) - 7
	for _, d := range digits {
		sum += d * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func join(digits []int) string {
	b := make([]byte, 0, len(digits))
	for _, d := range digits {
		b = strconv.AppendInt(b, int64(d), 10)
	}
	return string(b)
}
