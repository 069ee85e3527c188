package cmd

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/adapters/out/inmemory"
	"fulfillment/internal/adapters/out/packingslip"
	"fulfillment/internal/adapters/out/postgres/ledgerrepo"
	"fulfillment/internal/adapters/out/printnode"
	"fulfillment/internal/adapters/out/shippo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use case handlers. Handlers that carry
// internal state (the purchase handler's per-key locks) are built once and
// reused.
type CompositionRoot struct {
	carrier    *shippo.Client
	printer    ports.PrintGateway
	printQueue *inmemory.PrintQueue
	ledger     ports.OrderLedger
	slips      *packingslip.Renderer
	logger     *slog.Logger

	purchaseHandler commands.PurchaseOrderCommandHandler
	dispatchHandler commands.DispatchPrintJobsCommandHandler
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	carrier, err := shippo.NewClient(shippo.Config{
		APIKey:  config.ShippoAPIKey,
		BaseURL: config.ShippoBaseURL,
		Origin: shippo.Origin{
			Name:    config.ShipFromName,
			Street:  config.ShipFromStreet,
			City:    config.ShipFromCity,
			State:   config.ShipFromState,
			Zip:     config.ShipFromZip,
			Country: config.ShipFromCountry,
			Phone:   config.ShipFromPhone,
			Email:   config.ShipFromEmail,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create carrier client: %w", err)
	}

	printer, err := createPrinter(config, logger)
	if err != nil {
		return nil, err
	}

	ledger, err := createLedger(config)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		carrier:    carrier,
		printer:    printer,
		printQueue: inmemory.NewPrintQueue(),
		ledger:     ledger,
		slips:      packingslip.NewRenderer(),
		logger:     logger,
	}
	root.purchaseHandler = commands.NewPurchaseOrderCommandHandler(
		root.carrier, root.ledger, root.printQueue, root.slips, logger)
	root.dispatchHandler = commands.NewDispatchPrintJobsCommandHandler(
		root.printQueue, root.printer, logger)

	return root, nil
}

// createPrinter falls back to the no-op gateway when the printer service is
// not configured; printing is best-effort and must not block startup.
func createPrinter(config Config, logger *slog.Logger) (ports.PrintGateway, error) {
	if config.PrintNodeAPIKey == "" || config.PrintNodePrinterID <= 0 {
		logger.Warn("printer service not configured, print jobs will be dropped")
		return printnode.Disabled{}, nil
	}

	printer, err := printnode.NewClient(printnode.Config{
		APIKey:    config.PrintNodeAPIKey,
		BaseURL:   config.PrintNodeBaseURL,
		PrinterID: config.PrintNodePrinterID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create printer client: %w", err)
	}
	return printer, nil
}

func createLedger(config Config) (ports.OrderLedger, error) {
	if config.LedgerDriver != "postgres" {
		return inmemory.NewLedger(), nil
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
		config.DBName, config.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := db.AutoMigrate(&ledgerrepo.RecordDTO{}); err != nil {
		return nil, fmt.Errorf("failed to migrate ledger schema: %w", err)
	}

	return ledgerrepo.NewGormLedger(db), nil
}

func (c *CompositionRoot) CreatePurchaseOrderCommandHandler() commands.PurchaseOrderCommandHandler {
	return c.purchaseHandler
}

func (c *CompositionRoot) CreateDispatchPrintJobsCommandHandler() commands.DispatchPrintJobsCommandHandler {
	return c.dispatchHandler
}

func (c *CompositionRoot) CreateGetQuotesQueryHandler() queries.GetQuotesQueryHandler {
	return queries.NewGetQuotesQueryHandler(c.carrier)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.dispatchHandler, c.logger)
}
