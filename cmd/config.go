package cmd

type Config struct {
	HTTPPort  string
	StaticDir string

	ShippoAPIKey  string
	ShippoBaseURL string

	PrintNodeAPIKey    string
	PrintNodeBaseURL   string
	PrintNodePrinterID int64

	ShipFromName    string
	ShipFromStreet  string
	ShipFromCity    string
	ShipFromState   string
	ShipFromZip     string
	ShipFromCountry string
	ShipFromPhone   string
	ShipFromEmail   string

	LedgerDriver string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
}
