package config

import (
	"os"
	"strconv"
)

// Config truelab-connectivity (HTTP API) configuration
type Config struct {
	HTTP struct {
		Addr string
	}
	// Max size of a single upload request (multipart form), in MB
	MaxUploadMB int64
	Log         struct {
		Level  string
		Format string
	}
	Pipeline PipelineConfig
}

// PipelineConfig holds the fixed parameters of the connectivity pipeline.
// These are design constants, not deployment knobs: DefaultPipeline() matches
// the column layout of the Truelab dashboard CSV export and the Salesforce
// account roster. Override only when the upstream export format changes.
type PipelineConfig struct {
	// Required header columns of each run-log CSV export, in output order.
	RunLogColumns []string
	// Required header columns of the master roster sheet (matched after
	// whitespace trim).
	RosterColumns []string
	// Runs recorded under this operator username are engineer service runs,
	// not patient tests, and are dropped.
	ServiceUserName string

	DetailSheetName  string
	SummarySheetName string
	OutputFilename   string
}

// Roster column names (post header-trim). The four display columns are
// renamed on load: Account Name -> Lab_name_Masterlist,
// Billing State/Province -> State, Account Owner: Full Name -> Account Owner,
// Type -> Customer Type.
const (
	RosterColSerial       = "Serial / Batch ID: Serial / Batch #"
	RosterColAccountName  = "Account Name"
	RosterColBillingState = "Billing State/Province"
	RosterColAccountOwner = "Account Owner: Full Name"
	RosterColType         = "Type"
	RosterColZone         = "Zone"
)

// DefaultPipeline returns the pipeline constants for the current export formats.
func DefaultPipeline() PipelineConfig {
	return PipelineConfig{
		RunLogColumns: []string{
			"Test_date_time", "Profile_id", "Patient_id", "Test_result", "Test_status",
			"Lab_name", "User_name", "Sample_type", "Truelab_id", "Lot",
			"Chip_serial_no", "Ct1", "Ct2", "Ct3", "Load1", "Load2", "Load3",
			"Bayno", "Chip_batchno", "Result_recieved_date",
		},
		RosterColumns: []string{
			RosterColSerial,
			RosterColAccountName,
			RosterColBillingState,
			RosterColAccountOwner,
			RosterColType,
			RosterColZone,
		},
		ServiceUserName:  "Service",
		DetailSheetName:  "Detailed Connectivity",
		SummarySheetName: "State wise connectivity",
		OutputFilename:   "Final_Connectivity_Output.xlsx",
	}
}

// Load reads service configuration from the environment.
func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")
	cfg.MaxUploadMB = int64(parseInt(getEnv("MAX_UPLOAD_MB", "20"), 20))
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")
	cfg.Pipeline = DefaultPipeline()
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
