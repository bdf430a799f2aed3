package config

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	// DataPath is the sales dataset CSV, used unless DatabaseURL is set.
	DataPath string
	// ModelPath is the serialized regression bundle.
	ModelPath string
	// DatabaseURL switches the dataset source to Postgres when non-empty.
	DatabaseURL string
	// GeminiAPIKey enables the AI insight endpoint when non-empty.
	GeminiAPIKey string
	Port         string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Defaults for the fixed relative input paths.
const (
	DefaultDataPath  = "data/retail_store.csv"
	DefaultModelPath = "model/model_sales.json"
	DefaultPort      = "3000"
)
