package config

// Config holds the configuration of the application
// Use cmd.NewConfig to create a new instance
type Config struct {
	LLM        LLM              `mapstructure:"llm"`
	Embeddings EmbeddingsConfig `mapstructure:"embeddings"`
	Warehouse  WarehouseConfig  `mapstructure:"warehouse"`
	Retrieval  RetrievalConfig  `mapstructure:"retrieval"`
	Memory     MemoryConfig     `mapstructure:"memory"`
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Auth       AuthConfig       `mapstructure:"auth"`
}

type LLM struct {
	Service string `mapstructure:"service"`
	Model   string `mapstructure:"model"`
	// OpenAIAPIKey is loaded from ENV not config file.
	OpenAIAPIKey        string  `mapstructure:"openai_api_key"`
	OpenAIEndpoint      string  `mapstructure:"openai_endpoint"`
	OpenAIOrgID         string  `mapstructure:"openai_org_id"`
	AzureOpenAIEndpoint string  `mapstructure:"azure_openai_endpoint"`
	Temperature         float64 `mapstructure:"temperature"`
}

type EmbeddingsConfig struct {
	Service    string `mapstructure:"service"`
	Model      string `mapstructure:"model"`
	Dimensions int    `mapstructure:"dimensions"`
	// ServerURL points at a local sentence-transformer sidecar when
	// Service is "local".
	ServerURL string `mapstructure:"server_url"`
	// OpenAIAPIKey is loaded from ENV not config file.
	OpenAIAPIKey        string `mapstructure:"openai_api_key"`
	OpenAIEndpoint      string `mapstructure:"openai_endpoint"`
	OpenAIOrgID         string `mapstructure:"openai_org_id"`
	AzureOpenAIEndpoint string `mapstructure:"azure_openai_endpoint"`
}

// WarehouseConfig configures the BigQuery connection used to fetch
// per-product review and metadata rows.
type WarehouseConfig struct {
	Project       string `mapstructure:"project"`
	Dataset       string `mapstructure:"dataset"`
	ReviewsTable  string `mapstructure:"reviews_table"`
	MetadataTable string `mapstructure:"metadata_table"`
	// CredentialsFile is loaded from ENV not config file.
	CredentialsFile string `mapstructure:"credentials_file"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
}

type RetrievalConfig struct {
	TopK int `mapstructure:"top_k"`
	// MaxContextTokens bounds the retrieved review text stuffed into a prompt.
	MaxContextTokens int `mapstructure:"max_context_tokens"`
}

type MemoryConfig struct {
	MessageWindow int `mapstructure:"message_window"`
}

type ServerConfig struct {
	Port           int   `mapstructure:"port"`
	MaxRequestSize int64 `mapstructure:"max_request_size"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	Secret   string `mapstructure:"secret"`
	Required bool   `mapstructure:"required"`
}
