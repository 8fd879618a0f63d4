package provider

// Config holds configuration for the external product provider.
type Config struct {
	// Type selects the provider implementation (dummyjson).
	Type string `mapstructure:"type" default:"dummyjson"`
	// BaseURL is the product listing endpoint of the provider.
	BaseURL string `mapstructure:"base_url" default:"https://dummyjson.com/products"`
	// PageSize is the number of records requested per page.
	PageSize int `mapstructure:"page_size" default:"30"`
	// TimeoutSeconds bounds a single page fetch.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RequestsPerMinute rate-limits outbound fetches to the provider.
	RequestsPerMinute int `mapstructure:"requests_per_minute" default:"60"`
}
