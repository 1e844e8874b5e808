package contenthost

type Config struct {
	// SiteURL is the public root posts are linked under, e.g. https://example.com.
	SiteURL string `yaml:"site_url"`
	// MediaBaseURL is the public root of the media bucket.
	MediaBaseURL string `yaml:"media_base_url"`
	// DefaultTitle is reported when the site title option is unset.
	DefaultTitle string `yaml:"default_title"`
}
