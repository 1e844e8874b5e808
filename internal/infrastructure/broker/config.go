package broker

type Config struct {
	URI        string
	StreamName string `yaml:"stream_name"`
	GroupName  string `yaml:"group_name"`
	// MaxLen caps the stream length (approximate trimming); 0 disables trimming.
	MaxLen int64 `yaml:"max_len"`
}

type PublisherConfig struct {
	Timeout int `yaml:"timeout_in_ms"`
}
