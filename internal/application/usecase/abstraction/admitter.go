package abstraction

// Admitter decides whether a caller may use an authenticated operation.
type Admitter interface {
	Admit(ip, key string) error
}
