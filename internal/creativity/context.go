package creativity

// DefaultDomain is used when the caller supplies no domain context.
const DefaultDomain = "general innovation"

// Context carries caller-supplied framing for a single composition call.
// It has no lifecycle: constructed per request, never persisted, never
// mutated after construction.
type Context struct {
	Domain         string
	Constraints    []string
	TargetAudience string
	TimePeriod     string
	Resources      []string
	Goals          []string
}

// EffectiveDomain returns the context domain, or DefaultDomain when the
// context is nil or carries no domain.
func (c *Context) EffectiveDomain() string {
	if c == nil || c.Domain == "" {
		return DefaultDomain
	}
	return c.Domain
}
