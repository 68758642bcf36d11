package prompt

// Option configures a Host.
type Option func(*Host)

// WithPromptDriver overrides the prompt driver used by the menu loop.
func WithPromptDriver(driver PromptDriver) Option {
	return func(h *Host) {
		if driver != nil {
			h.driver = driver
		}
	}
}

// WithPageSize limits how many menu entries are visible at once.
func WithPageSize(size int) Option {
	return func(h *Host) {
		if size > 0 {
			h.pageSize = size
		}
	}
}

// WithBackLabel sets the caption of the entry that leaves a nested panel.
func WithBackLabel(label string) Option {
	return func(h *Host) {
		if label != "" {
			h.backLabel = label
		}
	}
}
