// Package admin holds the presentation configuration the admin surface reads:
// which columns each entity lists, what is searchable and filterable, and the
// pure formatting helpers for display columns. The registry is built
// explicitly at startup and passed down; there is no package-level singleton.
package admin

type EntityConfig struct {
	Name         string   `json:"name"`
	ListDisplay  []string `json:"listDisplay"`
	SearchFields []string `json:"searchFields"`
	ListFilters  []string `json:"listFilters"`
	PerPage      uint     `json:"perPage"`
}

type Registry struct {
	configs map[string]EntityConfig
	order   []string
}

func NewRegistry() *Registry {
	r := &Registry{configs: map[string]EntityConfig{}}

	r.register(EntityConfig{
		Name:         "profile",
		ListDisplay:  []string{"user", "institute", "department", "position", "state", "isEmailVerified"},
		SearchFields: []string{"firstName", "lastName", "email", "institute"},
		ListFilters:  []string{"position", "department", "state", "isEmailVerified"},
		PerPage:      25,
	})
	r.register(EntityConfig{
		Name:         "workshopType",
		ListDisplay:  []string{"name", "category", "duration", "difficultyLevel", "workshopCount", "certificationOffered"},
		SearchFields: []string{"name", "description"},
		ListFilters:  []string{"category", "difficultyLevel", "certificationOffered", "duration"},
		PerPage:      25,
	})
	r.register(EntityConfig{
		Name:         "workshop",
		ListDisplay:  []string{"workshopType", "coordinator", "instructor", "date", "status"},
		SearchFields: []string{"workshopType", "coordinator", "instructor"},
		ListFilters:  []string{"status", "category", "date", "difficultyLevel"},
		PerPage:      25,
	})
	r.register(EntityConfig{
		Name:         "workshopCategory",
		ListDisplay:  []string{"name", "workshopTypeCount", "color"},
		SearchFields: []string{"name", "description"},
		PerPage:      25,
	})
	r.register(EntityConfig{
		Name:         "workshopRating",
		ListDisplay:  []string{"workshop", "user", "rating", "createdAt"},
		SearchFields: []string{"workshopType", "firstName", "lastName"},
		ListFilters:  []string{"rating", "createdAt"},
		PerPage:      25,
	})
	r.register(EntityConfig{
		Name:         "notification",
		ListDisplay:  []string{"user", "type", "title", "isRead", "createdAt"},
		SearchFields: []string{"firstName", "lastName", "title", "message"},
		ListFilters:  []string{"type", "isRead", "createdAt"},
		PerPage:      25,
	})
	r.register(EntityConfig{
		Name:         "chatMessage",
		ListDisplay:  []string{"sender", "receiver", "workshop", "messagePreview", "isRead", "createdAt"},
		SearchFields: []string{"firstName", "lastName", "message"},
		ListFilters:  []string{"isRead", "createdAt"},
		PerPage:      25,
	})
	r.register(EntityConfig{
		Name:         "comment",
		ListDisplay:  []string{"author", "workshop", "commentPreview", "public", "createdAt"},
		SearchFields: []string{"firstName", "lastName", "comment"},
		ListFilters:  []string{"public", "createdAt"},
		PerPage:      25,
	})
	r.register(EntityConfig{
		Name:         "testimonial",
		ListDisplay:  []string{"name", "institute", "department", "messagePreview"},
		SearchFields: []string{"name", "institute", "department", "message"},
		PerPage:      25,
	})
	r.register(EntityConfig{
		Name:        "banner",
		ListDisplay: []string{"title", "active", "preview"},
		ListFilters: []string{"active"},
		PerPage:     25,
	})
	r.register(EntityConfig{
		Name:         "attachmentFile",
		ListDisplay:  []string{"workshopType", "fileName", "fileSize"},
		SearchFields: []string{"workshopType", "fileName"},
		ListFilters:  []string{"workshopType"},
		PerPage:      25,
	})
	r.register(EntityConfig{
		Name:         "workshopSchedule",
		ListDisplay:  []string{"workshop", "startTime", "endTime", "maxParticipants", "venuePreview"},
		SearchFields: []string{"workshopType", "venueDetails"},
		PerPage:      25,
	})

	return r
}

func (r *Registry) register(cfg EntityConfig) {
	if _, exists := r.configs[cfg.Name]; !exists {
		r.order = append(r.order, cfg.Name)
	}
	r.configs[cfg.Name] = cfg
}

func (r *Registry) Get(name string) (EntityConfig, bool) {
	cfg, ok := r.configs[name]
	return cfg, ok
}

// All returns the configs in registration order.
func (r *Registry) All() []EntityConfig {
	out := make([]EntityConfig, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.configs[name])
	}
	return out
}
