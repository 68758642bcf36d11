package uischema

import "github.com/goliatone/go-formbind/pkg/model"

var _ model.Decorator = (*Store)(nil)

// DecorateField applies the overlay configured for owner to field. Overlay
// entries are keyed by the type that declares the field, so inherited fields
// are configured on their ancestor.
func (s *Store) DecorateField(owner *model.Type, field *model.Field) {
	if s.Empty() || owner == nil || field == nil {
		return
	}
	form, ok := s.forms[owner.Name]
	if !ok {
		return
	}
	cfg, ok := form.Fields[field.Name]
	if !ok {
		return
	}
	if cfg.Label != "" {
		field.Label = cfg.Label
	}
	if cfg.Order != nil {
		field.Order = *cfg.Order
	}
}
