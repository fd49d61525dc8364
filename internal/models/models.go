package models

// All lists every model in migration order.
func All() []any {
	return []any{&Venue{}, &Artist{}, &Show{}}
}
