package card

// Card represents a navigation card in a portal catalog
type Card struct {
	Title       string `toml:"title" json:"title"`             // Display title, unique within a catalog
	Href        string `toml:"href" json:"href"`               // Absolute URL the card navigates to
	Description string `toml:"description" json:"description"` // Human-readable summary
	Icon        string `toml:"icon" json:"icon"`               // Symbolic icon name (e.g., building, user)
}
