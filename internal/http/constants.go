package httpx

// Page identifiers used as PageData.CurrentPage; they select the content template and
// highlight the matching navigation entry.
const (
	PageAuth        = "auth"
	PageDashboard   = "dashboard"
	PageCategories  = "categories"
	PageBookings    = "bookings"
	PageCourts      = "courts"
	PageMaintenance = "maintenance"
	PageHome        = "home"
	PageCategory    = "category"
	PageCourt       = "court"
	PageMyBookings  = "my-bookings"
	PageError       = "error"
)

var contentTemplates = map[string]string{
	PageAuth:        "auth-content",
	PageDashboard:   "dashboard-content",
	PageCategories:  "categories-content",
	PageBookings:    "bookings-content",
	PageCourts:      "courts-content",
	PageMaintenance: "maintenance-content",
	PageHome:        "home-content",
	PageCategory:    "category-content",
	PageCourt:       "court-content",
	PageMyBookings:  "my-bookings-content",
	PageError:       "error-content",
}

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to error-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "error-content"
}
