package tgCallback

// Callback button prefixes
const (
	PageNumber string = "page_number"
	Unlink     string = "unlink"

	// prefixes
	ToBookDetails string = "to_book_details:"
	ToCatalogPage string = "to_catalog_page:"
)
