package content

import "storefront/internal/app/domains/services/svcontent"

// ContentHandler news, roster and schedule HTTP handler
type ContentHandler struct {
	contentService *svcontent.ContentService
}

// NewContentHandler creates the handler
func NewContentHandler(contentService *svcontent.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}
