package dto

// MissingMappingDTO identifies one allowed combination with no item mapping
type MissingMappingDTO struct {
	TemplateCode string            `json:"template_code"`
	MapName      string            `json:"map_name"`
	Keys         map[string]string `json:"keys"`
}

// CoverageAuditResponse summarizes a full catalog coverage audit run
type CoverageAuditResponse struct {
	Message          string              `json:"message"`
	GeneratedAt      string              `json:"generated_at"`
	TemplatesChecked int                 `json:"templates_checked"`
	MappingsChecked  int                 `json:"mappings_checked"`
	MissingMappings  []MissingMappingDTO `json:"missing_mappings,omitempty"`
}
