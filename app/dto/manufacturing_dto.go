package dto

// GenerateArtifactsRequest asks for manufacturing artifacts for a stored configuration
type GenerateArtifactsRequest struct {
	ConfigUUID string `json:"config_uuid" validate:"required,uuid4"`
}

// BOMLineDTO is one component line of the generated BOM
type BOMLineDTO struct {
	Role string  `json:"role"`
	Item string  `json:"item"`
	Qty  float64 `json:"qty"`
	UOM  string  `json:"uom"`
}

// GenerateArtifactsResponse carries the generated (or previously generated) artifacts
type GenerateArtifactsResponse struct {
	Message        string       `json:"message"`
	ConfigUUID     string       `json:"config_uuid"`
	ConfigHash     string       `json:"config_hash"`
	ItemCode       string       `json:"item_code"`
	BOMNo          string       `json:"bom_no"`
	BOMLines       []BOMLineDTO `json:"bom_lines"`
	TravelerNotes  string       `json:"traveler_notes"`
	AlreadyExisted bool         `json:"already_existed"`
}
