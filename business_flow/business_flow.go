// Package businessflow contains the business logic for the application.
package businessflow

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds client-related information for request tracking
type ClientMetadata struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// Selections is the complete set of configuration-defining inputs. Quantity is
// deliberately absent: two orders for the same fixture at different quantities
// share one configuration identity.
type Selections struct {
	TemplateCode          string
	TapeOfferingCode      string
	RequestedLengthMM     float64
	FinishCode            string
	LensAppearanceCode    string
	MountingMethodCode    string
	EndcapStyleCode       string
	EndcapColorCode       string
	PowerFeedTypeCode     string
	EnvironmentRatingCode string
}

// canonicalSelections fixes the JSON key order for hashing. Fields are declared
// in alphabetical key order so encoding/json emits a canonical byte stream.
type canonicalSelections struct {
	EndcapColorCode       string  `json:"endcap_color_code"`
	EndcapStyleCode       string  `json:"endcap_style_code"`
	EnvironmentRatingCode string  `json:"environment_rating_code"`
	FinishCode            string  `json:"finish_code"`
	LensAppearanceCode    string  `json:"lens_appearance_code"`
	MountingMethodCode    string  `json:"mounting_method_code"`
	PowerFeedTypeCode     string  `json:"power_feed_type_code"`
	RequestedLengthMM     float64 `json:"requested_length_mm"`
	TapeOfferingCode      string  `json:"tape_offering_code"`
	TemplateCode          string  `json:"template_code"`
}

// ComputeConfigHash derives the canonical identity of a configuration: SHA-256
// over the canonical JSON of the selections, truncated to 32 hex characters.
func ComputeConfigHash(sel Selections) (string, error) {
	payload := canonicalSelections{
		EndcapColorCode:       sel.EndcapColorCode,
		EndcapStyleCode:       sel.EndcapStyleCode,
		EnvironmentRatingCode: sel.EnvironmentRatingCode,
		FinishCode:            sel.FinishCode,
		LensAppearanceCode:    sel.LensAppearanceCode,
		MountingMethodCode:    sel.MountingMethodCode,
		PowerFeedTypeCode:     sel.PowerFeedTypeCode,
		RequestedLengthMM:     sel.RequestedLengthMM,
		TapeOfferingCode:      sel.TapeOfferingCode,
		TemplateCode:          sel.TemplateCode,
	}

	bs, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal canonical selections: %w", err)
	}

	sum := sha256.Sum256(bs)
	return hex.EncodeToString(sum[:])[:32], nil
}
